package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(20, 16, 26, 22); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}

	for _, name := range []FontName{Score, Lives, Banner, Sign, Small} {
		if name.Get() == nil {
			t.Errorf("font %s not registered", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("bad", []byte("not a font"), 10); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("nope").Get()
}
