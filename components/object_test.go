package components

import (
	"testing"

	"github.com/solarlune/resolv"
)

func TestOverlapping(t *testing.T) {
	a := resolv.NewObject(0, 0, 10, 10)
	tests := []struct {
		name   string
		b      *resolv.Object
		dx, dy float64
		want   bool
	}{
		{"overlap", resolv.NewObject(5, 5, 10, 10), 0, 0, true},
		{"touching edge", resolv.NewObject(10, 0, 10, 10), 0, 0, false},
		{"apart", resolv.NewObject(30, 0, 10, 10), 0, 0, false},
		{"overlap after move", resolv.NewObject(12, 0, 10, 10), 3, 0, true},
		{"probe below", resolv.NewObject(0, 10, 10, 10), 0, 1, true},
	}

	for _, tt := range tests {
		if got := Overlapping(a, tt.b, tt.dx, tt.dy); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	o := ObjectData{Object: resolv.NewObject(0, 0, 30, 48)}
	o.SetCenter(100, 200)

	if x, y := o.Center(); x != 100 || y != 200 {
		t.Errorf("center = (%v, %v), want (100, 200)", x, y)
	}
	if o.X != 85 || o.Y != 176 {
		t.Errorf("top-left = (%v, %v), want (85, 176)", o.X, o.Y)
	}
}
