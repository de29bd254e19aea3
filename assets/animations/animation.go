package animations

// Animation steps through the frame range [First, Last] of a sprite strip.
type Animation struct {
	First         int
	Last          int
	TicksPerFrame int  // game ticks each frame stays on screen
	Repeat        bool // wrap to First after Last, otherwise hold Last
	Looped        bool
	ticks         int
	frame         int
}

// New builds an animation playing at fps on a game running at tps.
func New(first, last, fps, tps int, repeat bool) *Animation {
	perFrame := 1
	if fps > 0 && tps > fps {
		perFrame = tps / fps
	}
	return &Animation{
		First:         first,
		Last:          last,
		TicksPerFrame: perFrame,
		Repeat:        repeat,
		frame:         first,
	}
}

func (a *Animation) Update() {
	a.ticks++
	if a.ticks < a.TicksPerFrame {
		return
	}
	a.ticks = 0
	if a.frame < a.Last {
		a.frame++
		return
	}
	a.Looped = true
	if a.Repeat {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
	a.Looped = false
}
