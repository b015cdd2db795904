package field

// Offscreen is where the pointer is parked when it is not over the page. It is
// far enough from any anchor or heading that nothing reacts to it.
var Offscreen = Vec2{-10000, -10000}

// Pointer is the last known pointer position in both coordinate spaces.
type Pointer struct {
	Logical Vec2
	Screen  Vec2
}

// NewPointer returns a pointer parked off canvas.
func NewPointer() Pointer {
	return Pointer{Logical: Offscreen, Screen: Offscreen}
}

// Move records a pointer or first-touch position given in screen space. A
// non-finite position parks the pointer instead.
func (p *Pointer) Move(m Mapper, screen Vec2) {
	if !screen.Finite() {
		p.Leave()
		return
	}
	p.Logical = MapPointer(m, screen)
	p.Screen = screen
}

// Leave parks the pointer off canvas.
func (p *Pointer) Leave() {
	p.Logical = Offscreen
	p.Screen = Offscreen
}

// Active reports whether the pointer is somewhere over the page.
func (p Pointer) Active() bool {
	return p.Screen != Offscreen
}
