package field

import "testing"

func TestPointerStartsOffscreen(t *testing.T) {
	p := NewPointer()
	if p.Logical != Offscreen || p.Screen != Offscreen || p.Active() {
		t.Errorf("new pointer = %+v", p)
	}
}

func TestPointerMoveAndLeave(t *testing.T) {
	p := NewPointer()
	identity := CTMMapper(func() (Affine, error) { return Identity, nil })

	p.Move(identity, Vec2{40, 50})
	if p.Logical != (Vec2{40, 50}) || p.Screen != (Vec2{40, 50}) || !p.Active() {
		t.Fatalf("after move = %+v", p)
	}

	p.Leave()
	if p.Logical != Offscreen || p.Screen != Offscreen {
		t.Errorf("after leave = %+v", p)
	}
}

func TestPointerMoveMapperFailure(t *testing.T) {
	p := NewPointer()
	p.Move(panicMapper{}, Vec2{40, 50})
	if p.Logical != Offscreen {
		t.Errorf("logical = %+v, want Offscreen", p.Logical)
	}
	if p.Screen != (Vec2{40, 50}) {
		t.Errorf("screen = %+v, want the raw position", p.Screen)
	}
}
