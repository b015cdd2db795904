package field

import (
	"math"
	"testing"
)

func TestRound2HalfUp(t *testing.T) {
	got := Vec2{0.125, -0.125}.Round2()
	if got != (Vec2{0.13, -0.12}) {
		t.Errorf("Round2 = %+v, want {0.13 -0.12}", got)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		v    Vec2
		want string
	}{
		{Vec2{22.5, 22.5}, "translate(22.5, 22.5)"},
		{Vec2{0.13, 1000}, "translate(0.13, 1000)"},
		{Vec2{math.Copysign(0, -1), -1.5}, "translate(0, -1.5)"},
	}
	for _, tt := range tests {
		if got := tt.v.Translate(); got != tt.want {
			t.Errorf("%+v.Translate() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 40}
	if got := r.Center(); got != (Vec2{60, 40}) {
		t.Errorf("Center = %+v, want {60 40}", got)
	}
}
