package field

import "testing"

func TestAnchorsLattice(t *testing.T) {
	anchors := Anchors(45, 1000)
	if len(anchors) != 22*22 {
		t.Fatalf("len(anchors) = %d, want %d", len(anchors), 22*22)
	}
	if anchors[0] != (Vec2{22.5, 22.5}) {
		t.Errorf("first = %+v, want {22.5 22.5}", anchors[0])
	}
	if last := anchors[len(anchors)-1]; last != (Vec2{967.5, 967.5}) {
		t.Errorf("last = %+v, want {967.5 967.5}", last)
	}
	// x-major: the second anchor walks down the first column.
	if anchors[1] != (Vec2{22.5, 67.5}) {
		t.Errorf("second = %+v, want {22.5 67.5}", anchors[1])
	}
	for _, a := range anchors {
		if a.X >= 1000 || a.Y >= 1000 {
			t.Fatalf("anchor %+v outside extent", a)
		}
	}
}

func TestAnchorsExactFit(t *testing.T) {
	anchors := Anchors(10, 100)
	if len(anchors) != 100 {
		t.Fatalf("len = %d, want 100", len(anchors))
	}
	if last := anchors[len(anchors)-1]; last != (Vec2{95, 95}) {
		t.Errorf("last = %+v, want {95 95}", last)
	}
}

func TestBuildPlacesOneMarkerPerAnchor(t *testing.T) {
	s := &recSurface{}
	f := Build(s, DefaultConfig(), DefaultPlus())

	if f.Len() != len(s.markers) {
		t.Fatalf("field has %d anchors, surface has %d markers", f.Len(), len(s.markers))
	}
	if s.clears != 1 {
		t.Errorf("clears = %d, want 1", s.clears)
	}
	for i := 0; i < f.Len(); i++ {
		if f.Position(i) != f.Anchor(i) {
			t.Fatalf("marker %d starts at %+v, anchor %+v", i, f.Position(i), f.Anchor(i))
		}
		if s.markers[i].at != f.Anchor(i) {
			t.Fatalf("marker %d placed at %+v, anchor %+v", i, s.markers[i].at, f.Anchor(i))
		}
	}
}

func TestRebuildReplacesMarkers(t *testing.T) {
	s := &recSurface{}
	f := Build(s, DefaultConfig(), DefaultPlus())

	cfg := DefaultConfig()
	cfg.GridSpacing = 100
	f.Rebuild(s, cfg, DefaultDot())

	if s.clears != 2 {
		t.Errorf("clears = %d, want 2", s.clears)
	}
	if f.Len() != 100 || len(s.markers) != 100 {
		t.Fatalf("after rebuild: field %d, surface %d, want 100", f.Len(), len(s.markers))
	}
	if s.markers[0].geometry.Radius != DefaultDot().Radius {
		t.Errorf("rebuild kept the old shape")
	}
}

func TestShapeGeometry(t *testing.T) {
	plus := DefaultPlus().Geometry()
	if len(plus.Segments) != 2 || plus.Radius != 0 {
		t.Fatalf("plus geometry = %+v", plus)
	}
	if plus.Segments[0] != (Segment{Vec2{-3, 0}, Vec2{3, 0}}) {
		t.Errorf("horizontal arm = %+v", plus.Segments[0])
	}
	if plus.Segments[1] != (Segment{Vec2{0, -3}, Vec2{0, 3}}) {
		t.Errorf("vertical arm = %+v", plus.Segments[1])
	}
	if plus.Color.Hex() != "#383838" {
		t.Errorf("color = %s, want #383838", plus.Color.Hex())
	}

	dot := DefaultDot().Geometry()
	if len(dot.Segments) != 0 || dot.Radius <= 0 {
		t.Errorf("dot geometry = %+v", dot)
	}

	if _, err := ShapeByName("star"); err == nil {
		t.Error("ShapeByName(star) should fail")
	}
	s, err := ShapeByName("dot")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(Dot); !ok {
		t.Errorf("ShapeByName(dot) = %T", s)
	}
}
