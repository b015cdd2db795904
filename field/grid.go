package field

// Marker is one rendered primitive. MoveTo places its center at p, in logical
// coordinates already rounded to two decimals.
type Marker interface {
	MoveTo(p Vec2)
}

// Surface is the display container that hosts the markers.
type Surface interface {
	// Clear removes every marker previously placed.
	Clear()
	// Place creates a marker drawing g centered at at.
	Place(at Vec2, g Geometry) Marker
}

// Anchors lays out a cell centered square lattice over [0, size) in both
// axes: spacing/2, spacing/2+spacing, ... The result is x-major.
func Anchors(spacing, size float64) []Vec2 {
	var coords []float64
	for i := 0; ; i++ {
		c := spacing/2 + float64(i)*spacing
		if c >= size {
			break
		}
		coords = append(coords, c)
	}
	anchors := make([]Vec2, 0, len(coords)*len(coords))
	for _, x := range coords {
		for _, y := range coords {
			anchors = append(anchors, Vec2{x, y})
		}
	}
	return anchors
}

// Field is the animated lattice: anchors, where each marker currently is,
// and the host marker drawn there. All three slices share one index.
type Field struct {
	anchors   []Vec2
	positions []Vec2
	markers   []Marker

	// generation counts rebuilds.
	generation uint64
}

// Build creates a field on s using the lattice settings of cfg.
func Build(s Surface, cfg Config, shape Shape) *Field {
	f := &Field{}
	f.Rebuild(s, cfg, shape)
	return f
}

// Rebuild clears s and repopulates it, resetting every marker to its anchor.
func (f *Field) Rebuild(s Surface, cfg Config, shape Shape) {
	s.Clear()
	f.generation++
	g := shape.Geometry()
	f.anchors = Anchors(cfg.GridSpacing, cfg.ViewBoxSize)
	f.positions = make([]Vec2, len(f.anchors))
	f.markers = make([]Marker, len(f.anchors))
	copy(f.positions, f.anchors)
	for i, a := range f.anchors {
		f.markers[i] = s.Place(a, g)
	}
}

// Generation changes every time the field is rebuilt.
func (f *Field) Generation() uint64 { return f.generation }

// Len returns the number of markers.
func (f *Field) Len() int { return len(f.anchors) }

// Anchor returns the rest position of marker i.
func (f *Field) Anchor(i int) Vec2 { return f.anchors[i] }

// Position returns the current, unrounded, position of marker i.
func (f *Field) Position(i int) Vec2 { return f.positions[i] }

// Displacement returns how far marker i currently sits from its anchor.
func (f *Field) Displacement(i int) Vec2 { return f.positions[i].Sub(f.anchors[i]) }

// Discard is a Surface that draws nothing, for headless use.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                      {}
func (discard) Place(Vec2, Geometry) Marker { return nopMarker{} }

type nopMarker struct{}

func (nopMarker) MoveTo(Vec2) {}
