package field

import (
	"errors"
	"log"
	"math"
)

var (
	// ErrSingular is returned when inverting a matrix with no inverse.
	ErrSingular = errors.New("singular matrix")
	// ErrNoTransform is returned by mappers whose host has no screen transform.
	ErrNoTransform = errors.New("screen transform unavailable")
)

// Affine is a 2D affine matrix in SVGMatrix order [a b c d e f]:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
type Affine [6]float64

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// ScaleTranslate builds the matrix that scales by (sx, sy) then moves by (tx, ty).
func ScaleTranslate(sx, sy, tx, ty float64) Affine {
	return Affine{sx, 0, 0, sy, tx, ty}
}

// Apply transforms p by m.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[2]*p.Y + m[4],
		m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Invert returns the inverse of m, or ErrSingular when the determinant is ~0
// or m holds non-finite entries.
func (m Affine) Invert() (Affine, error) {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Identity, ErrSingular
		}
	}
	det := m[0]*m[3] - m[2]*m[1]
	if !(math.Abs(det) >= 1e-12) || math.IsInf(det, 0) {
		return Identity, ErrSingular
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, nil
}

// Mapper converts screen coordinates (clientX/clientY) to the logical space
// the anchors live in.
type Mapper interface {
	ScreenToLogical(screen Vec2) (Vec2, error)
}

// CTMMapper maps through the inverse of a screen transform matrix, the
// logical to screen matrix a host reports for its canvas (getScreenCTM).
type CTMMapper func() (Affine, error)

// ScreenToLogical implements Mapper.
func (fn CTMMapper) ScreenToLogical(screen Vec2) (Vec2, error) {
	ctm, err := fn()
	if err != nil {
		return Offscreen, err
	}
	inv, err := ctm.Invert()
	if err != nil {
		return Offscreen, err
	}
	return inv.Apply(screen), nil
}

// MapPointer converts screen to logical space with m. Any failure, including
// a panic inside the host or a non-finite result, yields Offscreen so the animation keeps running
// with repulsion effectively off.
func MapPointer(m Mapper, screen Vec2) (logical Vec2) {
	if m == nil {
		return Offscreen
	}
	defer func() {
		if r := recover(); r != nil {
			log.Println("field: converting screen coordinates:", r)
			logical = Offscreen
		}
	}()
	p, err := m.ScreenToLogical(screen)
	if err != nil {
		log.Println("field: converting screen coordinates:", err)
		return Offscreen
	}
	if !p.Finite() {
		log.Println("field: converting screen coordinates: non-finite result", p)
		return Offscreen
	}
	return p
}
