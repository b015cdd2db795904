package field

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// Config holds the tunables of the effect. The zero value is not usable, start
// from DefaultConfig, PlusConfig or DotConfig.
type Config struct {
	// Lattice
	GridSpacing float64 `json:"gridSpacing"`
	ViewBoxSize float64 `json:"viewBoxSize"`

	// Repulsion
	RepelRadius   float64 `json:"repelRadius"`
	RepelStrength float64 `json:"repelStrength"`
	EaseFactor    float64 `json:"easeFactor"`

	// Text glow
	GlowRadius          float64 `json:"glowRadius"`
	MaxGlowBlur         float64 `json:"maxGlowBlur"`
	GlowEaseFactor      float64 `json:"glowEaseFactor"`
	GlowThreshold       float64 `json:"glowThreshold"`
	GlowOuterMultiplier float64 `json:"glowOuterMultiplier"`
	// GlowFalloff names the curve mapping closeness (1 - d/GlowRadius) to
	// intensity. Empty means "inQuad".
	GlowFalloff string `json:"glowFalloff,omitempty"`
}

// DefaultConfig returns the plus-grid tuning.
func DefaultConfig() Config {
	return Config{
		GridSpacing:         45,
		ViewBoxSize:         1000,
		RepelRadius:         130,
		RepelStrength:       35,
		EaseFactor:          0.18,
		GlowRadius:          250,
		MaxGlowBlur:         12,
		GlowEaseFactor:      0.15,
		GlowThreshold:       0.1,
		GlowOuterMultiplier: 1.5,
		GlowFalloff:         "inQuad",
	}
}

// PlusConfig is the tuning used with the plus-sign markers.
func PlusConfig() Config { return DefaultConfig() }

// DotConfig is the tuning used with the dot markers. It only differs in the
// outer glow layer, which spreads twice the inner blur instead of 1.5 times.
func DotConfig() Config {
	c := DefaultConfig()
	c.GlowOuterMultiplier = 2
	return c
}

// ConfigFor returns the preset matching a shape name ("plus" or "dot").
func ConfigFor(shape string) Config {
	if shape == "dot" {
		return DotConfig()
	}
	return PlusConfig()
}

// SameLattice reports whether c and o produce the same anchors.
func (c Config) SameLattice(o Config) bool {
	return c.GridSpacing == o.GridSpacing && c.ViewBoxSize == o.ViewBoxSize
}

// MaxCells bounds the lattice to MaxCells x MaxCells anchors.
const MaxCells = 1000

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every value is inside its usable domain.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"gridSpacing", c.GridSpacing},
		{"viewBoxSize", c.ViewBoxSize},
		{"repelRadius", c.RepelRadius},
		{"glowRadius", c.GlowRadius},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be finite and > 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"repelStrength", c.RepelStrength},
		{"maxGlowBlur", c.MaxGlowBlur},
		{"glowThreshold", c.GlowThreshold},
		{"glowOuterMultiplier", c.GlowOuterMultiplier},
	}
	for _, p := range nonNegative {
		if !(p.v >= 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be finite and >= 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if n := c.ViewBoxSize / c.GridSpacing; n > MaxCells {
		return fmt.Errorf("%w: %v cells per axis, at most %d", ErrInvalidConfig, math.Ceil(n), MaxCells)
	}
	if !(c.EaseFactor > 0 && c.EaseFactor <= 1) {
		return fmt.Errorf("%w: easeFactor must be in (0,1], got %v", ErrInvalidConfig, c.EaseFactor)
	}
	if !(c.GlowEaseFactor > 0 && c.GlowEaseFactor <= 1) {
		return fmt.Errorf("%w: glowEaseFactor must be in (0,1], got %v", ErrInvalidConfig, c.GlowEaseFactor)
	}
	if _, err := Falloff(c.GlowFalloff); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseConfig overlays the JSON object in data on top of base and validates
// the result. Keys missing from data keep the base value.
func ParseConfig(base Config, data []byte) (Config, error) {
	c := base
	if err := json.Unmarshal(data, &c); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return base, err
	}
	return c, nil
}

var falloffs = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"inCubic":   ease.InCubic,
	"inQuart":   ease.InQuart,
	"inSine":    ease.InSine,
	"inExpo":    ease.InExpo,
	"inCirc":    ease.InCirc,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
}

// Falloff resolves a glow falloff curve by name.
func Falloff(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.InQuad, nil
	}
	fn, ok := falloffs[name]
	if !ok {
		return nil, fmt.Errorf("unknown glow falloff %q (have %v)", name, FalloffNames())
	}
	return fn, nil
}

// FalloffNames lists the accepted GlowFalloff values.
func FalloffNames() []string {
	names := make([]string, 0, len(falloffs))
	for n := range falloffs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
