package evergreen

import (
	"errors"
	"fmt"
	"math"
)

const defaultMinScale = 1e-3

// Config controls tree geometry, particle generation, and decorations.
// Start from DefaultConfig and override fields as needed.
type Config struct {
	// Seed seeds particle sampling. Zero picks a time-based seed.
	Seed uint64

	// CameraDistance is the virtual camera distance K in the perspective
	// scale K/(K+z).
	CameraDistance float64
	// MinScale floors the perspective scale for particles behind the camera.
	MinScale float64
	// RotationStep is added to the rotation angle on every tick. It is a
	// fixed per-tick increment tuned for a 60 TPS host.
	RotationStep float64

	// Viewport-relative geometry.
	HeightFraction float64 // tree height as a fraction of viewport height
	RadiusFraction float64 // tree radius as a fraction of viewport width
	GroundFraction float64 // ground line as a fraction of viewport height
	CrownScale     float64 // crown height as a fraction of tree height

	// Foliage.
	LayerCount   int
	FoliageBase  int   // particles in the bottom layer
	FoliageStep  int   // particles removed per layer going up
	FoliageOuter Range // radius jitter factor
	FoliageSize  Range
	LeafColor    Color

	// String lights.
	LightsSparse     int
	LightsDense      int
	LightRadiusScale float64
	LightSize        float64
	LightPalette     []Color

	// Trunk.
	TrunkCount       int
	TrunkHeightScale float64 // trunk height as a fraction of tree height
	TrunkBaseScale   float64 // base radius as a fraction of tree radius
	TrunkSize        Range
	BarkTones        []Color

	Snow    SnowConfig
	Overlay OverlayConfig

	// RebuildOnResize regenerates particles when the viewport changes so
	// the tree keeps its proportions.
	RebuildOnResize bool
	// MaxDeviceScale caps the device pixel ratio used for the back buffer.
	MaxDeviceScale float64
}

// DefaultConfig returns the stock tree: six foliage layers, 45/80 string
// lights, and a 420-particle trunk.
func DefaultConfig() Config {
	return Config{
		CameraDistance: 600,
		MinScale:       defaultMinScale,
		RotationStep:   0.0025,

		HeightFraction: 0.58,
		RadiusFraction: 0.22,
		GroundFraction: 0.82,
		CrownScale:     0.7,

		LayerCount:   6,
		FoliageBase:  220,
		FoliageStep:  25,
		FoliageOuter: Range{0.85, 1.05},
		FoliageSize:  Range{0.6, 1.9},
		LeafColor:    RGB(0x2e, 0xcc, 0x71),

		LightsSparse:     45,
		LightsDense:      80,
		LightRadiusScale: 0.9,
		LightSize:        2.5,
		LightPalette: []Color{
			RGB(0xff, 0x6b, 0x6b),
			RGB(0xff, 0xd9, 0x3d),
			RGB(0x4d, 0xd2, 0xff),
		},

		TrunkCount:       420,
		TrunkHeightScale: 0.78,
		TrunkBaseScale:   0.16,
		TrunkSize:        Range{0.7, 2.1},
		BarkTones:        []Color{RGB(0x8b, 0x5a, 0x2b), RGB(0x7a, 0x4a, 0x24)},

		Snow:    DefaultSnowConfig(),
		Overlay: DefaultOverlayConfig(),

		RebuildOnResize: true,
		MaxDeviceScale:  2,
	}
}

// Validate reports every setting that would produce a degenerate tree.
func (c *Config) Validate() error {
	var errs []error
	if c.CameraDistance <= 0 || math.IsNaN(c.CameraDistance) {
		errs = append(errs, fmt.Errorf("camera distance must be positive, got %v", c.CameraDistance))
	}
	if c.LayerCount < 2 {
		errs = append(errs, fmt.Errorf("layer count must be at least 2, got %d", c.LayerCount))
	}
	if c.FoliageBase < 0 || c.FoliageStep < 0 {
		errs = append(errs, fmt.Errorf("foliage counts must not be negative (base %d, step %d)", c.FoliageBase, c.FoliageStep))
	}
	if c.LightsSparse < 0 || c.LightsDense < 0 || c.TrunkCount < 0 {
		errs = append(errs, errors.New("particle counts must not be negative"))
	}
	if len(c.LightPalette) == 0 {
		errs = append(errs, errors.New("light palette is empty"))
	}
	if len(c.BarkTones) == 0 {
		errs = append(errs, errors.New("bark tones are empty"))
	}
	if c.CrownScale <= 0 || c.CrownScale > 1 {
		errs = append(errs, fmt.Errorf("crown scale must be in (0, 1], got %v", c.CrownScale))
	}
	if err := c.Snow.validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("evergreen: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Geometry is the tree layout derived from a viewport size.
type Geometry struct {
	Width, Height float64
	TreeHeight    float64
	TreeRadius    float64
	CenterX       float64
	GroundY       float64
}

// Geometry derives the tree layout for a w×h logical viewport.
func (c *Config) Geometry(w, h float64) Geometry {
	return Geometry{
		Width:      w,
		Height:     h,
		TreeHeight: h * c.HeightFraction,
		TreeRadius: w * c.RadiusFraction,
		CenterX:    w / 2,
		GroundY:    h * c.GroundFraction,
	}
}

// View returns the projection anchors for g.
func (c *Config) View(g Geometry) View {
	return View{
		CenterX:        g.CenterX,
		GroundY:        g.GroundY,
		CameraDistance: c.CameraDistance,
		MinScale:       c.MinScale,
	}
}

// clampDeviceScale treats a missing device pixel ratio as 1 and caps it at max.
func clampDeviceScale(f, max float64) float64 {
	if f <= 0 || math.IsNaN(f) {
		f = 1
	}
	if max > 0 && f > max {
		return max
	}
	return f
}
