package evergreen

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero camera", func(c *Config) { c.CameraDistance = 0 }},
		{"nan camera", func(c *Config) { c.CameraDistance = math.NaN() }},
		{"one layer", func(c *Config) { c.LayerCount = 1 }},
		{"negative foliage", func(c *Config) { c.FoliageBase = -1 }},
		{"negative lights", func(c *Config) { c.LightsDense = -5 }},
		{"empty palette", func(c *Config) { c.LightPalette = nil }},
		{"empty bark", func(c *Config) { c.BarkTones = []Color{} }},
		{"crown zero", func(c *Config) { c.CrownScale = 0 }},
		{"crown over one", func(c *Config) { c.CrownScale = 1.5 }},
		{"snow speed", func(c *Config) { c.Snow.Speed = Range{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LayerCount = 1
	cfg.BarkTones = nil
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("want two joined errors, got %v", err)
	}
}

func TestGeometry(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.Geometry(1000, 1000)
	want := Geometry{Width: 1000, Height: 1000, TreeHeight: 580, TreeRadius: 220, CenterX: 500, GroundY: 820}
	for _, f := range []struct {
		name      string
		got, want float64
	}{
		{"TreeHeight", g.TreeHeight, want.TreeHeight},
		{"TreeRadius", g.TreeRadius, want.TreeRadius},
		{"CenterX", g.CenterX, want.CenterX},
		{"GroundY", g.GroundY, want.GroundY},
	} {
		if math.Abs(f.got-f.want) > eps {
			t.Errorf("%s = %v, want %v", f.name, f.got, f.want)
		}
	}

	v := cfg.View(g)
	if v.CenterX != g.CenterX || v.GroundY != g.GroundY || v.CameraDistance != 600 || v.MinScale != defaultMinScale {
		t.Errorf("View = %+v", v)
	}
}

func TestClampDeviceScale(t *testing.T) {
	tests := []struct {
		in, max, want float64
	}{
		{1, 2, 1},
		{1.5, 2, 1.5},
		{3, 2, 2},
		{0, 2, 1},
		{-1, 2, 1},
		{math.NaN(), 2, 1},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := clampDeviceScale(tt.in, tt.max); got != tt.want {
			t.Errorf("clampDeviceScale(%v, %v) = %v, want %v", tt.in, tt.max, got, tt.want)
		}
	}
}
