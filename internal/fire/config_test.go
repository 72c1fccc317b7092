package fire

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
		want error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidGeometry},
		{"negative cell size", func(c *Config) { c.CellSize = -1 }, ErrInvalidGeometry},
		{"small radius", func(c *Config) { c.NeighborsDist = 0.9 }, ErrInvalidConfig},
		{"inverted burn time", func(c *Config) { c.MaxCellBurnTime = c.MinCellBurnTime - 1 }, ErrInvalidConfig},
		{"inverted thresholds", func(c *Config) { c.BurnThresholds.High = c.BurnThresholds.Medium / 2 }, ErrInvalidConfig},
		{"survival above one", func(c *Config) { c.FireSurvivalProbability = 1.5 }, ErrInvalidConfig},
		{"bad daily probability", func(c *Config) { c.EndOfLowIntensityFireProbability = []float64{0, 2} }, ErrInvalidConfig},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.edit(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLowIntensityEndChanceRepeatsLastDay(t *testing.T) {
	cfg := DefaultConfig()
	want := []float64{0, 0.6, 0.6, 0.7, 0.8, 1, 1, 1}
	for day, p := range want {
		if got := cfg.LowIntensityEndChance(day); got != p {
			t.Fatalf("day %d: got %f, want %f", day, got, p)
		}
	}
	if cfg.LowIntensityEndChance(-1) != 0 {
		t.Fatal("negative days have no chance")
	}
	cfg.EndOfLowIntensityFireProbability = nil
	if cfg.LowIntensityEndChance(3) != 0 {
		t.Fatal("an empty table never ends low intensity fire")
	}
}

func TestFromMapOverridesAndFallsBack(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                    "64",
		"h":                    "oops",
		"cell_size":            "250",
		"survival_probability": "3",
		"burn_index_medium":    "40",
		"seed":                 "99",
		"neighbors_dist":       "0.2",
	})
	def := DefaultConfig()
	if cfg.Width != 64 || cfg.Height != def.Height {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.CellSize != 250 || cfg.Seed != 99 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.FireSurvivalProbability != 1 {
		t.Fatalf("survival probability should saturate at 1, got %f", cfg.FireSurvivalProbability)
	}
	if cfg.BurnThresholds.High != 40 {
		t.Fatalf("high threshold should rise to the medium one, got %f", cfg.BurnThresholds.High)
	}
	if cfg.NeighborsDist != def.NeighborsDist {
		t.Fatalf("out of range radius should keep the default, got %f", cfg.NeighborsDist)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("FromMap should produce a valid config: %v", err)
	}
}

func TestApplyMapReportsAppliedKeys(t *testing.T) {
	cfg := DefaultConfig()
	got := ApplyMap(&cfg, map[string]string{"max_burn_time": "100", "min_burn_time": "300", "bogus": "1"})
	slices.Sort(got)
	if !slices.Equal(got, []string{"max_burn_time", "min_burn_time"}) {
		t.Fatalf("unexpected applied keys %v", got)
	}
	if cfg.MaxCellBurnTime != 300 {
		t.Fatalf("max burn time should be lifted to the minimum, got %f", cfg.MaxCellBurnTime)
	}
	if ApplyMap(&cfg, nil) != nil {
		t.Fatal("nil map applies nothing")
	}
}
