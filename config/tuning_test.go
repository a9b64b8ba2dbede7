package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/sinkhole/core"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default tuning should validate, got %v", err)
	}
}

func TestLoadTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Tuning)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
tick_rate: 50
gate:
  min_dwell: 0.2
magnet:
  duration: 4
  restore_scale_on_stop: false
`,
			validate: func(t *testing.T, cfg *Tuning) {
				if cfg.TickRate != 50 {
					t.Errorf("expected tick_rate 50, got %d", cfg.TickRate)
				}
				if cfg.Gate.MinDwell != 0.2 {
					t.Errorf("expected min_dwell 0.2, got %v", cfg.Gate.MinDwell)
				}
				if cfg.Gate.CenterGateFactor != 0.55 {
					t.Errorf("expected default center_gate_factor, got %v", cfg.Gate.CenterGateFactor)
				}
				if cfg.Magnet.Duration != 4 || cfg.Magnet.RestoreScaleOnStop {
					t.Errorf("magnet override not applied: %+v", cfg.Magnet)
				}
				if cfg.HoleField.AbsorbSpeed != 1.2 {
					t.Errorf("expected default absorb_speed, got %v", cfg.HoleField.AbsorbSpeed)
				}
			},
		},
		{
			name: "catalog by category name",
			yamlContent: `
spawn:
  count: 3
  catalog:
    - category: Coin
      half_extents: [0.25, 0.04, 0.25]
      reward: 2
      weight: 1
    - category: barrel
      half_extents: [0.5, 0.8, 0.5]
      min_level: 3
      weight: 1
`,
			validate: func(t *testing.T, cfg *Tuning) {
				if len(cfg.Spawn.Catalog) != 2 {
					t.Fatalf("expected 2 catalog entries, got %d", len(cfg.Spawn.Catalog))
				}
				if cfg.Spawn.Catalog[0].Category != core.CategoryCoin {
					t.Errorf("expected coin, got %v", cfg.Spawn.Catalog[0].Category)
				}
				if cfg.Spawn.Catalog[1].MinLevel != 3 {
					t.Errorf("expected min_level 3, got %d", cfg.Spawn.Catalog[1].MinLevel)
				}
			},
		},
		{
			name:        "unknown category",
			yamlContent: "spawn:\n  catalog:\n    - category: anvil\n      half_extents: [1, 1, 1]\n",
			wantErr:     true,
			errContains: "anvil",
		},
		{
			name:        "fit tolerance out of range",
			yamlContent: "gate:\n  fit_tolerance: 1.5\n",
			wantErr:     true,
			errContains: "fit_tolerance",
		},
		{
			name:        "center factor out of range",
			yamlContent: "gate:\n  center_gate_factor: 0.1\n",
			wantErr:     true,
			errContains: "center_gate_factor",
		},
		{
			name:        "gate shallower than swallow line",
			yamlContent: "gate:\n  volume_depth: 1.0\n",
			wantErr:     true,
			errContains: "volume_depth",
		},
		{
			name:        "inverted pull range",
			yamlContent: "hole_field:\n  pull_down_min: 20\n",
			wantErr:     true,
			errContains: "pull_down",
		},
		{
			name:        "shrink out of range",
			yamlContent: "magnet:\n  shrink_multiplier: 0.1\n",
			wantErr:     true,
			errContains: "shrink_multiplier",
		},
		{
			name:        "empty growth table",
			yamlContent: "growth:\n  xp_to_next: []\n",
			wantErr:     true,
			errContains: "xp_to_next",
		},
		{
			name:        "non-positive tick rate",
			yamlContent: "tick_rate: 0\n",
			wantErr:     true,
			errContains: "tick_rate",
		},
		{
			name: "goals by category name",
			yamlContent: `
goals:
  - category: pear
    required: 4
  - category: Gem
    required: 1
`,
			validate: func(t *testing.T, cfg *Tuning) {
				if len(cfg.Goals) != 2 {
					t.Fatalf("expected goals replaced by the file, got %+v", cfg.Goals)
				}
				if cfg.Goals[0].Category != core.CategoryPear || cfg.Goals[0].Required != 4 {
					t.Errorf("unexpected first goal %+v", cfg.Goals[0])
				}
				if cfg.Goals[1].Category != core.CategoryGem {
					t.Errorf("expected case-insensitive category, got %+v", cfg.Goals[1])
				}
			},
		},
		{
			name:        "goal without count",
			yamlContent: "goals:\n  - category: apple\n    required: 0\n",
			wantErr:     true,
			errContains: "positive count",
		},
		{
			name:        "repeated goal",
			yamlContent: "goals:\n  - category: coin\n    required: 1\n  - category: coin\n    required: 2\n",
			wantErr:     true,
			errContains: "repeats coin",
		},
		{
			name:        "goal without category",
			yamlContent: "goals:\n  - required: 2\n",
			wantErr:     true,
			errContains: "no category",
		},
		{
			name:        "malformed yaml",
			yamlContent: "gate: [unclosed\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp file: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Magnet.Radius = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("expected ErrInvalidTuning, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestMarshalRoundTripValidates(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "category: coin") {
		t.Errorf("expected categories encoded by name, got:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(cfg.Spawn.Catalog) != len(DefaultCatalog()) {
		t.Errorf("expected %d catalog entries, got %d", len(DefaultCatalog()), len(cfg.Spawn.Catalog))
	}
	if len(cfg.Goals) != len(DefaultGoals()) {
		t.Errorf("expected %d goals, got %d", len(DefaultGoals()), len(cfg.Goals))
	}
}
