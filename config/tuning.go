// Package config loads runtime tuning for the absorption engine and the demo from YAML
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sinkhole/core"
	"github.com/lixenwraith/sinkhole/parameter"
)

// ErrInvalidTuning wraps every validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the complete runtime configuration
// Fields omitted from a YAML file keep their defaults
type Tuning struct {
	TickRate  int             `yaml:"tick_rate"`
	World     WorldConfig     `yaml:"world"`
	HoleField HoleFieldConfig `yaml:"hole_field"`
	Gate      GateConfig      `yaml:"gate"`
	Recovery  RecoveryConfig  `yaml:"recovery"`
	Swallow   SwallowConfig   `yaml:"swallow"`
	Magnet    MagnetConfig    `yaml:"magnet"`
	Growth    GrowthConfig    `yaml:"growth"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Goals     []GoalConfig    `yaml:"goals"`
}

// WorldConfig describes gravity and the single ground rectangle
type WorldConfig struct {
	Gravity         float64 `yaml:"gravity"`
	GroundHeight    float64 `yaml:"ground_height"`
	GroundMinX      float64 `yaml:"ground_min_x"`
	GroundMaxX      float64 `yaml:"ground_max_x"`
	GroundMinZ      float64 `yaml:"ground_min_z"`
	GroundMaxZ      float64 `yaml:"ground_max_z"`
	ContactFriction float64 `yaml:"contact_friction"`
	HoleMoveSpeed   float64 `yaml:"hole_move_speed"`
}

// HoleFieldConfig tunes the hole's pull curves and stabilization
type HoleFieldConfig struct {
	AbsorbSpeed        float64 `yaml:"absorb_speed"`
	PullCenterMin      float64 `yaml:"pull_center_min"`
	PullCenterMax      float64 `yaml:"pull_center_max"`
	PullDownMin        float64 `yaml:"pull_down_min"`
	PullDownMax        float64 `yaml:"pull_down_max"`
	MaxSpeedNearEdge   float64 `yaml:"max_speed_near_edge"`
	MaxSpeedNearCenter float64 `yaml:"max_speed_near_center"`

	Stabilize        bool    `yaml:"stabilize"`
	MaxAngularSpeed  float64 `yaml:"max_angular_speed"`
	TangentialDamp   float64 `yaml:"tangential_damp"`
	AngularDampBoost float64 `yaml:"angular_damp_boost"`

	SoftLinearDamping  float64 `yaml:"soft_linear_damping"`
	SoftAngularDamping float64 `yaml:"soft_angular_damping"`

	PullRadiusScale float64 `yaml:"pull_radius_scale"`
	MaxUpVelocity   float64 `yaml:"max_up_velocity"` // zero disables the cap
}

// GateConfig tunes admission: fit, centering, dwell and the trigger volume
type GateConfig struct {
	MinDwell          float64 `yaml:"min_dwell"`
	CenterGateFactor  float64 `yaml:"center_gate_factor"`
	FitTolerance      float64 `yaml:"fit_tolerance"`
	VolumeRadiusScale float64 `yaml:"volume_radius_scale"`
	VolumeHeight      float64 `yaml:"volume_height"` // above ground
	VolumeDepth       float64 `yaml:"volume_depth"`  // below ground
}

// RecoveryConfig tunes the downward ground probe
type RecoveryConfig struct {
	RayUp        float64 `yaml:"ray_up"`
	RayDown      float64 `yaml:"ray_down"`
	Offset       float64 `yaml:"offset"`
	AngularCatch float64 `yaml:"angular_catch"`
}

// SwallowConfig positions the collection line below the ground
type SwallowConfig struct {
	Depth        float64 `yaml:"depth"`
	Offset       float64 `yaml:"offset"`
	VolumeHeight float64 `yaml:"volume_height"` // above the detector line
	VolumeDepth  float64 `yaml:"volume_depth"`  // below the detector line
}

// MagnetConfig tunes the magnet boost
type MagnetConfig struct {
	Duration           float64 `yaml:"duration"`
	Radius             float64 `yaml:"radius"`
	Force              float64 `yaml:"force"`
	MaxPullSpeed       float64 `yaml:"max_pull_speed"`
	MinDistanceStop    float64 `yaml:"min_distance_stop"`
	ShrinkMultiplier   float64 `yaml:"shrink_multiplier"`
	ShrinkSpeed        float64 `yaml:"shrink_speed"`
	RestoreScaleOnStop bool    `yaml:"restore_scale_on_stop"`
	ScanInterval       float64 `yaml:"scan_interval"`
	MaxItemsPerScan    int     `yaml:"max_items_per_scan"`
}

// GrowthConfig tunes hole size progression and the grow boost
type GrowthConfig struct {
	StartSize       int     `yaml:"start_size"`
	StartScale      float64 `yaml:"start_scale"`
	ScalePerSize    float64 `yaml:"scale_per_size"`
	BaseRadius      float64 `yaml:"base_radius"`
	XPToNext        []int   `yaml:"xp_to_next"`
	BoostDuration   float64 `yaml:"boost_duration"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// SpawnConfig controls the initial scatter of objects
type SpawnConfig struct {
	Count         int            `yaml:"count"`
	UnfreezeDelay float64        `yaml:"unfreeze_delay"`
	Catalog       []CatalogEntry `yaml:"catalog"`
}

// CatalogEntry is one spawnable object kind
type CatalogEntry struct {
	Category       core.Category `yaml:"category"`
	HalfExtents    [3]float64    `yaml:"half_extents"`
	Mass           float64       `yaml:"mass"`
	Reward         int           `yaml:"reward"`
	MinLevel       int           `yaml:"min_level"`
	OverrideRadius float64       `yaml:"override_radius"`
	Weight         int           `yaml:"weight"` // relative pick frequency
}

// GoalConfig is a per-category collection requirement
type GoalConfig struct {
	Category core.Category `yaml:"category"`
	Required int           `yaml:"required"`
}

// Default returns the built-in tuning
func Default() *Tuning {
	return &Tuning{
		TickRate: parameter.DefaultTickRate,
		World: WorldConfig{
			Gravity:         parameter.Gravity,
			GroundHeight:    parameter.GroundHeight,
			GroundMinX:      -parameter.GroundHalfSize,
			GroundMaxX:      parameter.GroundHalfSize,
			GroundMinZ:      -parameter.GroundHalfSize,
			GroundMaxZ:      parameter.GroundHalfSize,
			ContactFriction: parameter.ContactFriction,
			HoleMoveSpeed:   parameter.HoleMoveSpeed,
		},
		HoleField: HoleFieldConfig{
			AbsorbSpeed:        parameter.AbsorbSpeed,
			PullCenterMin:      parameter.PullCenterMin,
			PullCenterMax:      parameter.PullCenterMax,
			PullDownMin:        parameter.PullDownMin,
			PullDownMax:        parameter.PullDownMax,
			MaxSpeedNearEdge:   parameter.MaxSpeedNearEdge,
			MaxSpeedNearCenter: parameter.MaxSpeedNearCenter,
			Stabilize:          true,
			MaxAngularSpeed:    parameter.MaxAngularSpeed,
			TangentialDamp:     parameter.TangentialDamp,
			AngularDampBoost:   parameter.AngularDampBoost,
			SoftLinearDamping:  parameter.SoftLinearDamping,
			SoftAngularDamping: parameter.SoftAngularDamping,
			PullRadiusScale:    parameter.PullRadiusScale,
			MaxUpVelocity:      parameter.MaxUpVelocity,
		},
		Gate: GateConfig{
			MinDwell:          parameter.MinDwell,
			CenterGateFactor:  parameter.CenterGateFactor,
			FitTolerance:      parameter.FitTolerance,
			VolumeRadiusScale: parameter.GateRadiusScale,
			VolumeHeight:      parameter.GateVolumeHeight,
			VolumeDepth:       parameter.GateVolumeDepth,
		},
		Recovery: RecoveryConfig{
			RayUp:        parameter.RecoverRayUp,
			RayDown:      parameter.RecoverRayDown,
			Offset:       parameter.RecoverOffset,
			AngularCatch: parameter.RecoverAngularKeep,
		},
		Swallow: SwallowConfig{
			Depth:        parameter.SwallowDepth,
			Offset:       parameter.SwallowOffset,
			VolumeHeight: parameter.SwallowVolumeHeight,
			VolumeDepth:  parameter.SwallowVolumeDepth,
		},
		Magnet: MagnetConfig{
			Duration:           parameter.MagnetDuration,
			Radius:             parameter.MagnetRadius,
			Force:              parameter.MagnetForce,
			MaxPullSpeed:       parameter.MagnetMaxPullSpeed,
			MinDistanceStop:    parameter.MagnetMinDistanceStop,
			ShrinkMultiplier:   parameter.MagnetShrink,
			ShrinkSpeed:        parameter.MagnetShrinkSpeed,
			RestoreScaleOnStop: true,
			ScanInterval:       parameter.MagnetScanInterval,
			MaxItemsPerScan:    parameter.MagnetMaxItemsPerScan,
		},
		Growth: GrowthConfig{
			StartSize:       parameter.StartSize,
			StartScale:      parameter.StartScale,
			ScalePerSize:    parameter.ScalePerSize,
			BaseRadius:      parameter.BaseHoleRadius,
			XPToNext:        append([]int(nil), parameter.XPToNextSize...),
			BoostDuration:   parameter.GrowBoostDuration,
			BoostMultiplier: parameter.GrowBoostMultiplier,
		},
		Spawn: SpawnConfig{
			Count:         parameter.SpawnCount,
			UnfreezeDelay: parameter.SpawnUnfreezeDelay,
			Catalog:       DefaultCatalog(),
		},
		Goals: DefaultGoals(),
	}
}

// DefaultGoals returns the built-in level goals
func DefaultGoals() []GoalConfig {
	return []GoalConfig{
		{Category: core.CategoryApple, Required: parameter.GoalApples},
		{Category: core.CategoryCoin, Required: parameter.GoalCoins},
		{Category: core.CategoryGem, Required: parameter.GoalGems},
	}
}

// DefaultCatalog returns the built-in object kinds
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{Category: core.CategoryApple, HalfExtents: [3]float64{0.2, 0.2, 0.2}, Mass: 0.3, Reward: 1, Weight: 6},
		{Category: core.CategoryPear, HalfExtents: [3]float64{0.2, 0.28, 0.2}, Mass: 0.3, Reward: 1, Weight: 5},
		{Category: core.CategoryBanana, HalfExtents: [3]float64{0.35, 0.1, 0.12}, Mass: 0.2, Reward: 1, Weight: 4},
		{Category: core.CategoryCoin, HalfExtents: [3]float64{0.25, 0.04, 0.25}, Mass: 0.1, Reward: 2, Weight: 4},
		{Category: core.CategoryGem, HalfExtents: [3]float64{0.15, 0.15, 0.15}, Mass: 0.2, Reward: 3, Weight: 2},
		{Category: core.CategoryRock, HalfExtents: [3]float64{0.4, 0.3, 0.4}, Mass: 3, Reward: 4, MinLevel: 1, Weight: 3},
		{Category: core.CategoryBox, HalfExtents: [3]float64{0.55, 0.55, 0.55}, Mass: 2, Reward: 5, MinLevel: 2, Weight: 2},
		{Category: core.CategoryBarrel, HalfExtents: [3]float64{0.5, 0.8, 0.5}, Mass: 4, Reward: 8, MinLevel: 3, OverrideRadius: 0.7, Weight: 1},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Marshal encodes the tuning as YAML
func (t *Tuning) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tuning: %w", err)
	}
	return data, nil
}

// TickDelta is the fixed step in seconds
func (t *Tuning) TickDelta() float64 {
	return 1.0 / float64(t.TickRate)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTuning, fmt.Sprintf(format, args...))
}

// Validate checks ranges and cross-field constraints, returning the first violation
func (t *Tuning) Validate() error {
	if t.TickRate <= 0 {
		return invalid("tick_rate must be positive, got %d", t.TickRate)
	}

	w := t.World
	if w.GroundMinX >= w.GroundMaxX || w.GroundMinZ >= w.GroundMaxZ {
		return invalid("ground rectangle is empty")
	}
	if w.ContactFriction < 0 {
		return invalid("contact_friction must not be negative")
	}

	h := t.HoleField
	if h.AbsorbSpeed <= 0 {
		return invalid("absorb_speed must be positive, got %.2f", h.AbsorbSpeed)
	}
	if err := checkRange("pull_center", h.PullCenterMin, h.PullCenterMax); err != nil {
		return err
	}
	if err := checkRange("pull_down", h.PullDownMin, h.PullDownMax); err != nil {
		return err
	}
	if err := checkRange("max_speed", h.MaxSpeedNearEdge, h.MaxSpeedNearCenter); err != nil {
		return err
	}
	if h.MaxAngularSpeed <= 0 || h.TangentialDamp < 0 || h.AngularDampBoost < 0 {
		return invalid("stabilization gains out of range")
	}
	if h.PullRadiusScale <= 0 {
		return invalid("pull_radius_scale must be positive")
	}
	if h.MaxUpVelocity < 0 {
		return invalid("max_up_velocity must not be negative")
	}

	g := t.Gate
	if g.MinDwell < 0 {
		return invalid("min_dwell must not be negative, got %.3f", g.MinDwell)
	}
	if g.FitTolerance < parameter.FitToleranceMin || g.FitTolerance > parameter.FitToleranceMax {
		return invalid("fit_tolerance %.3f outside [%.1f, %.1f]", g.FitTolerance, parameter.FitToleranceMin, parameter.FitToleranceMax)
	}
	if g.CenterGateFactor < parameter.CenterFactorMin || g.CenterGateFactor > parameter.CenterFactorMax {
		return invalid("center_gate_factor %.3f outside [%.2f, %.2f]", g.CenterGateFactor, parameter.CenterFactorMin, parameter.CenterFactorMax)
	}
	if g.VolumeRadiusScale <= 0 || g.VolumeHeight < 0 {
		return invalid("gate volume must have positive radius and non-negative height")
	}

	s := t.Swallow
	if s.Depth <= 0 || s.Offset < 0 || s.VolumeDepth <= 0 || s.VolumeHeight < 0 {
		return invalid("swallow depth and volume must be positive")
	}
	// An object must still be inside the gate volume when its top crosses the swallow line
	if g.VolumeDepth <= s.Depth+s.Offset {
		return invalid("gate volume_depth %.2f must exceed swallow depth + offset %.2f", g.VolumeDepth, s.Depth+s.Offset)
	}

	r := t.Recovery
	if r.RayUp < 0 || r.RayDown <= 0 || r.Offset < 0 {
		return invalid("recovery ray lengths out of range")
	}
	if r.AngularCatch < 0 || r.AngularCatch > 1 {
		return invalid("angular_catch must be within [0, 1]")
	}

	m := t.Magnet
	if m.Duration <= 0 || m.Radius <= 0 || m.Force < 0 || m.MaxPullSpeed <= 0 {
		return invalid("magnet duration, radius and speed must be positive")
	}
	if m.ShrinkMultiplier < parameter.MagnetShrinkMin || m.ShrinkMultiplier > parameter.MagnetShrinkMax {
		return invalid("shrink_multiplier %.2f outside [%.1f, %.1f]", m.ShrinkMultiplier, parameter.MagnetShrinkMin, parameter.MagnetShrinkMax)
	}
	if m.ScanInterval < 0 || m.MaxItemsPerScan <= 0 || m.MinDistanceStop < 0 {
		return invalid("magnet scan settings out of range")
	}

	gr := t.Growth
	if gr.StartSize < 1 || gr.BaseRadius <= 0 || gr.StartScale <= 0 || gr.ScalePerSize < 0 {
		return invalid("growth start values out of range")
	}
	if len(gr.XPToNext) == 0 {
		return invalid("xp_to_next must not be empty")
	}
	for i, xp := range gr.XPToNext {
		if xp <= 0 {
			return invalid("xp_to_next[%d] must be positive, got %d", i, xp)
		}
	}
	if gr.BoostDuration <= 0 || gr.BoostMultiplier < parameter.TempMultiplierMin || gr.BoostMultiplier > parameter.TempMultiplierMax {
		return invalid("grow boost settings out of range")
	}

	sp := t.Spawn
	if sp.Count < 0 || sp.UnfreezeDelay < 0 {
		return invalid("spawn count and delay must not be negative")
	}
	if sp.Count > 0 && len(sp.Catalog) == 0 {
		return invalid("spawn catalog is empty")
	}
	for i, e := range sp.Catalog {
		if e.Category == core.CategoryNone {
			return invalid("catalog[%d] has no category", i)
		}
		if e.HalfExtents[0] <= 0 || e.HalfExtents[1] <= 0 || e.HalfExtents[2] <= 0 {
			return invalid("catalog[%d] %s needs positive half_extents", i, e.Category)
		}
		if e.Reward < 0 || e.Weight < 0 || e.Mass < 0 || e.MinLevel < 0 {
			return invalid("catalog[%d] %s has negative values", i, e.Category)
		}
	}

	seen := make(map[core.Category]bool, len(t.Goals))
	for i, g := range t.Goals {
		if g.Category == core.CategoryNone {
			return invalid("goals[%d] has no category", i)
		}
		if g.Required <= 0 {
			return invalid("goals[%d] %s must require a positive count, got %d", i, g.Category, g.Required)
		}
		if seen[g.Category] {
			return invalid("goals[%d] repeats %s", i, g.Category)
		}
		seen[g.Category] = true
	}

	return nil
}

func checkRange(name string, lo, hi float64) error {
	if lo < 0 || lo > hi {
		return invalid("%s range invalid: min(%.2f) > max(%.2f) or negative", name, lo, hi)
	}
	return nil
}
