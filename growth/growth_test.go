package growth

import (
	"math"
	"testing"

	"github.com/lixenwraith/sinkhole/absorb"
	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/event"
)

const tickDt = 1.0 / 60.0

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// levelEvents drains q and returns level-up payloads in order
func levelEvents(q *event.Queue) []*event.LevelUpPayload {
	var out []*event.LevelUpPayload
	for _, ev := range q.Consume() {
		if ev.Type != event.EventHoleLevelUp {
			continue
		}
		out = append(out, ev.Payload.(*event.LevelUpPayload))
	}
	return out
}

func TestGrowthStartState(t *testing.T) {
	g := New(config.Default().Growth, nil)

	if g.Size() != 1 || g.Level() != 1 {
		t.Errorf("Expected size 1, got size %d level %d", g.Size(), g.Level())
	}
	if g.XP() != 0 {
		t.Errorf("Expected 0 XP, got %d", g.XP())
	}
	if !approx(g.HoleRadius(), 1.2) {
		t.Errorf("Expected radius 1.2, got %f", g.HoleRadius())
	}
	if g.Need() != 10 {
		t.Errorf("Expected need 10, got %d", g.Need())
	}
}

func TestGrowthStartSizeFloor(t *testing.T) {
	cfg := config.Default().Growth
	cfg.StartSize = 0
	g := New(cfg, nil)
	if g.Size() != 1 {
		t.Errorf("Expected start size clamped to 1, got %d", g.Size())
	}
}

func TestAddXP(t *testing.T) {
	tests := []struct {
		name       string
		amounts    []int
		wantSize   int
		wantXP     int
		wantGained int // from the last call
	}{
		{"below threshold", []int{9}, 1, 9, 0},
		{"exact threshold", []int{10}, 2, 0, 1},
		{"multi level in one call", []int{37}, 3, 2, 2},
		{"accumulates across calls", []int{6, 6}, 2, 2, 1},
		{"zero ignored", []int{0}, 1, 0, 0},
		{"negative ignored", []int{5, -5}, 1, 5, 0},
		{"past the table reuses last entry", []int{10 + 25 + 45 + 70 + 100, 100}, 7, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(config.Default().Growth, nil)
			gained := 0
			for _, a := range tt.amounts {
				gained = g.AddXP(a)
			}
			if g.Size() != tt.wantSize {
				t.Errorf("Expected size %d, got %d", tt.wantSize, g.Size())
			}
			if g.XP() != tt.wantXP {
				t.Errorf("Expected XP %d, got %d", tt.wantXP, g.XP())
			}
			if gained != tt.wantGained {
				t.Errorf("Expected %d sizes gained, got %d", tt.wantGained, gained)
			}
		})
	}
}

func TestLevelUpEvents(t *testing.T) {
	q := event.NewQueue(nil)
	g := New(config.Default().Growth, q)

	g.AddXP(37)

	got := levelEvents(q)
	if len(got) != 2 {
		t.Fatalf("Expected 2 level-up events, got %d", len(got))
	}
	if got[0].Level != 2 || got[1].Level != 3 {
		t.Errorf("Expected levels 2 then 3, got %d then %d", got[0].Level, got[1].Level)
	}
	if !approx(got[0].Radius, 1.2*1.12) {
		t.Errorf("Expected radius %f at size 2, got %f", 1.2*1.12, got[0].Radius)
	}
	if !approx(got[1].Radius, g.HoleRadius()) {
		t.Errorf("Expected last event radius to match current %f, got %f", g.HoleRadius(), got[1].Radius)
	}
}

func TestEmptyTableNeverLevels(t *testing.T) {
	cfg := config.Default().Growth
	cfg.XPToNext = nil
	g := New(cfg, nil)

	if gained := g.AddXP(1 << 20); gained != 0 {
		t.Errorf("Expected no level up without a table, got %d", gained)
	}
	if g.XP() != 1<<20 {
		t.Errorf("Expected XP to accumulate, got %d", g.XP())
	}
}

func TestCollectedAddsReward(t *testing.T) {
	g := New(config.Default().Growth, nil)
	var sink absorb.RewardSink = g

	sink.Collected(absorb.Collection{ID: 1, Reward: 4})
	sink.Collected(absorb.Collection{ID: 2, Reward: 7})

	if g.Size() != 2 || g.XP() != 1 {
		t.Errorf("Expected size 2 with 1 XP, got size %d with %d XP", g.Size(), g.XP())
	}
}

func TestTempMultiplier(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"normal", 1.5, 1.5},
		{"clamped high", 100, 10},
		{"clamped low", 0, 0.01},
		{"negative", -3, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(config.Default().Growth, nil)
			g.SetTempMultiplier(tt.in)
			if !approx(g.TempMultiplier(), tt.want) {
				t.Errorf("Expected multiplier %f, got %f", tt.want, g.TempMultiplier())
			}
			if !approx(g.HoleRadius(), 1.2*tt.want) {
				t.Errorf("Expected radius %f, got %f", 1.2*tt.want, g.HoleRadius())
			}
			g.ClearTempMultiplier()
			if !approx(g.HoleRadius(), 1.2) {
				t.Errorf("Expected radius 1.2 after clear, got %f", g.HoleRadius())
			}
		})
	}
}

func TestResetClearsProgress(t *testing.T) {
	g := New(config.Default().Growth, nil)
	g.AddXP(50)
	g.SetTempMultiplier(2)

	g.Reset()

	if g.Size() != 1 || g.XP() != 0 || g.TempMultiplier() != 1 {
		t.Errorf("Expected fresh state, got size %d XP %d multiplier %f", g.Size(), g.XP(), g.TempMultiplier())
	}
}
