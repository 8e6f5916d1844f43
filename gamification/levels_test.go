package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	testCases := []struct {
		name  string
		xp    int
		level int
	}{
		{"zero xp", 0, 1},
		{"negative xp clamps to level 1", -10, 1},
		{"just below level 2", 299, 1},
		{"level 2 boundary", 300, 2},
		{"level 3 boundary", 800, 3},
		{"mid level 4", 2000, 4},
		{"level 5 boundary", 2500, 5},
		{"level 6 boundary", 4000, 6},
		{"just below top level", 9999, 6},
		{"top level boundary", 10000, 7},
		{"far past top level", 1000000, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.level, LevelForXP(tc.xp))
		})
	}
}

func TestLevelForXPNonDecreasing(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 12000; xp++ {
		level := LevelForXP(xp)
		assert.GreaterOrEqual(t, level, prev, "level dropped at xp=%d", xp)
		prev = level
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "Iniciante", LevelName(1))
	assert.Equal(t, "Lendário", LevelName(7))
	// Out-of-table levels fall back to level 1.
	assert.Equal(t, "Iniciante", LevelName(0))
	assert.Equal(t, "Iniciante", LevelName(99))
}

func TestXPWithinAndToNextLevel(t *testing.T) {
	// 950 XP sits 150 into level 3 with 550 left to level 4.
	assert.Equal(t, 3, LevelForXP(950))
	assert.Equal(t, 150, XPWithinLevel(950))
	assert.Equal(t, 550, XPToNextLevel(950))

	// Top level never reports a remainder to climb.
	assert.Equal(t, 0, XPToNextLevel(10500))
	assert.Equal(t, 0, XPWithinLevel(-5))
}
