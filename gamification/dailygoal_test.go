package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyGoalForLevel(t *testing.T) {
	testCases := []struct {
		level int
		goal  int
	}{
		{1, 50},
		{2, 60},
		{3, 70},
		{4, 80},
		{5, 90},
		{6, 100},
		{7, 150},
		{0, DefaultDailyGoalXP},
		{-3, DefaultDailyGoalXP},
		{42, DefaultDailyGoalXP},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.goal, DailyGoalForLevel(tc.level), "level %d", tc.level)
	}
}

func TestDailyGoalNonDecreasing(t *testing.T) {
	for level := 2; level <= MaxLevel; level++ {
		assert.GreaterOrEqual(t, DailyGoalForLevel(level), DailyGoalForLevel(level-1))
	}
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 0.0, ProgressPercentage(0, 50))
	assert.Equal(t, 50.0, ProgressPercentage(25, 50))
	assert.Equal(t, 100.0, ProgressPercentage(50, 50))
	// Clamped: over-earning never exceeds 100.
	assert.Equal(t, 100.0, ProgressPercentage(500, 50))
	// Never negative, and a broken goal yields 0 rather than Inf.
	assert.Equal(t, 0.0, ProgressPercentage(-10, 50))
	assert.Equal(t, 0.0, ProgressPercentage(10, 0))
}

func TestThemeForLevelTotal(t *testing.T) {
	for level := -2; level <= 10; level++ {
		theme := ThemeForLevel(level)
		assert.NotEmpty(t, theme.Primary, "level %d", level)
	}
	assert.Equal(t, ThemeForLevel(1), ThemeForLevel(0))
	assert.Equal(t, ThemeForLevel(1), ThemeForLevel(8))
	assert.NotEqual(t, ThemeForLevel(1), ThemeForLevel(7))
}
