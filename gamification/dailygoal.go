package gamification

// DefaultDailyGoalXP is the goal used for levels outside the table.
const DefaultDailyGoalXP = 50

var dailyGoals = map[int]int{
	1: 50,
	2: 60,
	3: 70,
	4: 80,
	5: 90,
	6: 100,
	7: 150,
}

// DailyGoalForLevel returns the XP target for one calendar day at the given
// level. Total and non-decreasing in level; undefined levels fall back to the
// default goal.
func DailyGoalForLevel(level int) int {
	if goal, ok := dailyGoals[level]; ok {
		return goal
	}
	return DefaultDailyGoalXP
}

// ProgressPercentage returns earned/goal as a percentage clamped to [0, 100].
// A non-positive goal yields 0.
func ProgressPercentage(earned, goal int) float64 {
	if goal <= 0 || earned <= 0 {
		return 0
	}
	pct := float64(earned) / float64(goal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
