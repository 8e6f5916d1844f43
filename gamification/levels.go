package gamification

// levelThreshold marks the minimum XP required for a level.
type levelThreshold struct {
	Level int
	Name  string
	MinXP int
}

// thresholds is the canonical level table, sorted by MinXP. Every place that
// derives a level from XP goes through LevelForXP; there is no alternate
// formula.
var thresholds = []levelThreshold{
	{1, "Iniciante", 0},
	{2, "Aprendiz", 300},
	{3, "Explorador", 800},
	{4, "Conhecedor", 1500},
	{5, "Especialista", 2500},
	{6, "Mestre", 4000},
	{7, "Lendário", 10000},
}

// MaxLevel is the highest attainable level.
const MaxLevel = 7

// LevelForXP maps an XP total to a level via the threshold table. It is
// non-decreasing in xp and returns 1 for any xp below the second threshold,
// including negative values.
func LevelForXP(xp int) int {
	level := 1
	for _, t := range thresholds {
		if xp >= t.MinXP {
			level = t.Level
		}
	}
	return level
}

// LevelName returns the display name for a level. Levels outside 1..MaxLevel
// fall back to level 1's name.
func LevelName(level int) string {
	if level < 1 || level > MaxLevel {
		level = 1
	}
	return thresholds[level-1].Name
}

// LevelMinXP returns the XP floor of a level, clamped to the table.
func LevelMinXP(level int) int {
	if level < 1 || level > MaxLevel {
		level = 1
	}
	return thresholds[level-1].MinXP
}

// XPWithinLevel returns how much XP has been earned inside the current level
// band.
func XPWithinLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp - LevelMinXP(LevelForXP(xp))
}

// XPToNextLevel returns the XP still missing to reach the next level, or 0 at
// the top level.
func XPToNextLevel(xp int) int {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 0
	}
	return thresholds[level].MinXP - xp
}

// Reward constants shared by the theory and quiz paths.
const (
	TheoryBonusXP      = 30
	XPPerCorrectAnswer = 10
)
