package gamification

// Theme is the visual token bundle attached to a level. Values are HSL
// triplets consumed as CSS custom properties by the front end.
type Theme struct {
	Primary           string `json:"primary"`
	PrimaryForeground string `json:"primary_foreground"`
	Accent            string `json:"accent"`
	Ring              string `json:"ring"`
}

var levelThemes = map[int]Theme{
	1: {Primary: "199 89% 48%", PrimaryForeground: "0 0% 100%", Accent: "199 89% 48%", Ring: "199 89% 48%"}, // sky blue
	2: {Primary: "45 93% 47%", PrimaryForeground: "0 0% 0%", Accent: "45 93% 47%", Ring: "45 93% 47%"},      // golden yellow
	3: {Primary: "217 91% 35%", PrimaryForeground: "0 0% 100%", Accent: "217 91% 35%", Ring: "217 91% 35%"}, // navy blue
	4: {Primary: "142 76% 36%", PrimaryForeground: "0 0% 100%", Accent: "142 76% 36%", Ring: "142 76% 36%"}, // green
	5: {Primary: "271 81% 56%", PrimaryForeground: "0 0% 100%", Accent: "271 81% 56%", Ring: "271 81% 56%"}, // purple
	6: {Primary: "0 84% 60%", PrimaryForeground: "0 0% 100%", Accent: "0 84% 60%", Ring: "0 84% 60%"},       // red
	7: {Primary: "240 10% 4%", PrimaryForeground: "0 0% 100%", Accent: "240 10% 4%", Ring: "240 10% 4%"},    // black
}

// ThemeForLevel returns the theme for a level. It is total: any level outside
// the table maps to level 1's theme.
func ThemeForLevel(level int) Theme {
	if theme, ok := levelThemes[level]; ok {
		return theme
	}
	return levelThemes[1]
}
