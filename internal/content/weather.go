package content

import "fmt"

type EnergeticWeather struct {
	PersonalCycle string `json:"personal_cycle"`
	MajorTransits string `json:"major_transits"`
}

var yearThemes = map[int]string{
	1: "new beginnings and planting seeds", 2: "patience and partnership",
	3: "creativity and socializing", 4: "hard work and building foundations",
	5: "change and freedom", 6: "responsibility and relationships",
	7: "introspection and analysis", 8: "harvest and power",
	9: "completion and release",
}

var monthThemes = map[int]string{
	1: "taking initiative", 2: "cooperation", 3: "self-expression",
	4: "focusing on details", 5: "embracing change", 6: "handling duties",
	7: "reflection", 8: "managing resources", 9: "letting go",
}

var challengeThemes = map[int]string{
	0: "indecisiveness", 1: "self-assertion", 2: "over-sensitivity",
	3: "scattered focus", 4: "rigidity", 5: "impulsiveness",
	6: "unrealistic ideals", 7: "skepticism", 8: "misuse of power",
}

// Personal years/months can carry master numbers 11/22/33, which the theme
// tables do not key; those and any other unmapped values fall back to a
// neutral theme instead of rendering a hole in the sentence.
func theme(table map[int]string, n int, fallback string) string {
	if t, ok := table[n]; ok {
		return t
	}
	return fallback
}

// CurrentWeather renders the energetic-weather narrative from the current
// personal year/month and the main challenge number.
func CurrentWeather(personalYear, personalMonth, mainChallenge int) EnergeticWeather {
	yearTheme := theme(yearThemes, personalYear, "intensified growth and transition")
	monthTheme := theme(monthThemes, personalMonth, "heightened focus")
	challengeTheme := theme(challengeThemes, mainChallenge, "imbalance")

	return EnergeticWeather{
		PersonalCycle: fmt.Sprintf("They are in a %d Personal Year, a cycle demanding %s. In their current %d Personal Month, the focus is on %s.",
			personalYear, yearTheme, personalMonth, monthTheme),
		MajorTransits: fmt.Sprintf("Their Main Challenge number is %d, indicating a lifelong lesson in overcoming %s. This theme will surface repeatedly, offering opportunities for mastery.",
			mainChallenge, challengeTheme),
	}
}
