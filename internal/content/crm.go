package content

import "fmt"

type CRMSuggestions struct {
	OpportunityLevel string   `json:"opportunity_level"`
	Influence        string   `json:"influence"`
	GrowthPath       string   `json:"growth_path"`
	Dos              []string `json:"dos"`
	Donts            []string `json:"donts"`
	Timing           string   `json:"timing"`
}

var influenceMap = map[int]string{
	1: "their independence", 4: "logic and stability", 7: "their intellect",
	8: "their ambition and legacy", 2: "partnership", 6: "their sense of duty",
	9: "a higher cause", 3: "creative ideas", 5: "adventure and freedom",
	11: "their vision", 22: "a grand, practical plan", 33: "helping others",
}

var dosMap = map[int][]string{
	1: {"Be direct", "Respect their autonomy", "Focus on the goal"},
	4: {"Be prepared with data", "Provide a clear plan", "Be reliable"},
	7: {"Give them space for reflection", "Acknowledge their strategic mind", "Speak with depth and authenticity"},
	8: {"Talk about long-term value", "Be efficient and professional", "Show confidence"},
	2: {"Be patient and diplomatic", "Listen more than you talk", "Seek win-win outcomes"},
	3: {"Be optimistic and positive", "Brainstorm creative ideas", "Keep it engaging"},
	5: {"Be flexible", "Offer new experiences", "Focus on freedom of choice"},
	6: {"Show you care", "Discuss responsibilities", "Acknowledge their contributions"},
	9: {"Focus on the greater good", "Show compassion", "Be idealistic"},
}

var dontsMap = map[int][]string{
	1: {"Challenge their authority directly", "Be indecisive", "Waste their time"},
	4: {"Be disorganized", "Rely on vague promises", "Rush the process"},
	7: {"Rely on emotional appeals", "Be superficial", "Pressure them for a quick answer"},
	8: {"Show weakness", "Be inefficient", "Ignore the bottom line"},
	2: {"Be aggressive or demanding", "Create conflict", "Ignore their feelings"},
	3: {"Be overly critical or negative", "Bog them down with details", "Be boring"},
	5: {"Try to control or restrict them", "Insist on a rigid routine", "Be dogmatic"},
	6: {"Be selfish", "Dismiss their concerns", "Take them for granted"},
	9: {"Be cynical or petty", "Focus only on personal gain", "Be intolerant"},
}

// Master life paths extend the list of their reduced counterpart (11->2,
// 22->4, 33->6) with one extra item each.
var masterDosExtras = map[int]struct {
	base  int
	extra string
}{
	11: {base: 2, extra: "Acknowledge their intuition"},
	22: {base: 4, extra: "Think big picture"},
	33: {base: 6, extra: "Focus on service"},
}

var masterDontsExtras = map[int]struct {
	base  int
	extra string
}{
	11: {base: 2, extra: "Dismiss their feelings"},
	22: {base: 4, extra: "Present small, uninspiring ideas"},
	33: {base: 6, extra: "Act unethically"},
}

var timingMap = map[int]string{
	1: "This is a year for action. Present new ideas and proposals now.",
	4: "This is a year for work. Present practical, well-structured plans.",
	7: "This is a year for reflection. Plant conceptual seeds now for action later. Allow for a long decision-making process.",
	8: "This is a year for power moves. Present opportunities for financial growth and expansion.",
	9: "This is a year of completion. Focus on wrapping up old projects rather than starting major new ones.",
	5: "This is a year of change. Be prepared for sudden shifts. Present flexible opportunities.",
}

// OpportunityTier buckets a composite score into the outreach tier label.
func OpportunityTier(score int) string {
	switch {
	case score >= 75:
		return "High (Elite Tier)"
	case score >= 60:
		return "Medium (Premium)"
	default:
		return "Neutral"
	}
}

// CRMForProfile derives relationship guidance from the life path, the
// composite score (tier thresholds at 75 and 60) and the current personal
// year.
func CRMForProfile(lifePath, score, personalYear int) CRMSuggestions {
	level := OpportunityTier(score)

	appeal, ok := influenceMap[lifePath]
	if !ok {
		appeal = "their unique perspective"
	}
	influence := fmt.Sprintf("Appeal to %s. Present well-researched, logical strategies that solve a complex problem or offer a clear path to greater mastery. Show them precisely how your proposal aligns with their deepest principles and practical ambitions.", appeal)

	growthPath := "Focus on building trust through intellectual respect and unwavering consistency. Engage in deep conversations about strategy, philosophy, and spirituality. Provide stability and demonstrate competence, proving you are a reliable pillar for their long-term vision."

	timing, ok := timingMap[personalYear]
	if !ok {
		timing = "Follow their lead on timing, focusing on building a solid relationship first."
	}

	return CRMSuggestions{
		OpportunityLevel: level,
		Influence:        influence,
		GrowthPath:       growthPath,
		Dos:              guidanceList(dosMap, masterDosExtras, lifePath, []string{"Be authentic", "Listen carefully", "Build trust over time"}),
		Donts:            guidanceList(dontsMap, masterDontsExtras, lifePath, []string{"Be insincere", "Make assumptions", "Break promises"}),
		Timing:           timing,
	}
}

func guidanceList(table map[int][]string, extras map[int]struct {
	base  int
	extra string
}, lifePath int, fallback []string) []string {
	base, ok := table[lifePath]
	if !ok {
		base = fallback
	}
	out := make([]string, 0, len(base)+4)
	out = append(out, base...)
	if ext, ok := extras[lifePath]; ok {
		out = append(out, table[ext.base]...)
		out = append(out, ext.extra)
	}
	return out
}
