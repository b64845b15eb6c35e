// Package content maps computed numerology numbers to descriptive report
// content. Everything here is a stateless lookup over tables keyed by the
// engine's outputs; every table has a fallback entry so unexpected keys
// (0, or any defensive out-of-range value) degrade instead of failing.
package content

import "fmt"

type Meaning struct {
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
}

var numberMeanings = map[int]Meaning{
	1:  {Strengths: []string{"Leader", "Independent"}, Challenges: []string{"Arrogant", "Bossy"}},
	2:  {Strengths: []string{"Intuitive", "Cooperative"}, Challenges: []string{"Passive", "Emotional"}},
	3:  {Strengths: []string{"Creative", "Expressive"}, Challenges: []string{"Scattered", "Drama"}},
	4:  {Strengths: []string{"Reliable", "Disciplined"}, Challenges: []string{"Rigid", "Controlling"}},
	5:  {Strengths: []string{"Adventurous", "Charismatic"}, Challenges: []string{"Impulsive", "Addictive"}},
	6:  {Strengths: []string{"Nurturing", "Responsible"}, Challenges: []string{"Overbearing", "Self-sacrificing"}},
	7:  {Strengths: []string{"Spiritual", "Analytical"}, Challenges: []string{"Withdrawn", "Skeptical"}},
	8:  {Strengths: []string{"Ambitious", "Strategic"}, Challenges: []string{"Ruthless", "Workaholic"}},
	9:  {Strengths: []string{"Compassionate", "Visionary"}, Challenges: []string{"Over-giving", "Lost"}},
	11: {Strengths: []string{"Intuition", "Inspiration"}, Challenges: []string{"Anxiety", "Overload"}},
	22: {Strengths: []string{"Material Success with Purpose"}, Challenges: []string{"Control", "Pressure"}},
	33: {Strengths: []string{"Healing through Service"}, Challenges: []string{"Martyrdom", "Burnout"}},
}

// Meanings returns the strength/challenge word lists for a number. Unmapped
// keys get a neutral entry.
func Meanings(n int) Meaning {
	if m, ok := numberMeanings[n]; ok {
		return m
	}
	return Meaning{Strengths: []string{"Adaptable"}, Challenges: []string{"Unfocused"}}
}

var lifePathAdjectives = map[int]string{
	1: "Pioneering", 2: "Harmonizing", 3: "Creative", 4: "Systematic",
	5: "Adventurous", 6: "Nurturing", 7: "Analytical", 8: "Authoritative",
	9: "Compassionate", 11: "Visionary", 22: "Architectural", 33: "Altruistic",
}

var expressionNouns = map[int]string{
	1: "Leader", 2: "Diplomat", 3: "Communicator", 4: "Builder",
	5: "Agent of Change", 6: "Guardian", 7: "Seeker", 8: "Executive",
	9: "Humanitarian", 11: "Messenger", 22: "Master Builder", 33: "Master Teacher",
}

// Title composes the archetypal title: a life-path adjective plus an
// expression noun, with "Dynamic Force" as the combined fallback.
func Title(lifePath, expression int) string {
	adjective, ok := lifePathAdjectives[lifePath]
	if !ok {
		adjective = "Dynamic"
	}
	noun, ok := expressionNouns[expression]
	if !ok {
		noun = "Force"
	}
	return fmt.Sprintf("%s %s", adjective, noun)
}

type ColorInfo struct {
	Hex         string `json:"hex"`
	Description string `json:"description"`
}

var numberColors = map[int]ColorInfo{
	1:  {Hex: "#B91C1C", Description: "Fiery Red, representing leadership, ambition, and the drive to initiate action."},
	2:  {Hex: "#047857", Description: "Deep Green, symbolizing harmony, cooperation, and patient growth."},
	3:  {Hex: "#F59E0B", Description: "Vibrant Yellow, reflecting creativity, communication, and joyful expression."},
	4:  {Hex: "#1E3A8A", Description: "Solid Navy Blue, for structure, discipline, and dependable foundations."},
	5:  {Hex: "#4F46E5", Description: "Electric Indigo, representing freedom, change, and dynamic energy."},
	6:  {Hex: "#DB2777", Description: "Warm Magenta, for nurturing, responsibility, and community care."},
	7:  {Hex: "#581C87", Description: "Royal Purple, representing spiritual wisdom, introspection, and analysis."},
	8:  {Hex: "#171717", Description: "Jet Black, symbolizing power, authority, and material manifestation."},
	9:  {Hex: "#FFFFFF", Description: "Luminous White, for compassion, universal love, and selfless service."},
	11: {Hex: "#D1D5DB", Description: "Silver, reflecting intuition, illumination, and spiritual insight."},
	22: {Hex: "#FDE047", Description: "Gold, for manifesting grand visions into tangible, lasting legacies."},
	33: {Hex: "#BE185D", Description: "Rose Gold, representing unconditional love, healing, and teaching through service."},
}

func Color(lifePath int) ColorInfo {
	if c, ok := numberColors[lifePath]; ok {
		return c
	}
	return ColorInfo{Hex: "#4B5563", Description: "Neutral Gray, representing a balanced and adaptable nature."}
}
