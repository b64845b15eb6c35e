package content

type attachmentRule struct {
	name    string
	matches func(lifePath, soulUrge, personality int) bool
	text    string
}

// Rules can overlap, so order matters: first match wins.
var attachmentRules = []attachmentRule{
	{
		name: "fearful_avoidant",
		matches: func(lifePath, soulUrge, personality int) bool {
			return in(soulUrge, 2, 6) && in(personality, 1, 5, 7)
		},
		text: "Fearful-Avoidant. They desire deep, soulful connection (Soul Urge) but their outward personality and life experiences push them toward independence, creating an internal conflict between intimacy and autonomy.",
	},
	{
		name: "secure",
		matches: func(lifePath, soulUrge, personality int) bool {
			return in(lifePath, 2, 6, 9) && in(soulUrge, 2, 6, 9)
		},
		text: "Secure. Their core life lesson and inner desires are aligned toward connection and harmony, making them naturally inclined to build stable, trusting relationships.",
	},
	{
		name: "anxious_preoccupied",
		matches: func(lifePath, soulUrge, personality int) bool {
			return in(lifePath, 3, 5) || in(soulUrge, 3, 5)
		},
		text: "Anxious-Preoccupied. Their need for expression, freedom, and stimulation can sometimes manifest as a fear of being tied down or abandoned, leading them to seek high levels of validation and contact.",
	},
	{
		name: "dismissive_avoidant",
		matches: func(lifePath, soulUrge, personality int) bool {
			return in(lifePath, 1, 4, 7, 8) && !in(soulUrge, 2, 6)
		},
		text: "Dismissive-Avoidant. Their strong drive for independence, structure, or analysis can lead them to prioritize self-reliance over emotional intimacy. They may see vulnerability as a weakness and prefer to handle challenges alone.",
	},
}

const attachmentFallback = "A complex style that blends a desire for connection with a need for personal space. Trust is built through consistency and respecting their unique balance of intimacy and independence."

// AttachmentStyle classifies the relationship pattern implied by the three
// identity numbers, walking the rule list in priority order.
func AttachmentStyle(lifePath, soulUrge, personality int) string {
	for _, rule := range attachmentRules {
		if rule.matches(lifePath, soulUrge, personality) {
			return rule.text
		}
	}
	return attachmentFallback
}

func in(n int, set ...int) bool {
	for _, v := range set {
		if n == v {
			return true
		}
	}
	return false
}
