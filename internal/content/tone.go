package content

var messagingTones = map[int]string{
	1:  "Direct, confident, and respectful of their authority. Focus on action and results.",
	2:  "Gentle, diplomatic, and non-confrontational. Appeal to harmony and partnership.",
	3:  "Enthusiastic, optimistic, and inspiring. Use humor and focus on creative possibilities.",
	4:  "Practical, logical, and detailed. Provide clear data and a step-by-step plan.",
	5:  "Exciting, adaptable, and freedom-oriented. Focus on new opportunities and avoid rigid plans.",
	6:  "Caring, responsible, and reassuring. Appeal to their sense of duty and community benefit.",
	7:  "Intellectual, thoughtful, and analytical. Give them space to think and provide deep insights, not superficial claims.",
	8:  "Professional, strategic, and efficient. Focus on mutual benefit, power, and long-term gains.",
	9:  "Compassionate, idealistic, and inclusive. Appeal to a higher cause and the greater good.",
	11: "Intuitive, authentic, and visionary. Speak with depth and avoid superficiality. Acknowledge their unique perspective.",
	22: "Pragmatic, ambitious, and focused on legacy. Present grand but well-researched plans that have a tangible impact.",
	33: "Heartfelt, supportive, and service-oriented. Appeal to their desire to heal and help others.",
}

func MessagingTone(personality int) string {
	if t, ok := messagingTones[personality]; ok {
		return t
	}
	return "A balanced tone that is both respectful and authentic."
}
