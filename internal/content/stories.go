package content

var lifePathStories = map[int]string{
	1:  "Their life is a journey of developing independence, courage, and leadership. They are here to be a pioneer, learning to trust their own unique vision and act on it with confidence.",
	2:  "Their life is a lesson in diplomacy, patience, and cooperation. They are here to be a peacemaker, learning to navigate relationships with intuition and bring harmony to group dynamics.",
	3:  "Their life is a path of creative self-expression, communication, and joy. They are here to inspire and uplift others, learning to channel their ideas and emotions into artistic or social forms.",
	4:  "Their life is a journey of building security through discipline, hard work, and process. They are here to create lasting foundations, learning the value of structure, reliability, and practicality.",
	5:  "Their life is a quest for freedom through adventure, change, and varied experiences. They are here to be an agent of change, learning to adapt quickly and use their freedom constructively.",
	6:  "Their life is a lesson in responsibility, nurturing, and community service. They are here to be a caretaker, learning to balance giving and receiving love in their family and community.",
	7:  "Their life is a spiritual and intellectual journey of seeking truth and wisdom. They are here to be an analyst and a sage, learning to trust their intuition and share their unique insights with the world.",
	8:  "Their life is a journey of mastering personal power and the flow of abundance. They are here to build lasting structures of impact, often overcoming significant challenges to step into their innate authority.",
	9:  "Their life is a path of compassion, humanitarianism, and letting go. They are here to give back to the world, learning to practice forgiveness and embrace a broad, inclusive perspective.",
	11: "As a Master Number, their life is a spiritual journey of channeling intuition and inspiration. They are here to be a visionary messenger, learning to trust their insights and illuminate a new path for others, while navigating heightened sensitivity.",
	22: "As a Master Number, their life is a journey of turning grand dreams into tangible reality. They are here to be a \"Master Builder,\" learning to use their immense power to create systems and institutions that benefit humanity.",
	33: "As a Master Number, their life is a path of healing and teaching through compassionate service. They are here to be a \"Master Teacher,\" learning to uplift and guide others with unconditional love, often shouldering significant responsibilities.",
}

func LifePathStory(lifePath int) string {
	if s, ok := lifePathStories[lifePath]; ok {
		return s
	}
	return "Their life is a unique journey of personal growth and discovery."
}

var emotionalStories = map[int]string{
	1:  "Emotionally, they need independence. They process feelings internally and prefer to take charge of a situation rather than be passive. They value directness and can become impatient with indecisiveness.",
	2:  "Emotionally, they are highly sensitive and intuitive. They process feelings deeply and are attuned to the emotional climate around them, seeking harmony and avoiding conflict.",
	3:  "They have an emotional need for expression and social connection. They process feelings by talking them out, using humor, and engaging with others. They thrive on positive feedback.",
	4:  "They have a deep emotional need for security and stability. They process feelings practically and methodically, often by creating a plan or focusing on a task. They can be resistant to sudden changes.",
	5:  "Emotionally, they crave freedom and excitement. They process feelings through action and new experiences. They can feel trapped by routine and may avoid deep emotional exploration.",
	6:  "Their emotional core is centered on home, family, and responsibility. They process feelings by nurturing and caring for others, finding fulfillment in being needed and providing support.",
	7:  "They process emotions through intellectual analysis and private reflection. They have a deep inner world but may find it difficult to express their feelings openly, preferring solitude to understand them.",
	8:  "Emotionally, they are driven by a need for control and achievement. They process feelings by focusing on goals and results, sometimes suppressing vulnerability to maintain an image of strength.",
	9:  "They are deeply empathetic and feel things on a universal level. They process emotions through compassion and helping others, but can become overwhelmed by the suffering in the world.",
	11: "With Master Number sensitivity, their emotional strategy is highly intuitive and often visionary. They process feelings on a psychic level, absorbing the energy around them, which requires them to manage nervous tension and seek inspirational outlets.",
	22: "Their emotional strategy is tied to large-scale ambitions. They process feelings through the act of building and creating, finding emotional stability in progress and tangible results. The pressure to achieve can be a major emotional driver.",
	33: "Their emotional strategy is one of deep empathy and sacrifice for a higher good. They process feelings through acts of service and healing, often putting the needs of others before their own, which can lead to emotional burnout if not managed.",
}

func EmotionalStory(soulUrge int) string {
	if s, ok := emotionalStories[soulUrge]; ok {
		return s
	}
	return "They process emotions in a unique and personal way."
}

var expressionBehaviors = map[int]string{
	1:  "They operate as a natural leader, driven to innovate and take charge. Their behavior is marked by independence, ambition, and a direct, action-oriented approach to achieving their goals.",
	2:  "They operate as a supportive diplomat, naturally inclined toward cooperation and partnership. Their behavior is patient, tactful, and they excel at mediating and bringing people together.",
	3:  "They operate as a charismatic communicator, driven by a need to express themselves creatively and socially. Their behavior is optimistic, charming, and they thrive in settings where they can inspire others.",
	4:  "They operate as a pragmatic organizer, with a natural ability to create order and structure. Their behavior is disciplined, reliable, and they approach tasks with a methodical, step-by-step process.",
	5:  "They operate as a dynamic agent of change, constantly seeking new experiences and challenges. Their behavior is adaptable, resourceful, and they are not afraid to take risks to avoid stagnation.",
	6:  "They operate as a responsible guardian, with a strong focus on community and family. Their behavior is nurturing, protective, and they are driven by a sense of duty to care for others.",
	7:  "They operate as a thoughtful analyst and seeker of truth. Their behavior is introspective, intellectual, and they prefer to observe and understand a situation fully before acting.",
	8:  "They operate as a powerful executive, with a natural talent for strategy and management. Their behavior is ambitious, efficient, and they are focused on achieving material success and authority.",
	9:  "They operate as a compassionate humanitarian, with a broad, idealistic vision for the world. Their behavior is selfless, charitable, and they are driven to contribute to a cause larger than themselves.",
	11: "They operate as a \"Spiritual Messenger,\" driven by powerful intuitive insights. This manifests as a highly creative, yet sometimes tense and nervous approach, as they work to ground their otherworldly ideas.",
	22: "They operate as a \"Master Builder,\" driven by a powerful and practical need to turn grand, inspired visions into tangible reality. This manifests as a disciplined, systematic, and often relentless approach to achieving their goals.",
	33: "They operate as a \"Master Teacher,\" driven to heal and uplift humanity through service. This manifests as deeply compassionate, responsible, and self-sacrificing behavior, focused on justice and teaching.",
}

func ExpressionBehavior(expression int) string {
	if s, ok := expressionBehaviors[expression]; ok {
		return s
	}
	return "They express themselves through their unique talents and abilities."
}
