package content

type ShadowStates struct {
	Shadow    string `json:"shadow"`
	Activated string `json:"activated"`
}

var shadowStates = map[int]ShadowStates{
	1:  {Shadow: "Arrogant or Insecure Dictator", Activated: "Confident Pioneer"},
	2:  {Shadow: "Passive or Co-dependent Follower", Activated: "Intuitive Peacemaker"},
	3:  {Shadow: "Scattered or Superficial Entertainer", Activated: "Joyful Communicator"},
	4:  {Shadow: "Rigid or Overworked Laborer", Activated: "Disciplined Builder"},
	5:  {Shadow: "Impulsive or Addictive Escapist", Activated: "Constructive Agent of Change"},
	6:  {Shadow: "Martyr or Controlling Meddler", Activated: "Responsible Nurturer"},
	7:  {Shadow: "Isolated or Skeptical Critic", Activated: "Wise Sage"},
	8:  {Shadow: "Controlling or Micromanaging Tyrant", Activated: "Empowered Trustee"},
	9:  {Shadow: "Resentful or Detached Giver", Activated: "Compassionate Humanitarian"},
	11: {Shadow: "Anxious or Overwhelmed Visionary", Activated: "Inspired Messenger"},
	22: {Shadow: "Controlling or Pressured Builder", Activated: "Legacy Architect"},
	33: {Shadow: "Burdened or Self-Sacrificing Martyr", Activated: "Master Teacher"},
}

func ShadowState(lifePath int) ShadowStates {
	if s, ok := shadowStates[lifePath]; ok {
		return s
	}
	return ShadowStates{Shadow: "Imbalanced", Activated: "Integrated"}
}
