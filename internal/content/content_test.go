package content

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	cases := []struct {
		name       string
		lifePath   int
		expression int
		want       string
	}{
		{"mapped", 1, 8, "Pioneering Executive"},
		{"masters", 11, 22, "Visionary Master Builder"},
		{"zero_falls_back", 0, 0, "Dynamic Force"},
		{"partial_fallback", 3, 99, "Creative Force"},
	}
	for _, tc := range cases {
		if got := Title(tc.lifePath, tc.expression); got != tc.want {
			t.Fatalf("%s: Title(%d, %d) = %q, want %q", tc.name, tc.lifePath, tc.expression, got, tc.want)
		}
	}
}

func TestColor_Fallback(t *testing.T) {
	if got := Color(8); got.Hex != "#171717" {
		t.Fatalf("Color(8).Hex = %q, want #171717", got.Hex)
	}
	neutral := Color(0)
	if neutral.Hex != "#4B5563" || !strings.Contains(neutral.Description, "Neutral Gray") {
		t.Fatalf("Color(0) = %+v, want neutral gray fallback", neutral)
	}
}

func TestStories_Fallbacks(t *testing.T) {
	if got := LifePathStory(0); !strings.Contains(got, "unique journey") {
		t.Fatalf("LifePathStory(0) = %q, want generic fallback", got)
	}
	if got := EmotionalStory(0); !strings.Contains(got, "unique and personal") {
		t.Fatalf("EmotionalStory(0) = %q, want generic fallback", got)
	}
	if got := ExpressionBehavior(42); !strings.Contains(got, "unique talents") {
		t.Fatalf("ExpressionBehavior(42) = %q, want generic fallback", got)
	}
	if got := MessagingTone(0); !strings.Contains(got, "balanced tone") {
		t.Fatalf("MessagingTone(0) = %q, want generic fallback", got)
	}
	if got := ShadowState(0); got.Shadow != "Imbalanced" || got.Activated != "Integrated" {
		t.Fatalf("ShadowState(0) = %+v, want fallback pair", got)
	}
}

func TestAttachmentStyle_RulePriority(t *testing.T) {
	cases := []struct {
		name        string
		lifePath    int
		soulUrge    int
		personality int
		wantPrefix  string
	}{
		// Matches both fearful-avoidant and secure; fearful-avoidant checks first.
		{"fearful_wins_over_secure", 2, 2, 1, "Fearful-Avoidant"},
		{"secure", 2, 6, 4, "Secure"},
		{"anxious_via_soul_urge", 1, 3, 4, "Anxious-Preoccupied"},
		{"dismissive", 8, 1, 4, "Dismissive-Avoidant"},
		{"fallback", 9, 1, 2, "A complex style"},
	}
	for _, tc := range cases {
		got := AttachmentStyle(tc.lifePath, tc.soulUrge, tc.personality)
		if !strings.HasPrefix(got, tc.wantPrefix) {
			t.Fatalf("%s: AttachmentStyle(%d, %d, %d) = %q, want prefix %q", tc.name, tc.lifePath, tc.soulUrge, tc.personality, got, tc.wantPrefix)
		}
	}
}

func TestCurrentWeather_MasterYearFallsBack(t *testing.T) {
	got := CurrentWeather(22, 3, 4)
	if !strings.Contains(got.PersonalCycle, "22 Personal Year") {
		t.Fatalf("personal cycle missing year: %q", got.PersonalCycle)
	}
	if !strings.Contains(got.PersonalCycle, "intensified growth") {
		t.Fatalf("master year did not use fallback theme: %q", got.PersonalCycle)
	}
	if !strings.Contains(got.MajorTransits, "rigidity") {
		t.Fatalf("main challenge 4 should map to rigidity: %q", got.MajorTransits)
	}
}

func TestCRMForProfile_Tiers(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{90, "High (Elite Tier)"},
		{75, "High (Elite Tier)"},
		{60, "Medium (Premium)"},
		{59, "Neutral"},
	}
	for _, tc := range cases {
		got := CRMForProfile(1, tc.score, 1)
		if got.OpportunityLevel != tc.want {
			t.Fatalf("score %d: opportunity level = %q, want %q", tc.score, got.OpportunityLevel, tc.want)
		}
	}
}

func TestCRMForProfile_MasterNumberExtension(t *testing.T) {
	got := CRMForProfile(22, 80, 4)
	// Generic base list (3) + the 4-list (3) + one extra item.
	if len(got.Dos) != 7 {
		t.Fatalf("dos for master 22 = %v, want 7 entries", got.Dos)
	}
	if got.Dos[len(got.Dos)-1] != "Think big picture" {
		t.Fatalf("dos for master 22 missing extra item: %v", got.Dos)
	}
	if got.Donts[len(got.Donts)-1] != "Present small, uninspiring ideas" {
		t.Fatalf("donts for master 22 missing extra item: %v", got.Donts)
	}
	if !strings.Contains(got.Timing, "year for work") {
		t.Fatalf("personal year 4 timing = %q", got.Timing)
	}
}

func TestCRMForProfile_Fallbacks(t *testing.T) {
	got := CRMForProfile(0, 10, 2)
	if got.Dos[0] != "Be authentic" {
		t.Fatalf("dos fallback = %v", got.Dos)
	}
	if !strings.Contains(got.Influence, "their unique perspective") {
		t.Fatalf("influence fallback = %q", got.Influence)
	}
	if !strings.Contains(got.Timing, "Follow their lead") {
		t.Fatalf("timing fallback for year 2 = %q", got.Timing)
	}
}

func TestGlossary_LoadsEmbedded(t *testing.T) {
	g := Glossary()
	if len(g) < 15 {
		t.Fatalf("glossary has %d entries, want at least 15", len(g))
	}
	lp, ok := g["life_path"]
	if !ok || lp.Title != "Life Path Number" {
		t.Fatalf("glossary missing life_path entry: %+v", lp)
	}
}
