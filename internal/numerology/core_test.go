package numerology

import (
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestCalcLifePath(t *testing.T) {
	cases := []struct {
		name      string
		birthdate string
		want      int
	}{
		{"known_vector", "1990-05-15", 3},
		{"empty", "", 0},
		{"garbage", "not-a-date", 0},
		{"missing_parts", "1990-05", 0},
	}
	for _, tc := range cases {
		if got := CalcLifePath(tc.birthdate); got != tc.want {
			t.Fatalf("%s: CalcLifePath(%q) = %d, want %d", tc.name, tc.birthdate, got, tc.want)
		}
	}
}

func TestCalcExpression(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"abc", "ABC", 6},
		{"case_and_punct_ignored", "a-b c!", 6},
		{"john_smith", "John Smith", 8},
		{"no_letters", "123 !?", 0},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		if got := CalcExpression(tc.in); got != tc.want {
			t.Fatalf("%s: CalcExpression(%q) = %d, want %d", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestCalcCoreReadings_KnownVector(t *testing.T) {
	in := ReadingInput{
		FullName:   "John Smith",
		Birthdate:  "1990-05-15",
		LifePath:   CalcLifePath("1990-05-15"),
		Expression: CalcExpression("John Smith"),
	}
	got := CalcCoreReadings(in, testNow)

	if got.SoulUrge != 6 {
		t.Fatalf("soul urge = %d, want 6", got.SoulUrge)
	}
	// Consonant sum is 29, which reduces to the master number 11.
	if got.Personality != 11 {
		t.Fatalf("personality = %d, want 11", got.Personality)
	}
	if got.Birthday != 6 {
		t.Fatalf("birthday = %d, want 6", got.Birthday)
	}
	if got.Maturity != 11 {
		t.Fatalf("maturity = %d, want 11", got.Maturity)
	}
	if want := []int{1, 8}; !reflect.DeepEqual(got.HiddenPassion, want) {
		t.Fatalf("hidden passion = %v, want %v", got.HiddenPassion, want)
	}
	wantChallenges := ChallengeNumbers{First: 1, Second: 5, Main: 4, Fourth: 4}
	if got.ChallengeNumbers != wantChallenges {
		t.Fatalf("challenge numbers = %+v, want %+v", got.ChallengeNumbers, wantChallenges)
	}
	if len(got.KarmicDebt) != 0 {
		t.Fatalf("karmic debt = %v, want empty", got.KarmicDebt)
	}
	// Evaluated at 2024-06-15 UTC: 15+5+2024=2044 -> 1, 1+6=7, 7+15=22.
	if got.PersonalYear != 1 || got.PersonalMonth != 7 || got.PersonalDay != 22 {
		t.Fatalf("personal cycles = %d/%d/%d, want 1/7/22", got.PersonalYear, got.PersonalMonth, got.PersonalDay)
	}
}

func TestCalcCoreReadings_KarmicDebtFromVowelSum(t *testing.T) {
	// Vowel sum E(5)+I(9) is exactly 14 pre-reduction; soul urge itself
	// reduces to 5, but 14 must still land in the karmic debt set.
	in := ReadingInput{
		FullName:   "Ei",
		Birthdate:  "1990-01-01",
		LifePath:   CalcLifePath("1990-01-01"),
		Expression: CalcExpression("Ei"),
	}
	got := CalcCoreReadings(in, testNow)
	if got.SoulUrge != 5 {
		t.Fatalf("soul urge = %d, want 5", got.SoulUrge)
	}
	if want := []int{14}; !reflect.DeepEqual(got.KarmicDebt, want) {
		t.Fatalf("karmic debt = %v, want %v", got.KarmicDebt, want)
	}
}

func TestCalcCoreReadings_KarmicDebtFromDayAndMaturity(t *testing.T) {
	// Raw day 19 and maturity sum 9+4=13 both hit the karmic set.
	in := ReadingInput{
		FullName:   "Al",
		Birthdate:  "1985-03-19",
		LifePath:   CalcLifePath("1985-03-19"),
		Expression: CalcExpression("Al"),
	}
	if in.LifePath != 9 || in.Expression != 4 {
		t.Fatalf("precondition: lifePath=%d expression=%d, want 9/4", in.LifePath, in.Expression)
	}
	got := CalcCoreReadings(in, testNow)
	if want := []int{13, 19}; !reflect.DeepEqual(got.KarmicDebt, want) {
		t.Fatalf("karmic debt = %v, want %v", got.KarmicDebt, want)
	}
}

func TestCalcCoreReadings_NoLetters(t *testing.T) {
	in := ReadingInput{FullName: "12345", Birthdate: "1990-05-15"}
	got := CalcCoreReadings(in, testNow)
	if got.SoulUrge != 0 || got.Personality != 0 {
		t.Fatalf("soul urge/personality = %d/%d, want 0/0", got.SoulUrge, got.Personality)
	}
	if len(got.HiddenPassion) != 0 {
		t.Fatalf("hidden passion = %v, want empty for letterless name", got.HiddenPassion)
	}
}

func TestCalcCoreReadings_HiddenPassionSortedNoDuplicates(t *testing.T) {
	names := []string{"John Smith", "Anna Bell", "Xavier Quinn", "a", "zzz yyy xxx"}
	for _, name := range names {
		in := ReadingInput{FullName: name, Birthdate: "1990-05-15"}
		got := CalcCoreReadings(in, testNow)
		if len(got.HiddenPassion) == 0 {
			t.Fatalf("%q: hidden passion empty for name with letters", name)
		}
		for i := 1; i < len(got.HiddenPassion); i++ {
			if got.HiddenPassion[i] <= got.HiddenPassion[i-1] {
				t.Fatalf("%q: hidden passion not strictly ascending: %v", name, got.HiddenPassion)
			}
		}
	}
}

func TestCalcCoreReadings_Deterministic(t *testing.T) {
	in := ReadingInput{
		FullName:   "John Smith",
		Birthdate:  "1990-05-15",
		LifePath:   3,
		Expression: 8,
	}
	first := CalcCoreReadings(in, testNow)
	second := CalcCoreReadings(in, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestCalcCoreReadings_PersonalCyclesTrackEvaluationDate(t *testing.T) {
	in := ReadingInput{FullName: "John Smith", Birthdate: "1990-05-15"}
	a := CalcCoreReadings(in, testNow)
	b := CalcCoreReadings(in, testNow.AddDate(0, 0, 1))
	if a.PersonalDay == b.PersonalDay {
		t.Fatalf("personal day identical across a day boundary: %d", a.PersonalDay)
	}
	// Birth-invariant fields must not move with the clock.
	if a.SoulUrge != b.SoulUrge || a.Maturity != b.Maturity {
		t.Fatalf("birth-invariant readings changed with evaluation date")
	}
}
