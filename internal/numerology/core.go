package numerology

import (
	"sort"
	"time"
)

type ChallengeNumbers struct {
	First  int `json:"first"`
	Second int `json:"second"`
	Main   int `json:"main"`
	Fourth int `json:"fourth"`
}

type CoreReadings struct {
	SoulUrge         int              `json:"soul_urge"`
	Personality      int              `json:"personality"`
	Birthday         int              `json:"birthday"`
	Maturity         int              `json:"maturity"`
	HiddenPassion    []int            `json:"hidden_passion"`
	ChallengeNumbers ChallengeNumbers `json:"challenge_numbers"`
	KarmicDebt       []int            `json:"karmic_debt"`
	PersonalYear     int              `json:"personal_year"`
	PersonalMonth    int              `json:"personal_month"`
	PersonalDay      int              `json:"personal_day"`
}

type ReadingInput struct {
	FullName   string
	Birthdate  string
	LifePath   int
	Expression int
}

// CalcLifePath reduces the year, month and day parts independently, then
// reduces their sum. Malformed or empty dates degrade to 0.
func CalcLifePath(birthdate string) int {
	if birthdate == "" {
		return 0
	}
	year, month, day, ok := parseBirthdate(birthdate)
	if !ok {
		return 0
	}
	return ReduceKeepMaster(ReduceKeepMaster(day) + ReduceKeepMaster(month) + ReduceKeepMaster(year))
}

// CalcExpression sums the letter values of every retained character in the
// full name. A name with no A-Z characters yields 0.
func CalcExpression(fullName string) int {
	sum := 0
	for _, c := range nameLetters(fullName) {
		sum += letterValue(c)
	}
	return ReduceKeepMaster(sum)
}

// CalcCoreReadings computes the full core bundle. The personal year/month/day
// trio depends on the evaluation date, so callers inject it (UTC fields are
// used); everything else is a pure function of the profile inputs.
//
// Karmic debt is detected on un-reduced intermediate sums: every
// pre-reduction sum feeding the other readings is collected first, then
// filtered against {13, 14, 16, 19}.
func CalcCoreReadings(in ReadingInput, now time.Time) CoreReadings {
	letters := nameLetters(in.FullName)

	soulUrgeSum := 0
	personalitySum := 0
	expressionSum := 0
	for _, c := range letters {
		v := letterValue(c)
		expressionSum += v
		if isVowel(c) {
			soulUrgeSum += v
		} else {
			personalitySum += v
		}
	}

	year, month, day, _ := parseBirthdate(in.Birthdate)

	maturitySum := in.LifePath + in.Expression
	lifePathSum := ReduceKeepMaster(day) + ReduceKeepMaster(month) + ReduceKeepMaster(year)

	karmicDebt := collectKarmicDebt(soulUrgeSum, personalitySum, day, maturitySum, lifePathSum, expressionSum)

	nowUTC := now.UTC()
	personalYear := ReduceKeepMaster(day + month + nowUTC.Year())
	personalMonth := ReduceKeepMaster(personalYear + int(nowUTC.Month()))
	personalDay := ReduceKeepMaster(personalMonth + nowUTC.Day())

	return CoreReadings{
		SoulUrge:         ReduceKeepMaster(soulUrgeSum),
		Personality:      ReduceKeepMaster(personalitySum),
		Birthday:         ReduceKeepMaster(day),
		Maturity:         ReduceKeepMaster(maturitySum),
		HiddenPassion:    hiddenPassion(letters),
		ChallengeNumbers: challengeNumbers(year, month, day),
		KarmicDebt:       karmicDebt,
		PersonalYear:     personalYear,
		PersonalMonth:    personalMonth,
		PersonalDay:      personalDay,
	}
}

// hiddenPassion returns the letter values tied for the highest occurrence
// count in the name, ascending. A name with no letters yields an empty list.
func hiddenPassion(letters []byte) []int {
	var counts [10]int
	for _, c := range letters {
		counts[letterValue(c)]++
	}
	maxCount := 0
	for v := 1; v <= 9; v++ {
		if counts[v] > maxCount {
			maxCount = counts[v]
		}
	}
	out := []int{}
	if maxCount == 0 {
		return out
	}
	for v := 1; v <= 9; v++ {
		if counts[v] == maxCount {
			out = append(out, v)
		}
	}
	return out
}

// challengeNumbers works entirely in single-digit mode; master numbers are
// never preserved here.
func challengeNumbers(year, month, day int) ChallengeNumbers {
	rMonth := ReduceToSingle(month)
	rDay := ReduceToSingle(day)
	rYear := ReduceToSingle(year)
	first := ReduceToSingle(abs(rMonth - rDay))
	second := ReduceToSingle(abs(rDay - rYear))
	main := ReduceToSingle(abs(first - second))
	fourth := ReduceToSingle(abs(rMonth - rYear))
	return ChallengeNumbers{First: first, Second: second, Main: main, Fourth: fourth}
}

func collectKarmicDebt(sums ...int) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, s := range sums {
		switch s {
		case 13, 14, 16, 19:
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Ints(out)
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
