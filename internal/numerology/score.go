package numerology

const (
	scoreBase = 50
	scoreCap  = 100
)

// CalcScore produces the composite score in [0,100]. Every bonus is
// independently applicable; there is no early exit and no floor clamp
// because all terms are non-negative on top of the base.
func CalcScore(lifePath, expression int, birthTime string) int {
	score := scoreBase

	if lifePath == 8 {
		score += 15
	}
	if lifePath == 11 || lifePath == 22 || lifePath == 33 {
		score += 20
	}
	if lifePath == 5 || lifePath == 7 {
		score += 5
	}

	if expression == 1 || expression == 9 {
		score += 10
	}
	if expression == 22 {
		score += 15
	}

	if birthTime != "" {
		if hour, ok := parseBirthHour(birthTime); ok && hour%3 == 0 {
			score += 5
		}
	}

	if lifePath == expression {
		score += 10
	}

	if score > scoreCap {
		score = scoreCap
	}
	return score
}
