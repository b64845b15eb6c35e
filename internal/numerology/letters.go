package numerology

import (
	"strconv"
	"strings"
)

// Pythagorean cipher: A..Z cycle through 1..9 (A,J,S=1; B,K,T=2; ...; I,R=9).
func letterValue(c byte) int {
	if c < 'A' || c > 'Z' {
		return 0
	}
	return int(c-'A')%9 + 1
}

// Y counts as a consonant in this scheme.
func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// nameLetters uppercases the name and keeps only A-Z. Accented letters are
// dropped rather than normalized, same as the rest of the pipeline expects.
func nameLetters(name string) []byte {
	upper := strings.ToUpper(name)
	out := make([]byte, 0, len(upper))
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c >= 'A' && c <= 'Z' {
			out = append(out, c)
		}
	}
	return out
}

// parseBirthdate splits a YYYY-MM-DD string into its integer parts. Any
// malformed input reports ok=false and zero parts; callers degrade to
// zero-valued readings instead of erroring.
func parseBirthdate(birthdate string) (year, month, day int, ok bool) {
	parts := strings.Split(birthdate, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// parseBirthHour extracts the hour from an HH:MM string.
func parseBirthHour(birthTime string) (hour int, ok bool) {
	idx := strings.Index(birthTime, ":")
	if idx < 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(birthTime[:idx]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
