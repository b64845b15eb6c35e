package numerology

import "time"

type PlanetaryRuling struct {
	Planet string `json:"planet"`
	Number int    `json:"number"`
}

type AdvancedReadings struct {
	AscendantBasedNumber int             `json:"ascendant_based_number"`
	PlanetaryRuling      PlanetaryRuling `json:"planetary_ruling"`
	RulingNumber         int             `json:"ruling_number"`
}

// Indexed by time.Weekday (Sunday = 0).
var planetaryAssignments = [7]PlanetaryRuling{
	{Planet: "Sun", Number: 1},
	{Planet: "Moon", Number: 2},
	{Planet: "Mars", Number: 9},
	{Planet: "Mercury", Number: 5},
	{Planet: "Jupiter", Number: 3},
	{Planet: "Venus", Number: 6},
	{Planet: "Saturn", Number: 8},
}

// CalcAdvancedReadings needs both a birth date and a birth time; without
// them the readings are absent (nil), which is an expected state rather
// than an error. The date is anchored at UTC so day-of-week arithmetic is
// unaffected by the caller's zone. An unparseable hour degrades to 0.
func CalcAdvancedReadings(birthdate, birthTime string, lifePath int) *AdvancedReadings {
	if birthdate == "" || birthTime == "" {
		return nil
	}
	year, month, day, ok := parseBirthdate(birthdate)
	if !ok {
		return nil
	}
	hour, _ := parseBirthHour(birthTime)

	ascendant := ReduceToSingle((hour % 12) + 1)
	weekday := time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC).Weekday()

	return &AdvancedReadings{
		AscendantBasedNumber: ascendant,
		PlanetaryRuling:      planetaryAssignments[weekday],
		RulingNumber:         ReduceKeepMaster(lifePath + ascendant),
	}
}
