package domain

import "math"

// Pct returns made/attempted rounded to three places, or 0 when nothing was attempted.
func Pct(made, attempted float64) float64 {
	if attempted <= 0 {
		return 0
	}
	return Round(made/attempted, 3)
}

// EffectiveFGPct weighs threes at 1.5 field goals.
func EffectiveFGPct(fgm, fg3m, fga float64) float64 {
	if fga <= 0 {
		return 0
	}
	return Round((fgm+0.5*fg3m)/fga, 3)
}

// PerGame divides a season total by games played, rounded to one place.
func PerGame(total float64, gp int) float64 {
	if gp <= 0 {
		return 0
	}
	return Round(total/float64(gp), 1)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
