package sim

import "math"

// Temperature conversion for the presentation boundary. Storage is Celsius
// everywhere; these helpers are the only place conversion happens.
//
// Both directions round half away from zero (math.Round) to whole degrees,
// so a round trip through both conversions may move a value by up to one
// degree. That loss is accepted: display values are integer degrees.

// ToFahrenheit converts Celsius to Fahrenheit, rounded to a whole degree.
func ToFahrenheit(c float64) float64 {
	return math.Round(c*9/5 + 32)
}

// ToCelsius converts Fahrenheit to Celsius, rounded to a whole degree.
func ToCelsius(f float64) float64 {
	return math.Round((f - 32) * 5 / 9)
}

// roundTenth rounds to one decimal place, half away from zero.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
