package sim

import (
	"climatesim"
)

// Per-tick convergence rates in °C. The rate is full when the mode matches
// the direction the temperature has to move and halved when it does not
// (e.g. heat mode drifting down toward a lower target). The halved
// off-direction rate is intentional behavior, not a leftover.
const (
	matchedRateC  = 1.0
	mismatchRateC = 0.5
)

// RandSource yields uniform values in [0,1). *rand.Rand satisfies it;
// tests inject a seeded instance for reproducible outdoor draws.
type RandSource interface {
	Float64() float64
}

// ThermalModel moves the indoor temperature toward the effective target
// and redraws the outdoor temperature each tick.
type ThermalModel struct {
	rnd RandSource
}

func NewThermalModel(rnd RandSource) *ThermalModel {
	return &ThermalModel{rnd: rnd}
}

// NextIndoor returns the indoor temperature after one tick. Mode off never
// moves the temperature; otherwise it converges toward target without
// overshooting.
func (m *ThermalModel) NextIndoor(tempC, targetC float64, mode climatesim.SystemMode) float64 {
	if mode == climatesim.ModeOff {
		return tempC
	}
	switch {
	case tempC > targetC:
		rate := mismatchRateC
		if mode == climatesim.ModeCool {
			rate = matchedRateC
		}
		next := tempC - rate
		if next < targetC {
			return targetC
		}
		return next
	case tempC < targetC:
		rate := mismatchRateC
		if mode == climatesim.ModeHeat {
			rate = matchedRateC
		}
		next := tempC + rate
		if next > targetC {
			return targetC
		}
		return next
	default:
		return tempC
	}
}

// DrawOutdoor returns an independent uniform draw within the location
// envelope, rounded to one decimal. Each tick is a fresh draw; traces are
// deliberately noisy, not a random walk.
func (m *ThermalModel) DrawOutdoor(env Envelope) float64 {
	v := env.MinTempC + m.rnd.Float64()*(env.MaxTempC-env.MinTempC)
	return roundTenth(v)
}
