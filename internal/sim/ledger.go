package sim

// EnergyLedger accrues energy for one room while the system runs. Cost is
// recomputed from the accrued kWh on every read so it can never go stale.
type EnergyLedger struct {
	tariffPerKWh float64
	usageKWh     float64
}

func NewEnergyLedger(tariffPerKWh float64) *EnergyLedger {
	return &EnergyLedger{tariffPerKWh: tariffPerKWh}
}

// Accrue adds one tick's worth of consumption.
func (l *EnergyLedger) Accrue(kwh float64) {
	l.usageKWh += kwh
}

// UsageKWh returns the total accrued energy.
func (l *EnergyLedger) UsageKWh() float64 {
	return l.usageKWh
}

// Cost returns usage × tariff.
func (l *EnergyLedger) Cost() float64 {
	return l.usageKWh * l.tariffPerKWh
}

// Reset zeroes the accrued energy.
func (l *EnergyLedger) Reset() {
	l.usageKWh = 0
}

// Restore sets the accrued energy from a persisted snapshot. Negative
// values are treated as zero.
func (l *EnergyLedger) Restore(kwh float64) {
	if kwh < 0 {
		kwh = 0
	}
	l.usageKWh = kwh
}
