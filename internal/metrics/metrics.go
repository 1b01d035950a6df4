package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects simulation gauges and counters. Per-room series are
// labeled by room; only the active room's series move between selections.
type Metrics struct {
	TicksTotal   prometheus.Counter
	InsideTempC  *prometheus.GaugeVec
	TargetTempC  *prometheus.GaugeVec
	EnergyKWh    *prometheus.GaugeVec
	CostCurrency *prometheus.GaugeVec
	OutsideTempC prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	labels := []string{"room"}
	m := &Metrics{
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "climatesim_ticks_total",
			Help: "Simulation ticks processed",
		}),
		InsideTempC: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "climatesim_inside_temperature_celsius",
			Help: "Indoor temperature per room",
		}, labels),
		TargetTempC: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "climatesim_target_temperature_celsius",
			Help: "Effective target temperature per room",
		}, labels),
		EnergyKWh: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "climatesim_energy_usage_kwh",
			Help: "Accrued energy usage per room",
		}, labels),
		CostCurrency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "climatesim_energy_cost",
			Help: "Derived energy cost per room",
		}, labels),
		OutsideTempC: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "climatesim_outside_temperature_celsius",
			Help: "Outdoor temperature at the selected location",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.TicksTotal,
			m.InsideTempC,
			m.TargetTempC,
			m.EnergyKWh,
			m.CostCurrency,
			m.OutsideTempC,
		)
	}
	return m
}
