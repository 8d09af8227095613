// Package metrics exposes prometheus collectors for equipment generation
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
)

// Metrics groups the collectors the forge records into.
// A nil *Metrics records nothing.
type Metrics struct {
	EquipmentGenerated *prometheus.CounterVec
	Enchantments       *prometheus.HistogramVec
	CapacityUsage      *prometheus.HistogramVec
	HistoryOperations  *prometheus.CounterVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// for the process-wide /metrics endpoint or a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EquipmentGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameEquipmentGenerated,
				Help: HelpTextEquipmentGenerated,
			},
			[]string{LabelQuality, LabelState},
		),
		Enchantments: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricNameEquipmentEnchantment,
				Help:    HelpTextEquipmentEnchantment,
				Buckets: EnchantmentBuckets,
			},
			[]string{LabelQuality},
		),
		CapacityUsage: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricNameCapacityUsage,
				Help:    HelpTextCapacityUsage,
				Buckets: CapacityUsageBuckets,
			},
			[]string{LabelQuality},
		),
		HistoryOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameHistoryOperations,
				Help: HelpTextHistoryOperations,
			},
			[]string{LabelOperation, LabelResult},
		),
	}
}

// ObserveGenerated records one finished item
func (m *Metrics) ObserveGenerated(e *equipment.Equipment) {
	if m == nil || e == nil {
		return
	}

	quality := e.Quality.String()
	m.EquipmentGenerated.WithLabelValues(quality, e.State.String()).Inc()
	m.Enchantments.WithLabelValues(quality).Observe(float64(len(e.Enchantments)))

	usage, _ := e.CapacityUsage()
	m.CapacityUsage.WithLabelValues(quality).Observe(float64(usage))
}

// ObserveHistory records the outcome of a history store call
func (m *Metrics) ObserveHistory(operation string, err error) {
	if m == nil {
		return
	}

	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.HistoryOperations.WithLabelValues(operation, result).Inc()
}
