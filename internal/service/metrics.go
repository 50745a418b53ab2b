package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RoundsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_rounds_started_total",
			Help: "Rounds committed, by transport",
		},
		[]string{"transport"},
	)
	RoundsResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_rounds_resolved_total",
			Help: "Rounds resolved, by transport and player outcome",
		},
		[]string{"transport", "outcome"},
	)
	Verifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_verifications_total",
			Help: "Commitment verifications requested, by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(RoundsStarted)
	prometheus.MustRegister(RoundsResolved)
	prometheus.MustRegister(Verifications)
}
