package service

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

var assessTotal = prom.NewCounterVec(prom.CounterOpts{
	Namespace: "pron_wrapper",
	Name:      "assessments_total",
	Help:      "Number of assessment requests by result",
}, []string{"result"})

func init() {
	prom.MustRegister(assessTotal)
}

func countResult(result string) {
	assessTotal.WithLabelValues(result).Inc()
}
