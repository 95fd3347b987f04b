package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "shipments"

// shipmentsCreatedTotal counts successfully registered shipments.
var shipmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "created_total",
		Help:      "Total number of shipments successfully registered.",
	},
)

// movementsRecordedTotal counts successfully recorded tracking events,
// labelled by the resulting shipment status.
var movementsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "movements_recorded_total",
		Help:      "Total number of tracking events successfully recorded, by status.",
	},
	[]string{"status"},
)

// labelGenerationErrorsTotal counts label (QR/PDF) generation failures for
// shipments that were already persisted.
var labelGenerationErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "label_generation_errors_total",
		Help:      "Total number of label generation failures after shipment persistence.",
	},
)
