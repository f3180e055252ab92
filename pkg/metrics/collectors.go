package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sc2ladder"

// Request kinds.
const (
	KindAsset = "asset"
	KindEntry = "entry"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requests answered by the page server, by kind (asset or entry document) and status",
	}, []string{"kind", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Time spent answering page server requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	RankingRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ranking_records",
		Help:      "Number of ranking records bound to the table view",
	})
)
