package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "comunica_ads"

// Motivos de descarte de um item do batch
const (
	DropReasonNull      = "null"
	DropReasonStatus    = "status"
	DropReasonMalformed = "malformed"
)

// Resultado de uma chamada ao Graph
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics concentra os coletores do serviço num registry próprio.
// Um *Metrics nil é válido e ignora todas as chamadas.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	GraphRequestsTotal   *prometheus.CounterVec
	GraphRequestDuration *prometheus.HistogramVec
	BatchItemsDropped    *prometheus.CounterVec
	CampaignsFetched     prometheus.Counter

	TokenCheckStatus prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total de requisições HTTP recebidas",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duração das requisições HTTP em segundos",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Requisições HTTP em processamento",
			},
			[]string{"method", "endpoint"},
		),

		GraphRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graph_requests_total",
				Help:      "Chamadas feitas à Graph API",
			},
			[]string{"operation", "outcome"},
		),

		GraphRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_request_duration_seconds",
				Help:      "Duração das chamadas à Graph API em segundos",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),

		BatchItemsDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batch_items_dropped_total",
				Help:      "Itens do batch descartados por conta",
			},
			[]string{"reason"},
		),

		CampaignsFetched: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "campaigns_fetched_total",
				Help:      "Campanhas normalizadas a partir do Graph",
			},
		),

		TokenCheckStatus: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "token_check_status",
				Help:      "Resultado da última verificação do token (1 = válido, 0 = inválido)",
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

func (m *Metrics) IncRequestsInFlight(method, endpoint string) {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Inc()
}

func (m *Metrics) DecRequestsInFlight(method, endpoint string) {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Dec()
}

func (m *Metrics) RecordGraphRequest(operation, outcome string, duration float64) {
	if m == nil {
		return
	}
	m.GraphRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.GraphRequestDuration.WithLabelValues(operation).Observe(duration)
}

func (m *Metrics) RecordDroppedBatchItem(reason string) {
	if m == nil {
		return
	}
	m.BatchItemsDropped.WithLabelValues(reason).Inc()
}

func (m *Metrics) AddCampaignsFetched(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.CampaignsFetched.Add(float64(n))
}

func (m *Metrics) SetTokenStatus(valid bool) {
	if m == nil {
		return
	}
	if valid {
		m.TokenCheckStatus.Set(1)
		return
	}
	m.TokenCheckStatus.Set(0)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe o registry no formato texto do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
