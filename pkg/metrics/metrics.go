// Package metrics expõe os contadores de processamento de planilhas no formato Prometheus
package metrics

import (
	"net/http"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "placas_mundi"

// Resultados possíveis de um upload
const (
	ResultSuccess     = "success"
	ResultEmpty       = "empty"
	ResultSchemaError = "schema_error"
	ResultInvalidFile = "invalid_file"
	ResultError       = "error"
)

// Motivos de descarte de linhas
const (
	ReasonSentinel     = "sentinel"
	ReasonMissingField = "missing_field"
	ReasonInvalidDate  = "invalid_date"
)

type Metrics struct {
	registry        *prometheus.Registry
	uploads         *prometheus.CounterVec
	uploadDuration  prometheus.Histogram
	rowsKept        prometheus.Counter
	rowsDropped     *prometheus.CounterVec
	coercedCells    prometheus.Counter
	sessionsEvicted prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Arquivos de vendas recebidos, por resultado.",
		}, []string{"result"}),
		uploadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Tempo de ingestão e agregação de um arquivo.",
			Buckets:   prometheus.DefBuckets,
		}),
		rowsKept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_kept_total",
			Help:      "Linhas de venda aceitas.",
		}),
		rowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_dropped_total",
			Help:      "Linhas descartadas, por motivo.",
		}, []string{"reason"}),
		coercedCells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coerced_cells_total",
			Help:      "Células de quantidade convertidas para 0 ou truncadas.",
		}),
		sessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      "Sessões removidas pela limpeza agendada.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.uploads,
		m.uploadDuration,
		m.rowsKept,
		m.rowsDropped,
		m.coercedCells,
		m.sessionsEvicted,
	)

	return m
}

// RegisterActiveSessions publica a quantidade de sessões em memória no momento da coleta
func (m *Metrics) RegisterActiveSessions(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Sessões de painel em memória.",
	}, func() float64 {
		return float64(count())
	}))
}

// ObserveUpload registra o resultado de um upload. stats pode ser nil quando a ingestão falhou.
func (m *Metrics) ObserveUpload(result string, stats *domain.IngestStats, elapsed time.Duration) {
	m.uploads.WithLabelValues(result).Inc()
	m.uploadDuration.Observe(elapsed.Seconds())

	if stats == nil {
		return
	}

	m.rowsKept.Add(float64(stats.RowsKept))
	m.rowsDropped.WithLabelValues(ReasonSentinel).Add(float64(stats.DroppedSentinel))
	m.rowsDropped.WithLabelValues(ReasonMissingField).Add(float64(stats.DroppedMissingField))
	m.rowsDropped.WithLabelValues(ReasonInvalidDate).Add(float64(stats.DroppedInvalidDate))
	m.coercedCells.Add(float64(stats.CoercedCells))
}

func (m *Metrics) ObserveEviction(removed int) {
	m.sessionsEvicted.Add(float64(removed))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
