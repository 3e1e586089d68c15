package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar os handlers.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Nomes das métricas emitidas pelo servidor (o namespace vem da configuração).
const (
	MetricRequestCount    = "request.count"
	MetricRequestLatency  = "request.latency_ms"
	MetricUnstableOutcome = "unstable.outcome"
)
