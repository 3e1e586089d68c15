package metrics

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Recorder traduz eventos do servidor em chamadas ao Provider.
// Falhas de envio são apenas logadas: métricas nunca derrubam uma requisição.
type Recorder struct {
	provider Provider
}

func NewRecorder(provider Provider) *Recorder {
	return &Recorder{provider: provider}
}

// RecordRequest registra contagem e latência de uma requisição concluída.
func (r *Recorder) RecordRequest(route, method string, status int, latency time.Duration) {
	if r == nil || r.provider == nil {
		return
	}
	tags := []string{
		"route:" + route,
		"method:" + method,
		fmt.Sprintf("status:%d", status),
	}
	if err := r.provider.Count(MetricRequestCount, 1, tags); err != nil {
		log.Warn().Err(err).Str("metric", MetricRequestCount).Msg("falha ao enviar métrica")
	}
	if err := r.provider.Histogram(MetricRequestLatency, float64(latency.Milliseconds()), tags); err != nil {
		log.Warn().Err(err).Str("metric", MetricRequestLatency).Msg("falha ao enviar métrica")
	}
}

// RecordOutcome registra o resultado de uma chamada ao endpoint instável.
func (r *Recorder) RecordOutcome(outcome string) {
	if r == nil || r.provider == nil {
		return
	}
	if err := r.provider.Count(MetricUnstableOutcome, 1, []string{"outcome:" + outcome}); err != nil {
		log.Warn().Err(err).Str("metric", MetricUnstableOutcome).Msg("falha ao enviar métrica")
	}
}
