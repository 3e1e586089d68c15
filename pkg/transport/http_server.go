package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/raywall/api-playground/pkg/metrics"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"

	ContextKeyCorrID contextKey = "correlation_id"
)

// NewRouter registra todas as rotas do playground. Cada rota invoca exatamente
// um componente de simulação ou do dataset.
func NewRouter(deps Dependencies) *mux.Router {
	deps.applyDefaults()
	h := &handlers{deps: deps}

	router := mux.NewRouter()
	router.Use(ObservabilityMiddleware(deps.Metrics))

	router.HandleFunc("/login", h.login).Methods(http.MethodPost)
	router.HandleFunc("/protected", h.protected).Methods(http.MethodGet)
	router.HandleFunc("/register", h.register).Methods(http.MethodPost)

	router.HandleFunc("/user/{id:[0-9]+}", h.userProfile).Methods(http.MethodGet)
	router.HandleFunc("/users/{id:[0-9]+}", h.userWithCompany).Methods(http.MethodGet)
	router.HandleFunc("/book/{id:[0-9]+}", h.book).Methods(http.MethodGet)
	router.HandleFunc("/order/{id:[0-9]+}", h.order).Methods(http.MethodGet)
	router.HandleFunc("/sorted-users", h.sortedUsers).Methods(http.MethodGet)

	router.HandleFunc("/items", h.items).Methods(http.MethodGet)
	router.HandleFunc("/unstable", h.unstable).Methods(http.MethodGet)
	router.HandleFunc("/event", h.event).Methods(http.MethodGet)

	router.HandleFunc("/health", h.health).Methods(http.MethodGet)

	// Handlers de fallback não passam pelos middlewares do mux
	mw := ObservabilityMiddleware(deps.Metrics)
	router.NotFoundHandler = mw(http.HandlerFunc(notFound))
	router.MethodNotAllowedHandler = mw(http.HandlerFunc(methodNotAllowed))

	return router
}

// StartHTTPServer sobe o servidor e bloqueia até ctx ser cancelado,
// encerrando as conexões de forma graciosa.
func StartHTTPServer(ctx context.Context, port int, handler http.Handler, readTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: readTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("Servidor HTTP ouvindo em %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Encerrando servidor HTTP")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("falha no shutdown: %w", err)
	}
	return <-errCh
}

// --- MIDDLEWARE DE OBSERVABILIDADE ---

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	startTime   time.Time
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	duration := time.Since(rw.startTime)
	rw.Header().Set(HeaderLatency, strconv.FormatInt(duration.Milliseconds(), 10))
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// ObservabilityMiddleware propaga o correlation id, injeta um logger no contexto,
// e registra log e métricas ao fim de cada requisição.
func ObservabilityMiddleware(rec *metrics.Recorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			corrID := r.Header.Get(HeaderCorrelationID)
			if corrID == "" {
				corrID = uuid.NewString()
			}
			w.Header().Set(HeaderCorrelationID, corrID)

			logger := log.With().Str("correlation_id", corrID).Logger()
			ctx := logger.WithContext(r.Context())
			ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

			wrapper := &responseWriterWrapper{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				startTime:      start,
			}

			next.ServeHTTP(wrapper, r.WithContext(ctx))

			route := routeTemplate(r)
			latency := time.Since(start)
			rec.RecordRequest(route, r.Method, wrapper.statusCode, latency)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("status", wrapper.statusCode).
				Int64("latency_ms", latency.Milliseconds()).
				Msg("request completed")
		})
	}
}

func routeTemplate(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if tpl, err := current.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
