package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/raywall/api-playground/pkg/auth"
	"github.com/raywall/api-playground/pkg/config"
	"github.com/raywall/api-playground/pkg/fixtures"
	"github.com/raywall/api-playground/pkg/logger"
	"github.com/raywall/api-playground/pkg/metrics"
	"github.com/raywall/api-playground/pkg/observability"
	"github.com/raywall/api-playground/pkg/timewindow"
	"github.com/raywall/api-playground/pkg/toggle"
	"github.com/raywall/api-playground/pkg/transport"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	configPath string
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
	redisFactory  = func(opts *redis.Options) toggle.RedisClient {
		return redis.NewClient(opts)
	}
)

func init() {
	// Sem CONFIG_FILE_PATH o servidor sobe com os padrões (porta 3000)
	configPath = os.Getenv("CONFIG_FILE_PATH")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configPath); err != nil {
		log.Fatal().Err(err).Msg("FATAL")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	// 1. Configuração
	cfg, err := config.NewUniversalLoader().Load(ctx, cfgPath)
	if err != nil {
		return err
	}

	// 2. Logging e métricas
	logger.Configure(cfg.Service.Logging, cfg.Service.Debug)

	provider, err := observability.SetupMetrics(cfg.Service.Metrics)
	if err != nil {
		return err
	}
	defer provider.Close()

	// 3. Componentes de simulação
	counter, err := buildCounter(ctx, cfg.Unstable)
	if err != nil {
		return err
	}

	router := transport.NewRouter(transport.Dependencies{
		Store:     fixtures.NewStore(fixtures.Options{Seed: cfg.Fixtures.Seed}),
		Toggle:    toggle.New(counter),
		Events:    timewindow.NewGenerator(cfg.Event.GetOffset()),
		Guard:     auth.NewGuard(cfg.Auth.Token, cfg.Auth.GetExpiresIn()),
		Metrics:   metrics.NewRecorder(provider),
		PerPage:   cfg.Fixtures.PerPage,
		EventName: cfg.Event.Name,
	})

	log.Info().
		Str("name", cfg.Service.Name).
		Str("runtime", cfg.Service.Runtime).
		Str("unstable_backend", cfg.Unstable.Backend).
		Bool("debug", cfg.Service.Debug).
		Msg("playground inicializado")

	// 4. Seleciona Runtime Strategy
	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(ctx, cfg.Service.Port, router, cfg.Service.GetReadTimeout())
	case "lambda":
		lambdaStarter(transport.NewLambdaHandler(router).Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}

func buildCounter(ctx context.Context, cfg config.UnstableConf) (toggle.Counter, error) {
	if cfg.Backend != "redis" {
		return toggle.NewMemoryCounter(), nil
	}
	client := redisFactory(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return toggle.NewRedisCounter(ctx, client, cfg.Redis.Key)
}
