package config

// Default devolve a configuração completa usada quando nenhum arquivo é informado.
// O loader faz o unmarshal do YAML por cima destes valores.
func Default() *PlaygroundConfig {
	return &PlaygroundConfig{
		Version: "1.0",
		Service: ServiceDetails{
			Name:        "api-playground",
			Runtime:     "local",
			Port:        3000,
			ReadTimeout: "5s",
			Logging: LoggingConf{
				Enabled: true,
				Level:   "info",
				Format:  "json",
			},
			Metrics: MetricsConf{
				Datadog: DatadogConf{Namespace: "playground."},
			},
		},
		Auth: AuthConf{
			Token:     "abc123",
			ExpiresIn: 60,
		},
		Fixtures: FixturesConf{
			PerPage: 5,
		},
		Event: EventConf{
			Name:   "API Testing Workshop",
			Offset: "1h",
		},
		Unstable: UnstableConf{
			Backend: "memory",
			Redis: RedisConf{
				Addr: "localhost:6379",
				Key:  "playground:unstable",
			},
		},
	}
}
