package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Validate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		mutate  func(cfg *PlaygroundConfig)
		wantErr bool
	}{
		{
			name:    "Default Config",
			mutate:  func(cfg *PlaygroundConfig) {},
			wantErr: false,
		},
		{
			name:    "Lambda sem porta",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Service.Runtime = "lambda"; cfg.Service.Port = 0 },
			wantErr: false,
		},
		{
			name:    "Local sem porta",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Service.Port = 0 },
			wantErr: true,
		},
		{
			name:    "Runtime desconhecido",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Service.Runtime = "ecs" },
			wantErr: true,
		},
		{
			name:    "Token vazio",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Auth.Token = "" },
			wantErr: true,
		},
		{
			name:    "PerPage zero",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Fixtures.PerPage = 0 },
			wantErr: true,
		},
		{
			name:    "Offset inválido",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Event.Offset = "uma hora" },
			wantErr: true,
		},
		{
			name:    "Offset negativo",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Event.Offset = "-2h" },
			wantErr: true,
		},
		{
			name:    "Backend redis sem chave",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Unstable.Backend = "redis"; cfg.Unstable.Redis.Key = "" },
			wantErr: true,
		},
		{
			name:    "Backend desconhecido",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Unstable.Backend = "memcached" },
			wantErr: true,
		},
		{
			name:    "Datadog sem endereço",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Service.Metrics.Datadog.Enabled = true },
			wantErr: true,
		},
		{
			name:    "Nível de log inválido",
			mutate:  func(cfg *PlaygroundConfig) { cfg.Service.Logging.Level = "trace" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := validator.Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetters(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "1h0m0s", cfg.Event.GetOffset().String())
	assert.Equal(t, "5s", cfg.Service.GetReadTimeout().String())
	assert.Equal(t, "1m0s", cfg.Auth.GetExpiresIn().String())

	cfg.Event.Offset = "lixo"
	assert.Equal(t, "1h0m0s", cfg.Event.GetOffset().String())
}
