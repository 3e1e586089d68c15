package config

import "time"

// PlaygroundConfig representa a estrutura raiz do arquivo YAML do servidor.
type PlaygroundConfig struct {
	Version  string         `yaml:"version" validate:"required"`
	Service  ServiceDetails `yaml:"service" validate:"required"`
	Auth     AuthConf       `yaml:"auth"`
	Fixtures FixturesConf   `yaml:"fixtures"`
	Event    EventConf      `yaml:"event"`
	Unstable UnstableConf   `yaml:"unstable"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name        string      `yaml:"name" validate:"required,hostname_rfc1123"`
	Runtime     string      `yaml:"runtime" validate:"required,oneof=local lambda"`
	Port        int         `yaml:"port" env:"PORT" validate:"required_if=Runtime local,gte=0,lte=65535"`
	Debug       bool        `yaml:"debug" env:"DEBUG"`
	ReadTimeout string      `yaml:"read_timeout"` // Ex: "5s"
	Logging     LoggingConf `yaml:"logging"`
	Metrics     MetricsConf `yaml:"metrics"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace"`
}

// AuthConf guarda o token fixo. ExpiresIn é apenas informativo.
type AuthConf struct {
	Token     string `yaml:"token" validate:"required"`
	ExpiresIn int    `yaml:"expires_in" validate:"gte=0"` // Segundos
}

type FixturesConf struct {
	Seed    int64 `yaml:"seed"`
	PerPage int   `yaml:"per_page" validate:"gt=0"`
}

type EventConf struct {
	Name   string `yaml:"name"`
	Offset string `yaml:"offset" validate:"required"` // Ex: "1h", "2h"
}

type UnstableConf struct {
	Backend string    `yaml:"backend" validate:"oneof=memory redis"`
	Redis   RedisConf `yaml:"redis"`
}

type RedisConf struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
	Key      string `yaml:"key"`
}

func (s ServiceDetails) GetReadTimeout() time.Duration {
	d, err := time.ParseDuration(s.ReadTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

func (e EventConf) GetOffset() time.Duration {
	d, err := time.ParseDuration(e.Offset)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

func (a AuthConf) GetExpiresIn() time.Duration {
	return time.Duration(a.ExpiresIn) * time.Second
}
