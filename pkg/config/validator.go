package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *PlaygroundConfig) error {
	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *PlaygroundConfig) error {
	d, err := time.ParseDuration(cfg.Event.Offset)
	if err != nil {
		return fmt.Errorf("event.offset inválido '%s': %w", cfg.Event.Offset, err)
	}
	if d <= 0 {
		return fmt.Errorf("event.offset deve ser positivo, recebido '%s'", cfg.Event.Offset)
	}

	if cfg.Service.ReadTimeout != "" {
		if _, err := time.ParseDuration(cfg.Service.ReadTimeout); err != nil {
			return fmt.Errorf("service.read_timeout inválido '%s': %w", cfg.Service.ReadTimeout, err)
		}
	}

	if cfg.Unstable.Backend == "redis" {
		if cfg.Unstable.Redis.Addr == "" {
			return fmt.Errorf("unstable.redis.addr é obrigatório com backend redis")
		}
		if cfg.Unstable.Redis.Key == "" {
			return fmt.Errorf("unstable.redis.key é obrigatório com backend redis")
		}
	}

	return nil
}
