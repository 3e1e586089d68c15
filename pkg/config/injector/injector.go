// Package injector resolve placeholders e tags "env" em structs de configuração.
package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.API_TOKEN}, ${ssm./playground/token}, ${secret.playground/redis}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// Source resolve valores remotos (SSM e Secrets Manager).
type Source interface {
	Parameter(ctx context.Context, name string) (string, error)
	Secret(ctx context.Context, id string) (string, error)
}

type Injector struct {
	source Source
}

// New cria um Injector. Com source nil, placeholders ssm/secret geram erro.
func New(source Source) *Injector {
	return &Injector{source: source}
}

func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for k := 0; k < t.NumField(); k++ {
			field := t.Field(k)
			value := v.Field(k)

			if !value.CanSet() {
				continue
			}

			// 1. Tags env:"..." sobrescrevem o valor do YAML
			if err := processStructTag(field, value); err != nil {
				return err
			}

			// 2. Strings com interpolação "${...}"
			if value.Kind() == reflect.String {
				newValue, err := i.interpolateString(ctx, value.String())
				if err != nil {
					return fmt.Errorf("campo %s: %w", field.Name, err)
				}
				value.SetString(newValue)
				continue
			}

			// 3. Recursão
			if err := i.injectRecursive(ctx, value); err != nil {
				return err
			}
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func processStructTag(field reflect.StructField, value reflect.Value) error {
	tag := field.Tag.Get("env")
	if tag == "" {
		return nil
	}
	raw, exists := os.LookupEnv(tag)
	if !exists || raw == "" {
		return nil
	}
	if err := setField(value, raw); err != nil {
		return fmt.Errorf("env %s=%q inválida para %s: %w", tag, raw, field.Name, err)
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		// match é algo como "${env.VAR_NAME}"
		parts := pattern.FindStringSubmatch(match)
		val, resolveErr := i.fetchValue(ctx, parts[1], parts[2])
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return val
	})

	return result, err
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	switch sourceType {
	case "env":
		return os.Getenv(key), nil

	case "ssm":
		if i.source == nil {
			return "", fmt.Errorf("placeholder ssm sem fonte configurada: %s", key)
		}
		return i.source.Parameter(ctx, key)

	case "secret":
		if i.source == nil {
			return "", fmt.Errorf("placeholder secret sem fonte configurada: %s", key)
		}
		return i.source.Secret(ctx, key)
	}

	return "", fmt.Errorf("tipo de placeholder desconhecido: %s", sourceType)
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("tipo não suportado: %s", field.Kind())
	}
	return nil
}
