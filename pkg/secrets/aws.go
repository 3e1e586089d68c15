// Package secrets resolve valores de configuração guardados no AWS Parameter
// Store e no Secrets Manager.
package secrets

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

var (
	awsCfg  aws.Config
	awsOnce sync.Once
	awsErr  error
)

// GetAWSConfig carrega a configuração da AWS (env vars, profile, IAM role) de forma lazy-singleton.
func GetAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	awsOnce.Do(func() {
		opts := []func(*config.LoadOptions) error{}
		if region != "" {
			opts = append(opts, config.WithRegion(region))
		}
		awsCfg, awsErr = config.LoadDefaultConfig(ctx, opts...)
	})
	return awsCfg, awsErr
}

// SSMClient abstrai o SDK (permite Mocking).
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsClient abstrai o SDK (permite Mocking).
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver busca parâmetros e segredos por nome.
type Resolver struct {
	ssm     SSMClient
	secrets SecretsClient
}

// NewResolver cria um Resolver com clientes explícitos.
func NewResolver(ssmClient SSMClient, secretsClient SecretsClient) *Resolver {
	return &Resolver{ssm: ssmClient, secrets: secretsClient}
}

// NewAWSResolver inicializa os clientes reais a partir da configuração padrão da AWS.
func NewAWSResolver(ctx context.Context, region string) (*Resolver, error) {
	cfg, err := GetAWSConfig(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar config aws: %w", err)
	}
	return NewResolver(ssm.NewFromConfig(cfg), secretsmanager.NewFromConfig(cfg)), nil
}

// Parameter lê um parâmetro do SSM, sempre com decrypt (SecureString).
func (r *Resolver) Parameter(ctx context.Context, name string) (string, error) {
	if r.ssm == nil {
		return "", fmt.Errorf("cliente ssm não configurado")
	}
	out, err := r.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter %q: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parâmetro %q sem valor", name)
	}
	return *out.Parameter.Value, nil
}

// Secret lê o SecretString de um segredo.
func (r *Resolver) Secret(ctx context.Context, id string) (string, error) {
	if r.secrets == nil {
		return "", fmt.Errorf("cliente secretsmanager não configurado")
	}
	out, err := r.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SecretsManager %q: %w", id, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("segredo %q sem SecretString", id)
	}
	return *out.SecretString, nil
}
