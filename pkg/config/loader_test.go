package config

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/api-playground/pkg/config/injector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockS3Loader struct {
	GetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func (m *MockS3Loader) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return m.GetObjectFunc(ctx, params, optFns...)
}

type MockDynamoLoader struct {
	GetItemFunc func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

func (m *MockDynamoLoader) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return m.GetItemFunc(ctx, params, optFns...)
}

type stubSource struct{}

func (stubSource) Parameter(ctx context.Context, name string) (string, error) {
	return "token-" + strings.TrimPrefix(name, "/"), nil
}

func (stubSource) Secret(ctx context.Context, id string) (string, error) {
	return "", errors.New("secret indisponível")
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmp, err := os.CreateTemp(t.TempDir(), "playground_*.yaml")
	require.NoError(t, err)
	_, err = tmp.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmp.Close())
	return tmp.Name()
}

// --- Testes ---

func TestUniversalLoader_Load_Defaults(t *testing.T) {
	cfg, err := NewUniversalLoader().Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Service.Port)
	assert.Equal(t, "abc123", cfg.Auth.Token)
	assert.Equal(t, 5, cfg.Fixtures.PerPage)
	assert.Equal(t, time.Hour, cfg.Event.GetOffset())
	assert.Equal(t, "memory", cfg.Unstable.Backend)
}

func TestUniversalLoader_Load_Local(t *testing.T) {
	path := writeTemp(t, `
version: "1.0"
service:
  name: "playground-local"
  port: 8080
  logging:
    level: "debug"
    format: "console"
auth:
  token: "${env.PLAYGROUND_TOKEN}"
event:
  offset: "2h"
`)
	t.Setenv("PLAYGROUND_TOKEN", "xyz789")

	cfg, err := NewUniversalLoader().Load(context.Background(), "file://"+path)
	require.NoError(t, err)

	assert.Equal(t, "playground-local", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, "local", cfg.Service.Runtime, "padrão deveria ser mantido")
	assert.Equal(t, "xyz789", cfg.Auth.Token)
	assert.Equal(t, 60, cfg.Auth.ExpiresIn)
	assert.Equal(t, 2*time.Hour, cfg.Event.GetOffset())
}

func TestUniversalLoader_Load_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("DEBUG", "1")

	cfg, err := NewUniversalLoader().Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Service.Port)
	assert.True(t, cfg.Service.Debug)
}

func TestUniversalLoader_Load_RemotePlaceholders(t *testing.T) {
	path := writeTemp(t, `
auth:
  token: "${ssm./playground/auth}"
`)

	loader := NewUniversalLoader().WithSourceFactory(func(ctx context.Context) (injector.Source, error) {
		return stubSource{}, nil
	})

	cfg, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "token-playground/auth", cfg.Auth.Token)

	path = writeTemp(t, `
unstable:
  redis:
    password: "${secret.playground/redis}"
`)
	_, err = loader.Load(context.Background(), path)
	assert.ErrorContains(t, err, "secret indisponível")
}

func TestUniversalLoader_Load_Errors(t *testing.T) {
	t.Run("Arquivo inexistente", func(t *testing.T) {
		_, err := NewUniversalLoader().Load(context.Background(), "nao_existe.yaml")
		assert.Error(t, err)
	})

	t.Run("YAML malformado", func(t *testing.T) {
		path := writeTemp(t, "service: [isto nao e um objeto")
		_, err := NewUniversalLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "YAML malformado")
	})

	t.Run("Validação falha", func(t *testing.T) {
		path := writeTemp(t, "fixtures:\n  per_page: -1\n")
		_, err := NewUniversalLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "validação")
	})
}

func TestUniversalLoader_S3_Internal(t *testing.T) {
	mockYaml := `version: "1.0"`
	mockClient := &MockS3Loader{
		GetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			assert.Equal(t, "my-bucket", *params.Bucket)
			assert.Equal(t, "configs/playground.yaml", *params.Key)
			return &s3.GetObjectOutput{
				Body: io.NopCloser(strings.NewReader(mockYaml)),
			}, nil
		},
	}

	data, err := NewUniversalLoader().loadFromS3Internal(context.Background(), mockClient, "s3://my-bucket/configs/playground.yaml")
	require.NoError(t, err)
	assert.Equal(t, mockYaml, string(data))
}

func TestUniversalLoader_Dynamo_Internal(t *testing.T) {
	mockClient := &MockDynamoLoader{
		GetItemFunc: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "ConfigTable", *params.TableName)
			key := params.Key["ServiceName"].(*types.AttributeValueMemberS).Value
			assert.Equal(t, "playground", key)

			return &dynamodb.GetItemOutput{
				Item: map[string]types.AttributeValue{
					"yaml_body": &types.AttributeValueMemberS{Value: `version: "1.0"`},
				},
			}, nil
		},
	}

	uri := "dynamodb://ConfigTable/playground?pk=ServiceName&col=yaml_body"
	data, err := NewUniversalLoader().loadFromDynamoDBInternal(context.Background(), mockClient, uri)
	require.NoError(t, err)
	assert.Equal(t, `version: "1.0"`, string(data))

	t.Run("Item inexistente", func(t *testing.T) {
		empty := &MockDynamoLoader{
			GetItemFunc: func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{}, nil
			},
		}
		_, err := NewUniversalLoader().loadFromDynamoDBInternal(context.Background(), empty, "dynamodb://T/x")
		assert.Error(t, err)
	})
}
