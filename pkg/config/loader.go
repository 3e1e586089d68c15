package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/api-playground/pkg/config/injector"
	"github.com/raywall/api-playground/pkg/secrets"
	"gopkg.in/yaml.v3"
)

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type DynamoGetter interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// SourceFactory cria a fonte de parâmetros/segredos sob demanda.
type SourceFactory func(ctx context.Context) (injector.Source, error)

// UniversalLoader suporta múltiplas fontes de configuração (Local, S3, DynamoDB).
type UniversalLoader struct {
	validator     *ConfigValidator
	sourceFactory SourceFactory
}

// NewUniversalLoader cria uma nova instância que resolve ${ssm.*} e ${secret.*} na AWS.
func NewUniversalLoader() *UniversalLoader {
	return &UniversalLoader{
		validator: NewValidator(),
		sourceFactory: func(ctx context.Context) (injector.Source, error) {
			return secrets.NewAWSResolver(ctx, os.Getenv("AWS_REGION"))
		},
	}
}

// WithSourceFactory troca a fonte remota (usado em testes).
func (ul *UniversalLoader) WithSourceFactory(f SourceFactory) *UniversalLoader {
	ul.sourceFactory = f
	return ul
}

// Load detecta o esquema da fonte e carrega a configuração.
// Fonte vazia devolve os valores padrão, ainda sujeitos a env e validação.
func (ul *UniversalLoader) Load(ctx context.Context, source string) (*PlaygroundConfig, error) {
	var rawData []byte
	var err error

	switch {
	case source == "":
		rawData = nil

	case strings.HasPrefix(source, "s3://"):
		cfg, cfgErr := awsconfig.LoadDefaultConfig(ctx)
		if cfgErr != nil {
			return nil, fmt.Errorf("falha ao carregar config aws: %w", cfgErr)
		}
		rawData, err = ul.loadFromS3Internal(ctx, s3.NewFromConfig(cfg), source)

	case strings.HasPrefix(source, "dynamodb://"):
		cfg, cfgErr := awsconfig.LoadDefaultConfig(ctx)
		if cfgErr != nil {
			return nil, fmt.Errorf("falha ao carregar config aws: %w", cfgErr)
		}
		rawData, err = ul.loadFromDynamoDBInternal(ctx, dynamodb.NewFromConfig(cfg), source)

	default:
		rawData, err = ul.loadFromFile(source)
	}

	if err != nil {
		return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
	}

	return ul.parseAndValidate(ctx, rawData)
}

// --- Estratégias de carregamento (métodos internos testáveis) ---

func (ul *UniversalLoader) loadFromFile(path string) ([]byte, error) {
	// Suporta tanto "file://config.yaml" quanto apenas "config.yaml"
	cleanPath := strings.TrimPrefix(path, "file://")
	return os.ReadFile(cleanPath)
}

func (ul *UniversalLoader) loadFromS3Internal(ctx context.Context, client S3Downloader, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (ul *UniversalLoader) loadFromDynamoDBInternal(ctx context.Context, client DynamoGetter, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL DynamoDB inválida: %w", err)
	}

	tableName := u.Host
	pkValue := strings.TrimPrefix(u.Path, "/")

	// Query Params opcionais: dynamodb://tabela/chave?col=dado&pk=ConfigId
	colName := u.Query().Get("col")
	if colName == "" {
		colName = "config" // Coluna padrão onde o YAML está salvo
	}

	pkName := u.Query().Get("pk")
	if pkName == "" {
		pkName = "id"
	}

	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			pkName: &types.AttributeValueMemberS{Value: pkValue},
		},
	})
	if err != nil {
		return nil, err
	}

	if out.Item == nil {
		return nil, fmt.Errorf("item não encontrado no DynamoDB")
	}

	var itemMap map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Item, &itemMap); err != nil {
		return nil, err
	}

	content, ok := itemMap[colName].(string)
	if !ok {
		return nil, fmt.Errorf("coluna '%s' inválida ou vazia no DynamoDB", colName)
	}

	return []byte(content), nil
}

func (ul *UniversalLoader) parseAndValidate(ctx context.Context, data []byte) (*PlaygroundConfig, error) {
	cfg := Default()

	// 1. Unmarshal (YAML -> Struct) por cima dos padrões
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("YAML malformado: %w", err)
		}
	}

	// 2. Injection (Env/Secrets/SSM)
	inj := injector.New(&lazySource{factory: ul.sourceFactory})
	if err := inj.Inject(ctx, cfg); err != nil {
		return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
	}

	// 3. Validation
	if ul.validator != nil {
		if err := ul.validator.Validate(cfg); err != nil {
			return nil, fmt.Errorf("validação da configuração falhou: %w", err)
		}
	}

	return cfg, nil
}

// lazySource só cria os clientes AWS se algum placeholder remoto aparecer.
type lazySource struct {
	factory SourceFactory
	once    sync.Once
	src     injector.Source
	err     error
}

func (l *lazySource) get(ctx context.Context) (injector.Source, error) {
	l.once.Do(func() {
		if l.factory == nil {
			l.err = fmt.Errorf("nenhuma fonte remota configurada")
			return
		}
		l.src, l.err = l.factory(ctx)
	})
	return l.src, l.err
}

func (l *lazySource) Parameter(ctx context.Context, name string) (string, error) {
	src, err := l.get(ctx)
	if err != nil {
		return "", err
	}
	return src.Parameter(ctx, name)
}

func (l *lazySource) Secret(ctx context.Context, id string) (string, error) {
	src, err := l.get(ctx)
	if err != nil {
		return "", err
	}
	return src.Secret(ctx, id)
}
