package dynamo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/phrazzld/task-repository/internal/config"
	"github.com/phrazzld/task-repository/internal/platform/logger"
	"github.com/phrazzld/task-repository/internal/store"
)

// API is the subset of the DynamoDB client the item store calls.
// *dynamodb.Client satisfies it.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

var _ API = (*dynamodb.Client)(nil)

// ItemStore implements store.ItemClient on top of DynamoDB.
type ItemStore struct {
	api            API
	consistentRead bool
	logger         *slog.Logger
}

// Ensure ItemStore implements store.ItemClient interface
var _ store.ItemClient = (*ItemStore)(nil)

// Option configures an ItemStore.
type Option func(*ItemStore)

// WithConsistentRead makes GetItem request strongly consistent reads.
func WithConsistentRead(enabled bool) Option {
	return func(s *ItemStore) {
		s.consistentRead = enabled
	}
}

// New wraps an API implementation.
// If logger is nil, a default logger will be used.
func New(api API, logger *slog.Logger, opts ...Option) *ItemStore {
	if api == nil {
		panic("api cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &ItemStore{
		api:    api,
		logger: logger.With(slog.String("component", "dynamo_item_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig builds a DynamoDB client from cfg and wraps it.
// Empty fields fall back to the SDK's default resolution chain.
func NewFromConfig(ctx context.Context, cfg config.AWSConfig, logger *slog.Logger, opts ...Option) (*ItemStore, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithConsistentRead(cfg.ConsistentRead)}, opts...)
	return New(client, logger, opts...), nil
}

// NewClient loads AWS settings and returns a DynamoDB client.
func NewClient(ctx context.Context, cfg config.AWSConfig) (*dynamodb.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// PutItem implements store.ItemClient.PutItem.
func (s *ItemStore) PutItem(ctx context.Context, table string, item store.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	values, err := toAttributeValues(item)
	if err != nil {
		return err
	}

	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      values,
	})
	if err != nil {
		log.Debug("PutItem request failed",
			slog.String("table", table),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	return nil
}

// GetItem implements store.ItemClient.GetItem.
func (s *ItemStore) GetItem(ctx context.Context, table string, key store.Item) (store.Item, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	values, err := toAttributeValues(key)
	if err != nil {
		return nil, false, err
	}

	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            values,
		ConsistentRead: aws.Bool(s.consistentRead),
	})
	if err != nil {
		log.Debug("GetItem request failed",
			slog.String("table", table),
			slog.String("error", err.Error()))
		return nil, false, MapError(err)
	}

	if out == nil || out.Item == nil {
		return nil, false, nil
	}

	return fromAttributeValues(out.Item), true, nil
}
