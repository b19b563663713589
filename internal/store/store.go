// Package store is the DynamoDB adapter for config entries. It owns the
// three storage operations the service needs: a prefix query over one
// app+environment slice, an unconditional overwrite put, and an
// unconditional delete. There are no retries and no transactions; store
// errors propagate to the caller untouched apart from wrapping.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mealhub/remote-config/internal/content"
	"github.com/mealhub/remote-config/internal/keyspace"
)

// DynamoAPI is the slice of the DynamoDB client the store uses. Tests
// substitute a fake; production passes *dynamodb.Client.
type DynamoAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Config holds configuration for the Store.
type Config struct {
	// Table is the DynamoDB table holding config entries.
	Table string

	// Environment is baked into every sort key the store produces.
	// Default: "production"
	Environment string
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Environment == "" {
		c.Environment = "production"
	}
}

// Store provides config entry persistence on top of DynamoDB.
type Store struct {
	client DynamoAPI
	config Config
	now    func() time.Time
}

// New creates a new Store instance.
func New(client DynamoAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
		now:    time.Now,
	}
}

// FetchPublished returns all published entries for an app in the store's
// environment, across every screen. A slice with no elements (never nil)
// means nothing is published for that app.
func (s *Store) FetchPublished(ctx context.Context, app string) ([]content.Entry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.config.Table),
		KeyConditionExpression: aws.String("pk = :pk AND begins_with(sk, :prefix)"),
		FilterExpression:       aws.String("#status = :published"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":        &types.AttributeValueMemberS{Value: keyspace.PartitionKey(app)},
			":prefix":    &types.AttributeValueMemberS{Value: keyspace.SortKeyPrefix(s.config.Environment)},
			":published": &types.AttributeValueMemberS{Value: content.StatusPublished},
		},
	}

	entries := []content.Entry{}
	paginator := dynamodb.NewQueryPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query config: %w", err)
		}
		var batch []content.Entry
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal config items: %w", err)
		}
		entries = append(entries, batch...)
	}

	return entries, nil
}

// Put writes an entry, overwriting any existing item with the same
// identity. Create and update are deliberately the same storage effect:
// there is no existence check and no version token, which keeps every
// write idempotent and safe to retry blindly.
func (s *Store) Put(ctx context.Context, app string, payload content.Payload, updatedBy string) error {
	entry := content.Entry{
		PK:        keyspace.PartitionKey(app),
		SK:        keyspace.SortKey(s.config.Environment, payload.Screen, payload.Key),
		App:       app,
		Screen:    payload.Screen,
		Key:       payload.Key,
		Value:     payload.Value,
		Type:      payload.Type,
		Status:    content.StatusPublished,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
		UpdatedBy: updatedBy,
	}

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("marshal config item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.Table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put config item: %w", err)
	}
	return nil
}

// Delete removes an entry by exact key. Deleting an entry that does not
// exist is not an error.
func (s *Store) Delete(ctx context.Context, app, screen, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.Table),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: keyspace.PartitionKey(app)},
			"sk": &types.AttributeValueMemberS{Value: keyspace.SortKey(s.config.Environment, screen, key)},
		},
	})
	if err != nil {
		return fmt.Errorf("delete config item: %w", err)
	}
	return nil
}
