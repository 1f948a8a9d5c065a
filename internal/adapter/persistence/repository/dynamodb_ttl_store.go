package repository

import (
	"context"
	"strconv"
	"time"

	"vendor_registration/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTTLTableName = "ttl_store"

type ttlItem struct {
	Key         string `dynamodbav:"key"`
	Value       string `dynamodbav:"value"`
	ExpiresAt   int64  `dynamodbav:"expires_at,omitempty"`
	ExpiresAtMS string `dynamodbav:"expires_at_ms,omitempty"`
}

// dynamoAPI is the subset of the DynamoDB client used by the store.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoTTLStore persists TTL entries in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily (possibly hours later), so every read
// also compares expires_at_ms with the clock.
type DynamoTTLStore struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ITTLStore = (*DynamoTTLStore)(nil)

func NewDynamoTTLStore(ddb dynamoAPI, tableName string) *DynamoTTLStore {
	if tableName == "" {
		tableName = defaultTTLTableName
	}
	return &DynamoTTLStore{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *DynamoTTLStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it ttlItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	if isExpired(r.now(), deadlineOf(it)) {
		return "", false, nil
	}
	return it.Value, true, nil
}

func (r *DynamoTTLStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	av, err := attributevalue.MarshalMap(toTTLItem(key, value, expiresAt(r.now(), ttl)))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DynamoTTLStore) Ping(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	return err
}

func toTTLItem(key, value string, deadline time.Time) ttlItem {
	it := ttlItem{Key: key, Value: value}
	if !deadline.IsZero() {
		it.ExpiresAt = deadline.Unix()
		it.ExpiresAtMS = strconv.FormatInt(deadline.UnixMilli(), 10)
	}
	return it
}

func deadlineOf(it ttlItem) time.Time {
	if ms, err := strconv.ParseInt(it.ExpiresAtMS, 10, 64); err == nil && ms > 0 {
		return time.UnixMilli(ms)
	}
	if it.ExpiresAt > 0 {
		return time.Unix(it.ExpiresAt, 0)
	}
	return time.Time{}
}
