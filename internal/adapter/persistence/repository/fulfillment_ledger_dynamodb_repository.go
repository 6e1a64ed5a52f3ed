package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFulfillmentsTableName = "fulfillments"

// DynamoLedgerAPI is the subset of *dynamodb.Client the ledger needs.
type DynamoLedgerAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type fulfillmentItem struct {
	OrderReference string `dynamodbav:"order_reference"`
	EventID        string `dynamodbav:"event_id,omitempty"`
	PaymentID      string `dynamodbav:"payment_id,omitempty"`
	Amount         int64  `dynamodbav:"amount,omitempty"`
	Currency       string `dynamodbav:"currency,omitempty"`
	Livemode       bool   `dynamodbav:"livemode"`
	ClaimedAt      string `dynamodbav:"claimed_at"`
	ExpiresAt      int64  `dynamodbav:"expires_at,omitempty"`
}

// FulfillmentDynamoLedger persists claims in DynamoDB.
//
// Table requirements:
//   - PK: order_reference (string)
//   - TTL attribute: expires_at (optional; enable TTL on the table)
//
// TTL deletion in DynamoDB is lazy, so the put condition also accepts items
// whose expires_at is already in the past.

type FulfillmentDynamoLedger struct {
	ddb       DynamoLedgerAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IFulfillmentLedger = (*FulfillmentDynamoLedger)(nil)

func NewFulfillmentDynamoLedger(ddb DynamoLedgerAPI, tableName string, ttl time.Duration) *FulfillmentDynamoLedger {
	if tableName == "" {
		tableName = defaultFulfillmentsTableName
	}
	return &FulfillmentDynamoLedger{ddb: ddb, tableName: tableName, ttl: ttl, now: time.Now}
}

func (r *FulfillmentDynamoLedger) Claim(ctx context.Context, record entities.FulfillmentRecord) (bool, error) {
	now := r.now()
	if record.ClaimedAt.IsZero() {
		record.ClaimedAt = now.UTC()
	}

	it := toFulfillmentItem(record, r.ttl)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "order_reference",
		},
	}
	if r.ttl > 0 {
		input.ConditionExpression = aws.String("attribute_not_exists(#ref) OR #exp <= :now")
		input.ExpressionAttributeNames["#exp"] = "expires_at"
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		}
	}

	_, err = r.ddb.PutItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *FulfillmentDynamoLedger) Release(ctx context.Context, ref entities.OrderReference) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_reference": &types.AttributeValueMemberS{Value: ref.String()},
		},
	})
	return err
}

func toFulfillmentItem(rec entities.FulfillmentRecord, ttl time.Duration) fulfillmentItem {
	it := fulfillmentItem{
		OrderReference: rec.OrderReference.String(),
		EventID:        rec.EventID,
		PaymentID:      rec.PaymentID,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		Livemode:       rec.Livemode,
		ClaimedAt:      rec.ClaimedAt.UTC().Format(time.RFC3339Nano),
	}
	if ttl > 0 {
		it.ExpiresAt = rec.ClaimedAt.Add(ttl).Unix()
	}
	return it
}
