package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gcash_checkout/internal/domain/entities"
	"gcash_checkout/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	bolt "github.com/boltdb/bolt"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(ref string) entities.FulfillmentRecord {
	return entities.FulfillmentRecord{
		OrderReference: entities.OrderReference(ref),
		EventID:        "evt_" + ref,
		PaymentID:      "pay_" + ref,
		Amount:         99900,
		Currency:       entities.CurrencyPHP,
	}
}

// exerciseLedgerContract checks the behaviour every backend must share.
func exerciseLedgerContract(t *testing.T, ledger interfaces.IFulfillmentLedger) {
	t.Helper()
	ctx := context.Background()

	claimed, err := ledger.Claim(ctx, record("ORD-a"))
	require.NoError(t, err)
	assert.True(t, claimed, "first claim must win")

	claimed, err = ledger.Claim(ctx, record("ORD-a"))
	require.NoError(t, err)
	assert.False(t, claimed, "duplicate claim must lose")

	claimed, err = ledger.Claim(ctx, record("ORD-b"))
	require.NoError(t, err)
	assert.True(t, claimed, "other references are independent")

	require.NoError(t, ledger.Release(ctx, "ORD-a"))
	claimed, err = ledger.Claim(ctx, record("ORD-a"))
	require.NoError(t, err)
	assert.True(t, claimed, "released reference can be claimed again")

	require.NoError(t, ledger.Release(ctx, "ORD-missing"), "releasing unknown reference is a no-op")

	const workers = 50
	var wins int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			ok, err := ledger.Claim(ctx, record("ORD-race"))
			if err == nil && ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()
	assert.Equal(t, int32(1), wins, "exactly one concurrent claim wins")
}

func TestFulfillmentMemoryLedger(t *testing.T) {
	exerciseLedgerContract(t, NewFulfillmentMemoryLedger(time.Hour))
}

func TestFulfillmentMemoryLedger_TTL(t *testing.T) {
	now := time.Now()
	l := NewFulfillmentMemoryLedger(time.Minute)
	l.now = func() time.Time { return now }

	ok, _ := l.Claim(context.Background(), record("ORD-ttl"))
	require.True(t, ok)

	now = now.Add(30 * time.Second)
	ok, _ = l.Claim(context.Background(), record("ORD-ttl"))
	assert.False(t, ok)

	now = now.Add(time.Minute)
	ok, _ = l.Claim(context.Background(), record("ORD-ttl"))
	assert.True(t, ok, "expired claim can be taken again")
}

func TestFulfillmentMemoryLedger_Sweep(t *testing.T) {
	now := time.Now()
	l := NewFulfillmentMemoryLedger(time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i < sweepThreshold; i++ {
		_, _ = l.Claim(context.Background(), record("ORD-"+strconv.Itoa(i)))
	}
	require.Equal(t, sweepThreshold, memoryEntries(l))

	now = now.Add(2 * time.Minute)
	_, _ = l.Claim(context.Background(), record("ORD-fresh"))
	assert.Equal(t, 1, memoryEntries(l))
}

func memoryEntries(l *FulfillmentMemoryLedger) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func storedBoltRecord(l *FulfillmentBoltLedger, ref entities.OrderReference) (entities.FulfillmentRecord, bool, error) {
	var rec entities.FulfillmentRecord
	found := false
	err := l.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(fulfillmentsBucket)).Get([]byte(ref.String()))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, &rec)
	})
	return rec, found, err
}

func TestFulfillmentBoltLedger(t *testing.T) {
	l, err := NewFulfillmentBoltLedger(filepath.Join(t.TempDir(), "ledger.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	exerciseLedgerContract(t, l)

	rec, found, err := storedBoltRecord(l, "ORD-b")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "pay_ORD-b", rec.PaymentID)
	assert.False(t, rec.ClaimedAt.IsZero())

	_, found, err = storedBoltRecord(l, "ORD-none")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFulfillmentBoltLedger_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	l, err := NewFulfillmentBoltLedger(path, 0)
	require.NoError(t, err)

	ok, err := l.Claim(context.Background(), record("ORD-durable"))
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, l.Close())

	reopened, err := NewFulfillmentBoltLedger(path, 0)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	ok, err = reopened.Claim(context.Background(), record("ORD-durable"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFulfillmentRedisLedger(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	l := NewFulfillmentRedisLedger(client, time.Hour)
	exerciseLedgerContract(t, l)

	assert.True(t, mr.Exists("fulfillment:ORD-b"))
	assert.Equal(t, time.Hour, mr.TTL("fulfillment:ORD-b"))

	mr.FastForward(2 * time.Hour)
	ok, err := l.Claim(context.Background(), record("ORD-b"))
	require.NoError(t, err)
	assert.True(t, ok, "expired key can be claimed again")
}

func TestFulfillmentRedisLedger_NotConfigured(t *testing.T) {
	l := NewFulfillmentRedisLedger(nil, time.Hour)
	_, err := l.Claim(context.Background(), record("ORD-x"))
	assert.ErrorIs(t, err, ErrRedisLedgerNotConfigured)
	assert.ErrorIs(t, l.Release(context.Background(), "ORD-x"), ErrRedisLedgerNotConfigured)
}

// fakeDynamo evaluates the two condition expressions the ledger issues.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]fulfillmentItem
	puts  []*dynamodb.PutItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]fulfillmentItem{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, in)

	var it fulfillmentItem
	if err := attributevalue.UnmarshalMap(in.Item, &it); err != nil {
		return nil, err
	}

	if existing, ok := f.items[it.OrderReference]; ok {
		stale := false
		if nowAV, ok := in.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN); ok {
			now, _ := strconv.ParseInt(nowAV.Value, 10, 64)
			stale = existing.ExpiresAt != 0 && existing.ExpiresAt <= now
		}
		if !stale {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
	}
	f.items[it.OrderReference] = it
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := in.Key["order_reference"].(*types.AttributeValueMemberS).Value
	delete(f.items, key)
	return &dynamodb.DeleteItemOutput{}, nil
}

type failingDynamo struct{ fakeDynamo }

func (f *failingDynamo) PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return nil, fmt.Errorf("throttled")
}

func fromFulfillmentItem(it fulfillmentItem) entities.FulfillmentRecord {
	claimedAt, _ := time.Parse(time.RFC3339Nano, it.ClaimedAt)
	return entities.FulfillmentRecord{
		OrderReference: entities.OrderReference(it.OrderReference),
		EventID:        it.EventID,
		PaymentID:      it.PaymentID,
		Amount:         it.Amount,
		Currency:       it.Currency,
		Livemode:       it.Livemode,
		ClaimedAt:      claimedAt,
	}
}

func TestFulfillmentDynamoLedger(t *testing.T) {
	fake := newFakeDynamo()
	exerciseLedgerContract(t, NewFulfillmentDynamoLedger(fake, "", 0))

	require.NotEmpty(t, fake.puts)
	assert.Equal(t, defaultFulfillmentsTableName, aws.ToString(fake.puts[0].TableName))
	assert.Equal(t, "attribute_not_exists(#ref)", aws.ToString(fake.puts[0].ConditionExpression))

	stored := fromFulfillmentItem(fake.items["ORD-b"])
	assert.Equal(t, entities.OrderReference("ORD-b"), stored.OrderReference)
	assert.Equal(t, int64(99900), stored.Amount)
	assert.False(t, stored.ClaimedAt.IsZero())
}

func TestFulfillmentDynamoLedger_TTL(t *testing.T) {
	fake := newFakeDynamo()
	now := time.Unix(1_760_000_000, 0)
	l := NewFulfillmentDynamoLedger(fake, "fulfillments", time.Hour)
	l.now = func() time.Time { return now }

	ok, err := l.Claim(context.Background(), record("ORD-ttl"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, now.Add(time.Hour).Unix(), fake.items["ORD-ttl"].ExpiresAt)

	ok, err = l.Claim(context.Background(), record("ORD-ttl"))
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(2 * time.Hour)
	ok, err = l.Claim(context.Background(), record("ORD-ttl"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFulfillmentDynamoLedger_Error(t *testing.T) {
	l := NewFulfillmentDynamoLedger(&failingDynamo{}, "fulfillments", 0)
	ok, err := l.Claim(context.Background(), record("ORD-err"))
	assert.False(t, ok)
	assert.EqualError(t, err, "throttled")
}
