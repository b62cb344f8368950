package redisclient

import (
    "context"
    "testing"

    "github.com/go-redis/redis/v8"
    redismock "github.com/go-redis/redismock/v8"
)

// TestAddToStream_Success verifies that AddToStream writes to the Redis Stream on first attempt.
func TestAddToStream_Success(t *testing.T) {
    db, mock := redismock.NewClientMock()
    client := &Client{rdb: db}

    mock.ExpectXAdd(&redis.XAddArgs{
        Stream: "cmc:snapshots",
        Values: map[string]interface{}{"name": "Bitcoin"},
    }).SetVal("0-1")

    if err := client.AddToStream(context.Background(), "cmc:snapshots", map[string]interface{}{"name": "Bitcoin"}); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unfulfilled expectations: %v", err)
    }
}

// TestAddToStream_RetryOnError ensures AddToStream retries on a transient Redis error.
func TestAddToStream_RetryOnError(t *testing.T) {
    db, mock := redismock.NewClientMock()
    client := &Client{rdb: db}

    mock.ExpectXAdd(&redis.XAddArgs{Stream: "s", Values: map[string]interface{}{}}).SetErr(redis.Nil)
    mock.ExpectXAdd(&redis.XAddArgs{Stream: "s", Values: map[string]interface{}{}}).SetVal("0-2")

    if err := client.AddToStream(context.Background(), "s", map[string]interface{}{}); err != nil {
        t.Fatalf("expected success after retry, got %v", err)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unfulfilled expectations: %v", err)
    }
}

// TestHSet_Success verifies the latest-quote hash write.
func TestHSet_Success(t *testing.T) {
    db, mock := redismock.NewClientMock()
    client := &Client{rdb: db}

    values := map[string]interface{}{"market_cap": "100.00", "rank": 1}
    mock.ExpectHSet("cmc:latest:Bitcoin", values).SetVal(2)

    if err := client.HSet(context.Background(), "cmc:latest:Bitcoin", values); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Errorf("unfulfilled expectations: %v", err)
    }
}
