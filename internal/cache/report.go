package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ReportPublisher stores seed run reports in Redis: the latest report under
// Key and the most recent History reports in the list Key+":history".
type ReportPublisher[T any] struct {
	client  redis.Cmdable
	Key     string
	History int64
}

// NewReportPublisher creates a publisher writing to client.
func NewReportPublisher[T any](client redis.Cmdable, key string, history int64) *ReportPublisher[T] {
	return &ReportPublisher[T]{client: client, Key: key, History: history}
}

// HistoryKey is the list holding previous reports, newest first.
func (p *ReportPublisher[T]) HistoryKey() string {
	return p.Key + ":history"
}

// Publish writes report as JSON in a single transaction.
func (p *ReportPublisher[T]) Publish(ctx context.Context, report *T) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, p.Key, payload, 0)
		if p.History > 0 {
			pipe.LPush(ctx, p.HistoryKey(), payload)
			pipe.LTrim(ctx, p.HistoryKey(), 0, p.History-1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish report to %s: %w", p.Key, err)
	}
	return nil
}

// Latest reads back the most recently published report.
func (p *ReportPublisher[T]) Latest(ctx context.Context) (*T, error) {
	raw, err := p.client.Get(ctx, p.Key).Bytes()
	if err != nil {
		return nil, err
	}
	var report T
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
