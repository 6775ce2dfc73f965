// Package kafka forwards audit events to a Kafka topic with franz-go.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/tfalohun/olera-sub001/internal/platform/config"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit"
	"github.com/tfalohun/olera-sub001/pkg/platform/sentinel"
)

var errNoBrokers = errors.New("kafka: no brokers configured")

// record is the wire shape of an audit event on the topic.
type record struct {
	Category  string    `json:"category"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id,omitempty"`
	Region    string    `json:"region,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Count     int       `json:"count"`
}

func toRecord(e audit.Event) record {
	r := record{
		Category:  string(e.Category),
		Action:    e.Action,
		Timestamp: e.Timestamp.UTC(),
		Region:    e.Region,
		RequestID: e.RequestID,
		Outcome:   e.Outcome,
		Count:     e.Count,
	}
	if !e.UserID.IsNil() {
		r.UserID = e.UserID.String()
	}
	return r
}

// partitionKey keeps one user's events ordered, and groups anonymous
// eligibility events by region.
func partitionKey(e audit.Event) []byte {
	if !e.UserID.IsNil() {
		return []byte(e.UserID.String())
	}
	return []byte(e.Region)
}

// Producer implements audit.Store by producing each event synchronously.
type Producer struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewProducer connects to the configured brokers.
func NewProducer(cfg config.KafkaConfig, logger *slog.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errNoBrokers
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.DefaultProduceTopic(cfg.AuditTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
		kgo.RecordDeliveryTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Producer{client: client, topic: cfg.AuditTopic, logger: logger}, nil
}

// Client exposes the underlying client for admin calls.
func (p *Producer) Client() *kgo.Client {
	return p.client
}

func (p *Producer) Append(ctx context.Context, event audit.Event) error {
	value, err := json.Marshal(toRecord(event))
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	rec := &kgo.Record{
		Topic: p.topic,
		Key:   partitionKey(event),
		Value: value,
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event to %s: %w: %w", p.topic, sentinel.ErrUnavailable, err)
	}
	return nil
}

// Ping checks that at least one broker answers.
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes buffered records and closes the client.
func (p *Producer) Close(ctx context.Context) {
	if err := p.client.Flush(ctx); err != nil {
		p.logger.Warn("kafka flush on close failed", "error", err)
	}
	p.client.Close()
}
