package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tfalohun/olera-sub001/internal/platform/config"
	"github.com/tfalohun/olera-sub001/internal/platform/kafka"
	"github.com/tfalohun/olera-sub001/internal/platform/postgres"
	"github.com/tfalohun/olera-sub001/internal/platform/redis"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit"
	"github.com/tfalohun/olera-sub001/pkg/platform/audit/publisher"
	"github.com/tfalohun/olera-sub001/pkg/platform/circuit"
)

const (
	auditBufferSize       = 1024
	auditTopicPartitions  = 3
	auditTopicReplication = 1
)

// infraDeps holds the optional backing services. Each is nil when its
// connection setting is empty.
type infraDeps struct {
	db        *sqlx.DB
	redis     *redis.Client
	producer  *kafka.Producer
	publisher *publisher.Publisher
	log       *slog.Logger
}

func buildInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infraDeps, error) {
	infra := &infraDeps{log: log}

	if cfg.Database.URL != "" {
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		infra.db = db
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(db, log); err != nil {
				infra.Close()
				return nil, err
			}
		}
	} else {
		log.Warn("DATABASE_URL not set, serving the seeded in-memory catalog")
	}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, catalog cache disabled", "error", err)
	}
	infra.redis = rc

	if len(cfg.Kafka.Brokers) > 0 {
		if err := infra.connectKafka(ctx, cfg.Kafka); err != nil {
			infra.Close()
			return nil, err
		}
	}

	return infra, nil
}

func (i *infraDeps) connectKafka(ctx context.Context, cfg config.KafkaConfig) error {
	producer, err := kafka.NewProducer(cfg, i.log)
	if err != nil {
		return err
	}
	i.producer = producer

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := producer.Ping(pingCtx); err != nil {
		return fmt.Errorf("kafka ping: %w", err)
	}
	if err := kafka.EnsureTopic(pingCtx, producer.Client(), cfg.AuditTopic, auditTopicPartitions, auditTopicReplication); err != nil {
		i.log.Warn("could not ensure audit topic", "topic", cfg.AuditTopic, "error", err)
	}

	i.publisher = publisher.NewPublisher(producer,
		publisher.WithAsyncBuffer(auditBufferSize),
		publisher.WithLogger(i.log),
		publisher.WithBreaker(circuit.New("audit-sink")),
	)
	return nil
}

// auditor returns the Kafka-backed publisher, or a no-op when Kafka is not
// configured.
func (i *infraDeps) auditor() audit.Emitter {
	if i.publisher == nil {
		return audit.NopEmitter{}
	}
	return i.publisher
}

// Close releases resources in reverse order of acquisition.
func (i *infraDeps) Close() {
	if i.publisher != nil {
		i.publisher.Close()
	}
	if i.producer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		i.producer.Close(ctx)
		cancel()
	}
	if i.redis != nil {
		if err := i.redis.Close(); err != nil {
			i.log.Warn("closing redis", "error", err)
		}
	}
	if i.db != nil {
		if err := i.db.Close(); err != nil {
			i.log.Warn("closing postgres", "error", err)
		}
	}
}
