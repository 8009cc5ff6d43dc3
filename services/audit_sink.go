package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"product-service/models"
)

// AuditQueueKey is the Redis list the audit worker consumes from.
const AuditQueueKey = "audit:products"

// RedisAuditSink pushes audit records onto a Redis list for the downstream
// audit worker. Sink failures are logged, never propagated: an audit outage
// must not block product creation.
type RedisAuditSink struct {
	rdb *redis.Client
}

func NewRedisAuditSink(rdb *redis.Client) *RedisAuditSink {
	return &RedisAuditSink{rdb: rdb}
}

func (s *RedisAuditSink) Record(ctx context.Context, rec *models.AuditRecord) {
	if s.rdb == nil || rec == nil {
		return
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		zap.L().Error("failed to marshal audit record", zap.Error(err))
		return
	}

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.rdb.RPush(pushCtx, AuditQueueKey, payload).Err(); err != nil {
		zap.L().Error("failed to push audit record",
			zap.String("event", string(rec.EventName)),
			zap.Error(err),
		)
	}
}
