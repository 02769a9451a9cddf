package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"go-erp/internal/audit"
	"go-erp/internal/events"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle tails the employee-lifecycle topic and records one
// audit row per transition. Redeliveries hit the unique constraint and are
// committed without a second row.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditRepo audit.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		rec := &audit.LifecycleAudit{
			RequestID:        event.RequestID,
			EventType:        event.EventType,
			BusinessEntityID: event.BusinessEntityID,
			EffectiveDate:    event.EffectiveDate,
			Payload:          msg.Value,
			RecordedAt:       time.Now().UTC(),
		}
		if err := auditRepo.Create(ctx, rec); err != nil {
			if isDuplicateAudit(err) {
				log.Warn("lifecycle audit already recorded, skipping",
					zap.String("request_id", event.RequestID),
					zap.String("event_type", event.EventType),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("record lifecycle audit failed",
				zap.Int("business_entity_id", event.BusinessEntityID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("lifecycle audit recorded",
			zap.Int("business_entity_id", event.BusinessEntityID),
			zap.String("event_type", event.EventType),
			zap.String("effective_date", event.EffectiveDate),
		)
	}
}

func isDuplicateAudit(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_lifecycle_audit_request_event"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_lifecycle_audit_request_event")
}
