package events

import (
	"context"

	"github.com/baharkarakas/fitgroups-api/internal/models"
	repo "github.com/baharkarakas/fitgroups-api/internal/repository"
)

// AuditSink writes each event as an audit_logs row.
type AuditSink struct{ r repo.AuditLogs }

func NewAuditSink(r repo.AuditLogs) *AuditSink { return &AuditSink{r: r} }

func (s *AuditSink) Name() string { return "audit" }

func (s *AuditSink) Publish(ctx context.Context, e Event) error {
	id := e.EntityID
	details := map[string]any{"event_id": e.ID}
	for k, v := range e.Payload {
		details[k] = v
	}
	return s.r.Create(ctx, models.AuditLog{
		EntityType: e.EntityType,
		EntityID:   &id,
		Action:     e.Type,
		Details:    details,
		CreatedAt:  e.OccurredAt,
	})
}
