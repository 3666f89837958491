package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/turnthepage/library-service/library/internal/model"
	libraryRepo "github.com/turnthepage/library-service/library/internal/repository"
	"go.uber.org/zap"
)

// Recorder appends audit entries. A failed write is logged and never
// reaches the caller of the audited operation.
type Recorder struct {
	sink AuditSink
	now  func() time.Time
	log  *zap.Logger
}

func NewRecorder(sink AuditSink, now func() time.Time, log *zap.Logger) *Recorder {
	return &Recorder{
		sink: sink,
		now:  now,
		log:  log.Named("audit"),
	}
}

func (r *Recorder) Record(ctx context.Context, action model.Action, performedBy, entityType, entityID, details string) {
	entry := model.AuditLog{
		ID:          uuid.New(),
		Action:      action,
		PerformedBy: performedBy,
		EntityType:  entityType,
		EntityID:    entityID,
		Details:     details,
		Timestamp:   r.now(),
	}
	if err := r.sink.Write(ctx, entry); err != nil {
		r.log.Warn("audit write failed",
			zap.String("action", string(action)),
			zap.String("entityType", entityType),
			zap.String("entityId", entityID),
			zap.Error(err))
	}
}

type repositorySink struct {
	repo libraryRepo.AuditRepository
}

func NewRepositorySink(repo libraryRepo.AuditRepository) AuditSink {
	return &repositorySink{repo: repo}
}

func (s *repositorySink) Write(ctx context.Context, entry model.AuditLog) error {
	return s.repo.AppendAudit(ctx, entry)
}

// AppendAudit stores an entry that arrived over the audit stream.
func (s *Service) AppendAudit(ctx context.Context, entry model.AuditLog) error {
	return s.repo.AppendAudit(ctx, entry)
}

func (s *Service) ListAudit(ctx context.Context) ([]model.AuditLog, error) {
	return s.repo.ListAudit(ctx)
}
