package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/model"
)

func (r *repository) AppendAudit(ctx context.Context, e model.AuditLog) error {
	q := `insert into audit_logs (id, action, performed_by, entity_type, entity_id, details, timestamp)
	values (@id, @action, @performed_by, @entity_type, @entity_id, @details, @timestamp)
	on conflict (id) do nothing`
	args := pgx.NamedArgs{
		"id":           e.ID,
		"action":       e.Action,
		"performed_by": e.PerformedBy,
		"entity_type":  e.EntityType,
		"entity_id":    e.EntityID,
		"details":      e.Details,
		"timestamp":    e.Timestamp,
	}
	_, err := r.db.Exec(ctx, q, args)
	return err
}

func (r *repository) ListAudit(ctx context.Context) ([]model.AuditLog, error) {
	query, args, err := qb.Select("id", "action", "performed_by", "entity_type", "entity_id", "details", "timestamp").
		From(auditTableName).
		OrderBy("timestamp desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	logs, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.AuditLog])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return logs, nil
}
