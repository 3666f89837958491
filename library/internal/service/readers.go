package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/library/internal/model"
	"go.uber.org/zap"
)

const welcomeTemplate = "reader_welcome.tmpl"

// generateMemberID yields Reader-<year>-<5 digits>.
func generateMemberID(year int) string {
	return fmt.Sprintf("Reader-%d-%05d", year, 10000+rand.Intn(90000))
}

func (s *Service) CreateReader(ctx context.Context, req model.CreateReaderRequest, actor string) (model.Reader, error) {
	now := s.now()
	reader := model.Reader{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		NIC:         req.NIC,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth.Ptr(),
		IsActive:    true,
		CreatedBy:   actor,
		CreatedAt:   now,
	}

	var (
		created model.Reader
		err     error
	)
	for i := 0; i < maxIDAttempts; i++ {
		reader.ID = uuid.New()
		reader.MemberID = generateMemberID(now.Year())
		created, err = s.repo.CreateReader(ctx, reader)
		if !errors.Is(err, errs.ErrMemberIDTaken) {
			break
		}
	}
	if err != nil {
		return model.Reader{}, errors.Wrap(err, "create reader")
	}
	s.invalidateCounts()

	s.audit.Record(ctx, model.ActionCreate, actor, model.EntityReader, created.ID.String(),
		fmt.Sprintf("Reader '%s' created", created.Name))

	if s.mailer != nil {
		s.background(func() {
			if err := s.mailer.Send(created.Email, welcomeTemplate, created); err != nil {
				s.log.Warn("welcome email", zap.String("memberId", created.MemberID), zap.Error(err))
			}
		})
	}
	return created, nil
}

func (s *Service) ListReaders(ctx context.Context, filter model.ReaderFilter) ([]model.Reader, error) {
	return s.repo.ListReaders(ctx, filter)
}

func (s *Service) UpdateReader(ctx context.Context, id uuid.UUID, req model.UpdateReaderRequest, actor string) (model.Reader, error) {
	if req.Empty() {
		return model.Reader{}, errs.Invalid("nothing to update")
	}
	reader, err := s.repo.UpdateReader(ctx, id, req, actor, s.now())
	if err != nil {
		return model.Reader{}, errors.Wrap(err, "update reader")
	}
	s.audit.Record(ctx, model.ActionUpdate, actor, model.EntityReader, reader.ID.String(),
		fmt.Sprintf("Reader '%s' updated", reader.Name))
	return reader, nil
}

func (s *Service) DeactivateReader(ctx context.Context, id uuid.UUID, actor string) (model.Reader, error) {
	reader, err := s.repo.DeactivateReader(ctx, id, actor, s.now())
	if err != nil {
		return model.Reader{}, errors.Wrap(err, "deactivate reader")
	}
	s.invalidateCounts()

	s.audit.Record(ctx, model.ActionDelete, actor, model.EntityReader, reader.ID.String(),
		fmt.Sprintf("Reader '%s' soft deleted", reader.Name))
	return reader, nil
}
