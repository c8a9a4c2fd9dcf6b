package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/internal/repository"
	"github.com/campusbooks/bookshare-service/pkg/auth"
)

// Service is the catalog read side plus copy administration. available_copies
// on every title is counted from book_copy rows, never cached.
type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) ListBookTitles(ctx context.Context, page, size int) (model.ListBookTitles, error) {
	return s.repo.ListBookTitles(ctx, page, size)
}

func (s *Service) GetBookTitle(ctx context.Context, id int) (model.BookTitle, error) {
	return s.repo.GetBookTitle(ctx, id)
}

func (s *Service) AddCopies(ctx context.Context, actor auth.Actor, titleID, count int) ([]model.BookCopy, error) {
	if !actor.IsLibrarian() {
		return nil, errs.ErrForbidden
	}
	if _, err := s.repo.GetBookTitle(ctx, titleID); err != nil {
		return nil, err
	}
	return s.repo.AddCopies(ctx, titleID, count)
}

func (s *Service) MarkDamaged(ctx context.Context, actor auth.Actor, copyID int) (model.BookCopy, error) {
	if !actor.IsLibrarian() {
		return model.BookCopy{}, errs.ErrForbidden
	}
	return s.repo.MarkDamaged(ctx, copyID)
}
