package borrow

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/internal/overdue"
	"github.com/campusbooks/bookshare-service/internal/repository"
	"github.com/campusbooks/bookshare-service/pkg/auth"
)

// Service is the borrow lifecycle manager. It validates who may trigger a
// transition and converts failed reservations into rejections; the atomic
// state changes themselves live in the repository.
type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	loanDays int
	now      func() time.Time
}

func NewService(repo repository.Repository, log *zap.Logger, loanDays int) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		loanDays: loanDays,
		now:      time.Now,
	}
}

func (s *Service) CreateBorrow(ctx context.Context, actor auth.Actor, bookID int) (model.BorrowRequest, error) {
	if _, err := s.repo.GetBookTitle(ctx, bookID); err != nil {
		return model.BorrowRequest{}, err
	}
	req, err := s.repo.CreateBorrow(ctx, model.CreateBorrowRequest{
		BookID:    bookID,
		Requester: actor.Name,
	})
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return s.decorated(req), nil
}

func (s *Service) GetBorrow(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error) {
	req, err := s.repo.GetBorrow(ctx, uid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if !actor.IsLibrarian() && req.Requester != actor.Name {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	return s.decorated(req), nil
}

func (s *Service) ListBorrows(ctx context.Context, requester string, all bool) ([]model.BorrowRequest, error) {
	items, err := s.repo.ListBorrows(ctx, requester, all)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range items {
		overdue.Decorate(&items[i], now)
	}
	return items, nil
}

// Approve assigns a copy to a pending request. When no copy is left the
// request is rejected instead of being stranded; that rejection is the normal
// business outcome, not a fault.
func (s *Service) Approve(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error) {
	if !actor.IsLibrarian() {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	req, err := s.repo.ApproveBorrow(ctx, uid)
	if err != nil {
		if errors.Is(err, errs.ErrNoCopiesAvailable) {
			s.log.Info("approve without copies, rejecting",
				zap.String("borrow_uid", uid))
			req, err = s.repo.RejectBorrow(ctx, uid, errs.ErrNoCopiesAvailable.Error())
			if err != nil {
				return model.BorrowRequest{}, err
			}
			return s.decorated(req), nil
		}
		return model.BorrowRequest{}, err
	}
	return s.decorated(req), nil
}

func (s *Service) Reject(ctx context.Context, actor auth.Actor, uid, reason string) (model.BorrowRequest, error) {
	if !actor.IsLibrarian() {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	req, err := s.repo.RejectBorrow(ctx, uid, reason)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return s.decorated(req), nil
}

// Cancel is requester-only; once accepted it is final and releases any
// reserved copy in the same transaction.
func (s *Service) Cancel(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error) {
	req, err := s.repo.GetBorrow(ctx, uid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if req.Requester != actor.Name {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	req, err = s.repo.CancelBorrow(ctx, uid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return s.decorated(req), nil
}

func (s *Service) Collect(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error) {
	if !actor.IsLibrarian() {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	req, err := s.repo.CollectBorrow(ctx, uid, s.loanDays)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return s.decorated(req), nil
}

func (s *Service) RequestReturn(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error) {
	req, err := s.repo.GetBorrow(ctx, uid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if req.Requester != actor.Name {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	req, err = s.repo.RequestReturn(ctx, uid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return s.decorated(req), nil
}

func (s *Service) ConfirmReturn(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error) {
	if !actor.IsLibrarian() {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	req, err := s.repo.ReturnBorrow(ctx, uid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return s.decorated(req), nil
}

func (s *Service) decorated(req model.BorrowRequest) model.BorrowRequest {
	overdue.Decorate(&req, s.now())
	return req
}
