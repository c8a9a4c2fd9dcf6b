package donation

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/internal/repository"
	"github.com/campusbooks/bookshare-service/pkg/auth"
)

// Service is the donation lifecycle manager: pending -> approved -> completed,
// with rejected/cancelled as alternate terminals. Completion materializes the
// catalog entry inside the repository transaction.
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

func (s *Service) CreateDonation(ctx context.Context, actor auth.Actor, req model.CreateDonationRequest) (model.DonationRequest, error) {
	req.Donor = actor.Name
	return s.repo.CreateDonation(ctx, req)
}

func (s *Service) GetDonation(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error) {
	req, err := s.repo.GetDonation(ctx, uid)
	if err != nil {
		return model.DonationRequest{}, err
	}
	if !actor.IsLibrarian() && req.Donor != actor.Name {
		return model.DonationRequest{}, errs.ErrForbidden
	}
	return req, nil
}

func (s *Service) ListDonations(ctx context.Context, donor string, all bool) ([]model.DonationRequest, error) {
	return s.repo.ListDonations(ctx, donor, all)
}

func (s *Service) Approve(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error) {
	if !actor.IsLibrarian() {
		return model.DonationRequest{}, errs.ErrForbidden
	}
	return s.transition(ctx, uid, model.DonationApproved)
}

func (s *Service) Reject(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error) {
	if !actor.IsLibrarian() {
		return model.DonationRequest{}, errs.ErrForbidden
	}
	return s.transition(ctx, uid, model.DonationRejected)
}

func (s *Service) Cancel(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error) {
	req, err := s.repo.GetDonation(ctx, uid)
	if err != nil {
		return model.DonationRequest{}, err
	}
	if req.Donor != actor.Name {
		return model.DonationRequest{}, errs.ErrForbidden
	}
	return s.transition(ctx, uid, model.DonationCancelled)
}

func (s *Service) Complete(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error) {
	if !actor.IsLibrarian() {
		return model.DonationRequest{}, errs.ErrForbidden
	}
	return s.repo.CompleteDonation(ctx, uid)
}

func (s *Service) transition(ctx context.Context, uid string, to model.DonationStatus) (model.DonationRequest, error) {
	cur, err := s.repo.GetDonation(ctx, uid)
	if err != nil {
		return model.DonationRequest{}, err
	}
	if cur.Status == to {
		// repeated command is a no-op
		return cur, nil
	}
	if !cur.Status.CanTransitionTo(to) {
		return model.DonationRequest{}, errs.ErrInvalidTransition
	}
	return s.repo.UpdateDonationStatus(ctx, uid, cur.Status, to)
}
