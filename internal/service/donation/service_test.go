package donation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/internal/repository"
	"github.com/campusbooks/bookshare-service/pkg/auth"
)

// memRepo covers only what the donation service touches. failMaterialize
// simulates a storage failure inside the completion transaction.
type memRepo struct {
	mu              sync.Mutex
	donations       map[string]*model.DonationRequest
	titles          int
	copies          int
	nextID          int
	failMaterialize bool
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		donations: make(map[string]*model.DonationRequest),
		nextID:    1,
	}
}

func (m *memRepo) CreateDonation(_ context.Context, req model.CreateDonationRequest) (model.DonationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := &model.DonationRequest{
		ID:            m.nextID,
		DonationUid:   uuid.New().String(),
		Donor:         req.Donor,
		Name:          req.Name,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
		Pages:         req.Pages,
		Status:        model.DonationPending,
		CreatedAt:     time.Now().UTC(),
	}
	m.nextID++
	m.donations[d.DonationUid] = d
	return *d, nil
}

func (m *memRepo) GetDonation(_ context.Context, uid string) (model.DonationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.donations[uid]
	if !ok {
		return model.DonationRequest{}, errs.ErrNotFound
	}
	return *d, nil
}

func (m *memRepo) ListDonations(_ context.Context, donor string, all bool) ([]model.DonationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.DonationRequest
	for _, d := range m.donations {
		if donor != "" && d.Donor != donor {
			continue
		}
		if !all && d.Status.IsTerminal() {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (m *memRepo) UpdateDonationStatus(_ context.Context, uid string, from, to model.DonationStatus) (model.DonationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.donations[uid]
	if !ok {
		return model.DonationRequest{}, errs.ErrNotFound
	}
	if d.Status != from {
		if d.Status == to {
			return *d, nil
		}
		return model.DonationRequest{}, errors.Wrapf(errs.ErrInvalidTransition, "%s -> %s", d.Status, to)
	}
	now := time.Now().UTC()
	d.Status = to
	d.ReviewedAt = &now
	return *d, nil
}

func (m *memRepo) CompleteDonation(_ context.Context, uid string) (model.DonationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.donations[uid]
	if !ok {
		return model.DonationRequest{}, errs.ErrNotFound
	}
	if d.Status == model.DonationCompleted {
		return *d, nil
	}
	if !d.Status.CanTransitionTo(model.DonationCompleted) {
		return model.DonationRequest{}, errors.Wrapf(errs.ErrInvalidTransition, "%s -> completed", d.Status)
	}
	if m.failMaterialize {
		// whole transaction rolls back: no catalog entry, no status change
		return model.DonationRequest{}, errors.New("materialize copy: connection reset")
	}
	m.titles++
	m.copies++
	now := time.Now().UTC()
	d.Status = model.DonationCompleted
	d.CompletedAt = &now
	return *d, nil
}

// unused by the donation service
func (m *memRepo) ListBookTitles(context.Context, int, int) (model.ListBookTitles, error) {
	return model.ListBookTitles{}, nil
}
func (m *memRepo) GetBookTitle(context.Context, int) (model.BookTitle, error) {
	return model.BookTitle{}, errs.ErrNotFound
}
func (m *memRepo) AddCopies(context.Context, int, int) ([]model.BookCopy, error) { return nil, nil }
func (m *memRepo) MarkDamaged(context.Context, int) (model.BookCopy, error) {
	return model.BookCopy{}, errs.ErrNotFound
}
func (m *memRepo) AvailableCount(context.Context, int) (int, error) { return 0, nil }
func (m *memRepo) CreateBorrow(context.Context, model.CreateBorrowRequest) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, nil
}
func (m *memRepo) GetBorrow(context.Context, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}
func (m *memRepo) ListBorrows(context.Context, string, bool) ([]model.BorrowRequest, error) {
	return nil, nil
}
func (m *memRepo) ApproveBorrow(context.Context, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}
func (m *memRepo) RejectBorrow(context.Context, string, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}
func (m *memRepo) CancelBorrow(context.Context, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}
func (m *memRepo) CollectBorrow(context.Context, string, int) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}
func (m *memRepo) RequestReturn(context.Context, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}
func (m *memRepo) ReturnBorrow(context.Context, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}

var (
	donor     = auth.Actor{Name: "dana", Role: auth.RoleUser}
	stranger  = auth.Actor{Name: "sam", Role: auth.RoleUser}
	librarian = auth.Actor{Name: "marian", Role: auth.RoleLibrarian}
)

func create(t *testing.T, svc *Service) model.DonationRequest {
	t.Helper()
	d, err := svc.CreateDonation(context.Background(), donor, model.CreateDonationRequest{
		Name:          "Old Textbook",
		Author:        "N. N.",
		PublishedYear: 2001,
		Pages:         420,
	})
	require.NoError(t, err)
	require.Equal(t, model.DonationPending, d.Status)
	return d
}

func TestService_CompleteMaterializesCatalogEntry(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, zap.NewNop())

	d := create(t, svc)

	d, err := svc.Approve(ctx, librarian, d.DonationUid)
	require.NoError(t, err)
	assert.Equal(t, model.DonationApproved, d.Status)

	d, err = svc.Complete(ctx, librarian, d.DonationUid)
	require.NoError(t, err)
	assert.Equal(t, model.DonationCompleted, d.Status)
	assert.NotNil(t, d.CompletedAt)
	assert.Equal(t, 1, repo.titles)
	assert.Equal(t, 1, repo.copies)

	// retry is a no-op: still exactly one copy
	d, err = svc.Complete(ctx, librarian, d.DonationUid)
	require.NoError(t, err)
	assert.Equal(t, model.DonationCompleted, d.Status)
	assert.Equal(t, 1, repo.copies)
}

func TestService_CompletionFailureLeavesApproved(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, zap.NewNop())

	d := create(t, svc)
	_, err := svc.Approve(ctx, librarian, d.DonationUid)
	require.NoError(t, err)

	repo.failMaterialize = true
	_, err = svc.Complete(ctx, librarian, d.DonationUid)
	require.Error(t, err)

	cur, err := svc.GetDonation(ctx, librarian, d.DonationUid)
	require.NoError(t, err)
	assert.Equal(t, model.DonationApproved, cur.Status)
	assert.Equal(t, 0, repo.copies)
}

func TestService_GuardsAndTerminals(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo, zap.NewNop())

	d := create(t, svc)

	// completion straight from pending skips approval
	_, err := svc.Complete(ctx, librarian, d.DonationUid)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	// only librarians review, only the donor cancels
	_, err = svc.Approve(ctx, donor, d.DonationUid)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = svc.Reject(ctx, donor, d.DonationUid)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = svc.Cancel(ctx, stranger, d.DonationUid)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = svc.GetDonation(ctx, stranger, d.DonationUid)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	d, err = svc.Cancel(ctx, donor, d.DonationUid)
	require.NoError(t, err)
	assert.Equal(t, model.DonationCancelled, d.Status)

	// cancelled is terminal
	_, err = svc.Approve(ctx, librarian, d.DonationUid)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	// retrying cancel returns the current state
	d, err = svc.Cancel(ctx, donor, d.DonationUid)
	require.NoError(t, err)
	assert.Equal(t, model.DonationCancelled, d.Status)
}

func TestService_UnknownDonation(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Approve(context.Background(), librarian, uuid.New().String())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
