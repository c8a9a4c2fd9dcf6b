package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/internal/repository"
	"github.com/campusbooks/bookshare-service/pkg/auth"
)

// memRepo covers the catalog surface: titles, copies and the
// damaged-only-from-available guard.
type memRepo struct {
	mu     sync.Mutex
	titles map[int]model.BookTitle
	copies map[int]*model.BookCopy
	nextID int
}

var _ repository.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		titles: make(map[int]model.BookTitle),
		copies: make(map[int]*model.BookCopy),
		nextID: 1,
	}
}

func (m *memRepo) addTitle(id int, name string) {
	m.titles[id] = model.BookTitle{ID: id, Name: name}
}

func (m *memRepo) addCopy(titleID int, status model.CopyStatus) int {
	cid := m.nextID
	m.nextID++
	m.copies[cid] = &model.BookCopy{ID: cid, BookTitleID: titleID, Status: status}
	return cid
}

func (m *memRepo) ListBookTitles(_ context.Context, page, size int) (model.ListBookTitles, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []model.BookTitle
	for _, t := range m.titles {
		t.AvailableCopies = m.available(t.ID)
		items = append(items, t)
	}
	return model.ListBookTitles{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(items)},
		Items:  items,
	}, nil
}

func (m *memRepo) GetBookTitle(_ context.Context, id int) (model.BookTitle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.titles[id]
	if !ok {
		return model.BookTitle{}, errs.ErrNotFound
	}
	t.AvailableCopies = m.available(id)
	return t, nil
}

func (m *memRepo) available(titleID int) int {
	n := 0
	for _, c := range m.copies {
		if c.BookTitleID == titleID && c.Status == model.CopyAvailable {
			n++
		}
	}
	return n
}

func (m *memRepo) AvailableCount(_ context.Context, titleID int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available(titleID), nil
}

func (m *memRepo) AddCopies(_ context.Context, titleID, count int) ([]model.BookCopy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.BookCopy, 0, count)
	for i := 0; i < count; i++ {
		cid := m.addCopy(titleID, model.CopyAvailable)
		out = append(out, *m.copies[cid])
	}
	return out, nil
}

func (m *memRepo) MarkDamaged(_ context.Context, copyID int) (model.BookCopy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.copies[copyID]
	if !ok {
		return model.BookCopy{}, errs.ErrNotFound
	}
	if c.Status != model.CopyAvailable {
		return model.BookCopy{}, errors.Wrapf(errs.ErrInvalidTransition, "copy is %s", c.Status)
	}
	c.Status = model.CopyDamaged
	return *c, nil
}

// borrow and donation lifecycles are not exercised through the catalog service
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
func (m *memRepo) CreateDonation(context.Context, model.CreateDonationRequest) (model.DonationRequest, error) {
	return model.DonationRequest{}, nil
}
func (m *memRepo) GetDonation(context.Context, string) (model.DonationRequest, error) {
	return model.DonationRequest{}, errs.ErrNotFound
}
func (m *memRepo) ListDonations(context.Context, string, bool) ([]model.DonationRequest, error) {
	return nil, nil
}
func (m *memRepo) UpdateDonationStatus(context.Context, string, model.DonationStatus, model.DonationStatus) (model.DonationRequest, error) {
	return model.DonationRequest{}, errs.ErrNotFound
}
func (m *memRepo) CompleteDonation(context.Context, string) (model.DonationRequest, error) {
	return model.DonationRequest{}, errs.ErrNotFound
}

var (
	reader    = auth.Actor{Name: "alice", Role: auth.RoleUser}
	librarian = auth.Actor{Name: "marian", Role: auth.RoleLibrarian}
)

func TestService_AddCopies(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.addTitle(100, "Mystery Tales")
	svc := NewService(repo, zap.NewNop())

	// only librarians manage stock
	_, err := svc.AddCopies(ctx, reader, 100, 3)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	// unknown title
	_, err = svc.AddCopies(ctx, librarian, 999, 3)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	copies, err := svc.AddCopies(ctx, librarian, 100, 3)
	require.NoError(t, err)
	require.Len(t, copies, 3)
	for _, c := range copies {
		assert.Equal(t, 100, c.BookTitleID)
		assert.Equal(t, model.CopyAvailable, c.Status)
	}

	title, err := svc.GetBookTitle(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, title.AvailableCopies)
}

func TestService_MarkDamaged(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.addTitle(100, "Mystery Tales")
	idle := repo.addCopy(100, model.CopyAvailable)
	out := repo.addCopy(100, model.CopyBorrowed)
	svc := NewService(repo, zap.NewNop())

	// only librarians pull copies from circulation
	_, err := svc.MarkDamaged(ctx, reader, idle)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	c, err := svc.MarkDamaged(ctx, librarian, idle)
	require.NoError(t, err)
	assert.Equal(t, model.CopyDamaged, c.Status)

	// a copy out on loan comes back through the return flow first
	_, err = svc.MarkDamaged(ctx, librarian, out)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	// damaged is final: marking again is rejected, not idempotent
	_, err = svc.MarkDamaged(ctx, librarian, idle)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = svc.MarkDamaged(ctx, librarian, 999)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	title, err := svc.GetBookTitle(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, title.AvailableCopies)
}

func TestService_ListBookTitles(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.addTitle(100, "Mystery Tales")
	repo.addCopy(100, model.CopyAvailable)
	repo.addCopy(100, model.CopyBorrowed)
	svc := NewService(repo, zap.NewNop())

	list, err := svc.ListBookTitles(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Items[0].AvailableCopies)
}
