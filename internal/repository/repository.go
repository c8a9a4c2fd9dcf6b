package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/allocation"
	"github.com/campusbooks/bookshare-service/internal/model"
)

type Repository interface {
	// catalog / inventory
	ListBookTitles(ctx context.Context, page, size int) (model.ListBookTitles, error)
	GetBookTitle(ctx context.Context, id int) (model.BookTitle, error)
	AddCopies(ctx context.Context, titleID, count int) ([]model.BookCopy, error)
	MarkDamaged(ctx context.Context, copyID int) (model.BookCopy, error)
	AvailableCount(ctx context.Context, titleID int) (int, error)

	// borrow lifecycle; every transition is a single transaction doing a
	// compare-and-set on the request row
	CreateBorrow(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error)
	GetBorrow(ctx context.Context, uid string) (model.BorrowRequest, error)
	ListBorrows(ctx context.Context, requester string, all bool) ([]model.BorrowRequest, error)
	ApproveBorrow(ctx context.Context, uid string) (model.BorrowRequest, error)
	RejectBorrow(ctx context.Context, uid, reason string) (model.BorrowRequest, error)
	CancelBorrow(ctx context.Context, uid string) (model.BorrowRequest, error)
	CollectBorrow(ctx context.Context, uid string, loanDays int) (model.BorrowRequest, error)
	RequestReturn(ctx context.Context, uid string) (model.BorrowRequest, error)
	ReturnBorrow(ctx context.Context, uid string) (model.BorrowRequest, error)

	// donation lifecycle
	CreateDonation(ctx context.Context, req model.CreateDonationRequest) (model.DonationRequest, error)
	GetDonation(ctx context.Context, uid string) (model.DonationRequest, error)
	ListDonations(ctx context.Context, donor string, all bool) ([]model.DonationRequest, error)
	UpdateDonationStatus(ctx context.Context, uid string, from, to model.DonationStatus) (model.DonationRequest, error)
	CompleteDonation(ctx context.Context, uid string) (model.DonationRequest, error)
}

type repository struct {
	db     *sqlx.DB
	policy allocation.Policy
	log    *zap.Logger
}

func NewRepository(db *sqlx.DB, policy allocation.Policy, log *zap.Logger) (*repository, error) {
	return &repository{
		db:     db,
		policy: policy,
		log:    log.Named("repo"),
	}, nil
}

const (
	bookTitleTableName       = `book_title`
	bookCopyTableName        = `book_copy`
	borrowRequestTableName   = `borrow_request`
	donationRequestTableName = `donation_request`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func activeStatusStrings() []string {
	ss := make([]string, 0, len(model.ActiveBorrowStatuses))
	for _, s := range model.ActiveBorrowStatuses {
		ss = append(ss, string(s))
	}
	return ss
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
