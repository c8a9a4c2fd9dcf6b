package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
)

const borrowColumns = `id, borrow_uid, book_title_id, requester, copy_id, status, reject_reason,
created_at, reviewed_at, collected_at, return_requested_at, returned_at, due_date`

func (r *repository) CreateBorrow(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error) {
	q, args, err := qb.Insert(borrowRequestTableName).
		Columns("borrow_uid", "book_title_id", "requester", "status", "created_at").
		Values(uuid.New(), req.BookID, req.Requester, model.BorrowPending, nowUTC()).
		Suffix("returning " + borrowColumns).
		ToSql()
	if err != nil {
		return model.BorrowRequest{}, err
	}
	var res model.BorrowRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.BorrowRequest{}, errs.ErrDuplicateActiveRequest
		}
		r.log.Error("CreateBorrow", zap.String("q", q), zap.Any("args", args))
		return model.BorrowRequest{}, err
	}
	return res, nil
}

func (r *repository) GetBorrow(ctx context.Context, uid string) (model.BorrowRequest, error) {
	q, args, err := qb.Select(borrowColumns).
		From(borrowRequestTableName).
		Where(sq.Eq{"borrow_uid": uid}).
		ToSql()
	if err != nil {
		return model.BorrowRequest{}, err
	}
	var res model.BorrowRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRequest{}, errs.ErrNotFound
		}
		return model.BorrowRequest{}, err
	}
	return res, nil
}

func (r *repository) ListBorrows(ctx context.Context, requester string, all bool) ([]model.BorrowRequest, error) {
	b := qb.Select(borrowColumns).
		From(borrowRequestTableName).
		OrderBy("created_at desc")
	if requester != "" {
		b = b.Where(sq.Eq{"requester": requester})
	}
	if !all {
		b = b.Where(sq.Eq{"status": activeStatusStrings()})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.BorrowRequest
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// transitionBorrow locks the request row, validates the edge against the
// transition table and applies it with any side effects in one transaction.
// A request already in the target status is returned unchanged (idempotent
// retry under concurrency).
func (r *repository) transitionBorrow(
	ctx context.Context,
	uid string,
	to model.BorrowStatus,
	sideEffect func(tx *sqlx.Tx, req *model.BorrowRequest, set map[string]interface{}) error,
) (model.BorrowRequest, error) {
	var out model.BorrowRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		req, err := r.getBorrowForUpdate(ctx, tx, uid)
		if err != nil {
			return err
		}
		if req.Status == to {
			out = req
			return nil
		}
		if !req.Status.CanTransitionTo(to) {
			return errors.Wrapf(errs.ErrInvalidTransition, "%s -> %s", req.Status, to)
		}
		set := map[string]interface{}{"status": string(to)}
		if sideEffect != nil {
			if err := sideEffect(tx, &req, set); err != nil {
				return err
			}
		}
		q, args, err := qb.Update(borrowRequestTableName).
			SetMap(set).
			Where(sq.Eq{"id": req.ID}).
			Suffix("returning " + borrowColumns).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &out, q, args...); err != nil {
			r.log.Error("transitionBorrow", zap.String("q", q), zap.Any("args", args))
			return err
		}
		return nil
	})
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return out, nil
}

func (r *repository) getBorrowForUpdate(ctx context.Context, tx *sqlx.Tx, uid string) (model.BorrowRequest, error) {
	q, args, err := qb.Select(borrowColumns).
		From(borrowRequestTableName).
		Where(sq.Eq{"borrow_uid": uid}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.BorrowRequest{}, err
	}
	var req model.BorrowRequest
	if err := tx.GetContext(ctx, &req, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRequest{}, errs.ErrNotFound
		}
		return model.BorrowRequest{}, err
	}
	return req, nil
}

func (r *repository) ApproveBorrow(ctx context.Context, uid string) (model.BorrowRequest, error) {
	return r.transitionBorrow(ctx, uid, model.BorrowApproved,
		func(tx *sqlx.Tx, req *model.BorrowRequest, set map[string]interface{}) error {
			chosen, err := r.reserveCopy(ctx, tx, req.BookTitleID)
			if err != nil {
				return err
			}
			set["copy_id"] = chosen.ID
			set["reviewed_at"] = nowUTC()
			return nil
		})
}

func (r *repository) RejectBorrow(ctx context.Context, uid, reason string) (model.BorrowRequest, error) {
	return r.transitionBorrow(ctx, uid, model.BorrowRejected,
		func(tx *sqlx.Tx, req *model.BorrowRequest, set map[string]interface{}) error {
			if req.CopyID != nil {
				if err := r.releaseCopy(ctx, tx, *req.CopyID); err != nil {
					return err
				}
				set["copy_id"] = nil
			}
			set["reviewed_at"] = nowUTC()
			set["reject_reason"] = reason
			return nil
		})
}

func (r *repository) CancelBorrow(ctx context.Context, uid string) (model.BorrowRequest, error) {
	return r.transitionBorrow(ctx, uid, model.BorrowCancelled,
		func(tx *sqlx.Tx, req *model.BorrowRequest, set map[string]interface{}) error {
			if req.CopyID != nil {
				if err := r.releaseCopy(ctx, tx, *req.CopyID); err != nil {
					return err
				}
				set["copy_id"] = nil
			}
			return nil
		})
}

func (r *repository) CollectBorrow(ctx context.Context, uid string, loanDays int) (model.BorrowRequest, error) {
	return r.transitionBorrow(ctx, uid, model.BorrowCollected,
		func(tx *sqlx.Tx, req *model.BorrowRequest, set map[string]interface{}) error {
			if req.CopyID == nil {
				return errors.Wrap(errs.ErrInvalidTransition, "approved request has no copy assigned")
			}
			if err := r.markBorrowed(ctx, tx, *req.CopyID); err != nil {
				return err
			}
			now := nowUTC()
			set["collected_at"] = now
			set["due_date"] = now.AddDate(0, 0, loanDays)
			return nil
		})
}

func (r *repository) RequestReturn(ctx context.Context, uid string) (model.BorrowRequest, error) {
	return r.transitionBorrow(ctx, uid, model.BorrowReturnRequested,
		func(tx *sqlx.Tx, req *model.BorrowRequest, set map[string]interface{}) error {
			set["return_requested_at"] = nowUTC()
			return nil
		})
}

func (r *repository) ReturnBorrow(ctx context.Context, uid string) (model.BorrowRequest, error) {
	return r.transitionBorrow(ctx, uid, model.BorrowReturned,
		func(tx *sqlx.Tx, req *model.BorrowRequest, set map[string]interface{}) error {
			if req.CopyID != nil {
				if err := r.releaseCopy(ctx, tx, *req.CopyID); err != nil {
					return err
				}
			}
			set["returned_at"] = nowUTC()
			return nil
		})
}
