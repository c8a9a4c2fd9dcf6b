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

const donationColumns = `id, donation_uid, donor, name, author, published_year, pages, status,
created_at, reviewed_at, completed_at`

func (r *repository) CreateDonation(ctx context.Context, req model.CreateDonationRequest) (model.DonationRequest, error) {
	q, args, err := qb.Insert(donationRequestTableName).
		Columns("donation_uid", "donor", "name", "author", "published_year", "pages", "status", "created_at").
		Values(uuid.New(), req.Donor, req.Name, req.Author, req.PublishedYear, req.Pages, model.DonationPending, nowUTC()).
		Suffix("returning " + donationColumns).
		ToSql()
	if err != nil {
		return model.DonationRequest{}, err
	}
	var res model.DonationRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		r.log.Error("CreateDonation", zap.String("q", q), zap.Any("args", args))
		return model.DonationRequest{}, err
	}
	return res, nil
}

func (r *repository) GetDonation(ctx context.Context, uid string) (model.DonationRequest, error) {
	q, args, err := qb.Select(donationColumns).
		From(donationRequestTableName).
		Where(sq.Eq{"donation_uid": uid}).
		ToSql()
	if err != nil {
		return model.DonationRequest{}, err
	}
	var res model.DonationRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DonationRequest{}, errs.ErrNotFound
		}
		return model.DonationRequest{}, err
	}
	return res, nil
}

func (r *repository) ListDonations(ctx context.Context, donor string, all bool) ([]model.DonationRequest, error) {
	b := qb.Select(donationColumns).
		From(donationRequestTableName).
		OrderBy("created_at desc")
	if donor != "" {
		b = b.Where(sq.Eq{"donor": donor})
	}
	if !all {
		b = b.Where(sq.Eq{"status": []string{string(model.DonationPending), string(model.DonationApproved)}})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.DonationRequest
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateDonationStatus applies a plain status edge (approve/reject/cancel)
// with a compare-and-set on the expected current status.
func (r *repository) UpdateDonationStatus(ctx context.Context, uid string, from, to model.DonationStatus) (model.DonationRequest, error) {
	q, args, err := qb.Update(donationRequestTableName).
		Set("status", to).
		Set("reviewed_at", nowUTC()).
		Where(sq.Eq{"donation_uid": uid, "status": from}).
		Suffix("returning " + donationColumns).
		ToSql()
	if err != nil {
		return model.DonationRequest{}, err
	}
	var res model.DonationRequest
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// lost the CAS; report against the actual current state
			current, getErr := r.GetDonation(ctx, uid)
			if getErr != nil {
				return model.DonationRequest{}, getErr
			}
			if current.Status == to {
				return current, nil
			}
			return model.DonationRequest{}, errors.Wrapf(errs.ErrInvalidTransition, "%s -> %s", current.Status, to)
		}
		return model.DonationRequest{}, err
	}
	return res, nil
}

// CompleteDonation closes the donation and materializes the catalog entry.
// The status update and the BookTitle/BookCopy inserts share one transaction:
// a completed donation with no resulting copy must be impossible.
func (r *repository) CompleteDonation(ctx context.Context, uid string) (model.DonationRequest, error) {
	var out model.DonationRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		req, err := r.getDonationForUpdate(ctx, tx, uid)
		if err != nil {
			return err
		}
		if req.Status == model.DonationCompleted {
			out = req
			return nil
		}
		if !req.Status.CanTransitionTo(model.DonationCompleted) {
			return errors.Wrapf(errs.ErrInvalidTransition, "%s -> %s", req.Status, model.DonationCompleted)
		}

		q, args, err := qb.Insert(bookTitleTableName).
			Columns("name", "author", "published_year", "pages").
			Values(req.Name, req.Author, req.PublishedYear, req.Pages).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return err
		}
		var titleID int
		if err := tx.GetContext(ctx, &titleID, q, args...); err != nil {
			return errors.Wrap(err, "materialize title")
		}

		q, args, err = qb.Insert(bookCopyTableName).
			Columns("book_title_id", "status").
			Values(titleID, model.CopyAvailable).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return errors.Wrap(err, "materialize copy")
		}

		q, args, err = qb.Update(donationRequestTableName).
			Set("status", model.DonationCompleted).
			Set("completed_at", nowUTC()).
			Where(sq.Eq{"id": req.ID}).
			Suffix("returning " + donationColumns).
			ToSql()
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &out, q, args...)
	})
	if err != nil {
		return model.DonationRequest{}, err
	}
	return out, nil
}

func (r *repository) getDonationForUpdate(ctx context.Context, tx *sqlx.Tx, uid string) (model.DonationRequest, error) {
	q, args, err := qb.Select(donationColumns).
		From(donationRequestTableName).
		Where(sq.Eq{"donation_uid": uid}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.DonationRequest{}, err
	}
	var req model.DonationRequest
	if err := tx.GetContext(ctx, &req, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DonationRequest{}, errs.ErrNotFound
		}
		return model.DonationRequest{}, err
	}
	return req, nil
}
