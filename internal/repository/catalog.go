package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
)

const titleColumns = `t.id, t.name, t.author, t.category, t.published_year, t.pages, t.cover_url`

func (r *repository) ListBookTitles(ctx context.Context, page, size int) (model.ListBookTitles, error) {
	b := qb.Select(titleColumns+`, count(c.id) filter (where c.status = 'available') as available_copies`).
		From(bookTitleTableName+" t").
		LeftJoin(fmt.Sprintf("%s c on c.book_title_id = t.id", bookCopyTableName)).
		GroupBy("t.id").
		OrderBy("t.id")
	if page != 0 && size != 0 {
		b = b.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.ListBookTitles{}, err
	}
	var titles []model.BookTitle
	if err := r.db.SelectContext(ctx, &titles, q, args...); err != nil {
		return model.ListBookTitles{}, err
	}
	return model.ListBookTitles{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(titles),
		},
		Items: titles,
	}, nil
}

func (r *repository) GetBookTitle(ctx context.Context, id int) (model.BookTitle, error) {
	q, args, err := qb.Select(titleColumns+`, count(c.id) filter (where c.status = 'available') as available_copies`).
		From(bookTitleTableName+" t").
		LeftJoin(fmt.Sprintf("%s c on c.book_title_id = t.id", bookCopyTableName)).
		Where(sq.Eq{"t.id": id}).
		GroupBy("t.id").
		ToSql()
	if err != nil {
		return model.BookTitle{}, err
	}
	var title model.BookTitle
	if err := r.db.GetContext(ctx, &title, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookTitle{}, errs.ErrNotFound
		}
		return model.BookTitle{}, err
	}
	return title, nil
}

func (r *repository) AvailableCount(ctx context.Context, titleID int) (int, error) {
	q := `
	select count(*) from book_copy
	where book_title_id = $1 and status = 'available'
`
	var count int
	if err := r.db.QueryRowContext(ctx, q, titleID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) AddCopies(ctx context.Context, titleID, count int) ([]model.BookCopy, error) {
	b := qb.Insert(bookCopyTableName).Columns("book_title_id", "status")
	for i := 0; i < count; i++ {
		b = b.Values(titleID, model.CopyAvailable)
	}
	q, args, err := b.Suffix("returning id, book_title_id, status").ToSql()
	if err != nil {
		return nil, err
	}
	var copies []model.BookCopy
	if err := r.db.SelectContext(ctx, &copies, q, args...); err != nil {
		r.log.Error("AddCopies", zap.String("q", q), zap.Any("args", args))
		return nil, err
	}
	return copies, nil
}

// MarkDamaged soft-removes a copy from circulation. Only idle copies may be
// damaged directly; a copy out on loan comes back through the return flow first.
// The row is locked so a failed guard reports the status it actually saw.
func (r *repository) MarkDamaged(ctx context.Context, copyID int) (model.BookCopy, error) {
	var out model.BookCopy
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var c model.BookCopy
		err := tx.GetContext(ctx, &c,
			`select id, book_title_id, status from book_copy where id = $1 for update`, copyID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if c.Status != model.CopyAvailable {
			return errors.Wrapf(errs.ErrInvalidTransition, "copy is %s", c.Status)
		}
		if err := r.setCopyStatus(ctx, tx, copyID, model.CopyAvailable, model.CopyDamaged); err != nil {
			return err
		}
		c.Status = model.CopyDamaged
		out = c
		return nil
	})
	if err != nil {
		return model.BookCopy{}, err
	}
	return out, nil
}

// reserveCopy atomically claims one available copy of the title. Candidate rows
// are locked before the policy chooses, so two concurrent reservations can
// never both take the last copy.
func (r *repository) reserveCopy(ctx context.Context, tx *sqlx.Tx, titleID int) (model.BookCopy, error) {
	q, args, err := qb.Select("id", "book_title_id", "status").
		From(bookCopyTableName).
		Where(sq.Eq{"book_title_id": titleID, "status": model.CopyAvailable}).
		OrderBy("id").
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}
	var candidates []model.BookCopy
	if err := tx.SelectContext(ctx, &candidates, q, args...); err != nil {
		return model.BookCopy{}, err
	}
	chosen, err := r.policy.Choose(candidates)
	if err != nil {
		return model.BookCopy{}, err
	}
	if err := r.setCopyStatus(ctx, tx, chosen.ID, model.CopyAvailable, model.CopyReserved); err != nil {
		return model.BookCopy{}, err
	}
	chosen.Status = model.CopyReserved
	return chosen, nil
}

func (r *repository) releaseCopy(ctx context.Context, tx *sqlx.Tx, copyID int) error {
	q := `
	update book_copy set status = 'available'
	where id = $1 and status in ('reserved', 'borrowed')`
	res, err := tx.ExecContext(ctx, q, copyID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errs.ErrInvalidTransition, "copy %d is not held", copyID)
	}
	return nil
}

func (r *repository) markBorrowed(ctx context.Context, tx *sqlx.Tx, copyID int) error {
	return r.setCopyStatus(ctx, tx, copyID, model.CopyReserved, model.CopyBorrowed)
}

func (r *repository) setCopyStatus(ctx context.Context, tx *sqlx.Tx, copyID int, from, to model.CopyStatus) error {
	q, args, err := qb.Update(bookCopyTableName).
		Set("status", to).
		Where(sq.Eq{"id": copyID, "status": from}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errs.ErrInvalidTransition, "copy %d is not %s", copyID, from)
	}
	return nil
}
