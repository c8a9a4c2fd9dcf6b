package stats

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/pkg/kafka"
)

type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.Named("stats-repo"),
	}
}

func (r *Repository) Record(ctx context.Context, event kafka.Event) error {
	q := `
	insert into borrow_stats (kind, status, total)
	values ($1, $2, 1)
	on conflict (kind, status) do update set total = borrow_stats.total + 1`

	_, err := r.db.ExecContext(ctx, q, event.Kind, event.Status)
	return err
}
