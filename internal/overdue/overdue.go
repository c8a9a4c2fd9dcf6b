// Package overdue derives is_overdue/overdue_days from the stored due date.
// It is a query-time computation, not a background job: there is no separate
// overdue write path that could drift from the real due_date.
package overdue

import (
	"time"

	"github.com/campusbooks/bookshare-service/internal/model"
)

// Derive reports whether a request is overdue at the given instant and by how
// many whole days. Only currently-held requests can be overdue; a returned or
// otherwise closed request never is, regardless of dates.
func Derive(status model.BorrowStatus, dueDate *time.Time, now time.Time) (bool, int) {
	if dueDate == nil {
		return false, 0
	}
	if status != model.BorrowCollected && status != model.BorrowReturnRequested {
		return false, 0
	}
	if !now.After(*dueDate) {
		return false, 0
	}
	days := int(now.Sub(*dueDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return true, days
}

// Decorate fills the derived fields on a request in place.
func Decorate(r *model.BorrowRequest, now time.Time) {
	r.IsOverdue, r.OverdueDays = Derive(r.Status, r.DueDate, now)
}
