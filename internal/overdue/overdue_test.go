package overdue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/internal/overdue"
)

func TestDerive(t *testing.T) {
	collected := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	due := collected.Add(14 * 24 * time.Hour)

	day := func(n int) time.Time { return collected.Add(time.Duration(n) * 24 * time.Hour) }

	tests := []struct {
		name     string
		status   model.BorrowStatus
		dueDate  *time.Time
		now      time.Time
		overdue  bool
		wantDays int
	}{
		{"day 13 not overdue", model.BorrowCollected, &due, day(13), false, 0},
		{"due date itself not overdue", model.BorrowCollected, &due, day(14), false, 0},
		{"day 15 overdue by one day", model.BorrowCollected, &due, day(15), true, 1},
		{"day 20 overdue by six days", model.BorrowCollected, &due, day(20), true, 6},
		{"under a day past due floors to zero", model.BorrowCollected, &due, due.Add(time.Hour), true, 0},
		{"return_requested still accrues", model.BorrowReturnRequested, &due, day(16), true, 2},
		{"returned clears overdue regardless of date", model.BorrowReturned, &due, day(40), false, 0},
		{"cancelled never overdue", model.BorrowCancelled, &due, day(40), false, 0},
		{"pending has no due date", model.BorrowPending, nil, day(40), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isOverdue, days := overdue.Derive(tt.status, tt.dueDate, tt.now)
			assert.Equal(t, tt.overdue, isOverdue)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestDecorate(t *testing.T) {
	due := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	r := model.BorrowRequest{Status: model.BorrowCollected, DueDate: &due}

	overdue.Decorate(&r, due.Add(3*24*time.Hour))
	assert.True(t, r.IsOverdue)
	assert.Equal(t, 3, r.OverdueDays)

	r.Status = model.BorrowReturned
	overdue.Decorate(&r, due.Add(3*24*time.Hour))
	assert.False(t, r.IsOverdue)
	assert.Equal(t, 0, r.OverdueDays)
}
