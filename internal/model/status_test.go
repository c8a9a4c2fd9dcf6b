package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBorrowStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BorrowStatus
		to   BorrowStatus
		want bool
	}{
		{"pending to approved", BorrowPending, BorrowApproved, true},
		{"pending to rejected", BorrowPending, BorrowRejected, true},
		{"pending to cancelled", BorrowPending, BorrowCancelled, true},
		{"pending to collected skips approval", BorrowPending, BorrowCollected, false},
		{"approved to collected", BorrowApproved, BorrowCollected, true},
		{"approved to cancelled", BorrowApproved, BorrowCancelled, true},
		{"approved to rejected", BorrowApproved, BorrowRejected, false},
		{"collected to return_requested", BorrowCollected, BorrowReturnRequested, true},
		{"collected to returned", BorrowCollected, BorrowReturned, true},
		{"collected to cancelled", BorrowCollected, BorrowCancelled, false},
		{"return_requested to returned", BorrowReturnRequested, BorrowReturned, true},
		{"returned is terminal", BorrowReturned, BorrowPending, false},
		{"rejected is terminal", BorrowRejected, BorrowApproved, false},
		{"cancelled is terminal", BorrowCancelled, BorrowApproved, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBorrowStatus_Terminal(t *testing.T) {
	for _, s := range []BorrowStatus{BorrowReturned, BorrowRejected, BorrowCancelled} {
		assert.True(t, s.IsTerminal(), s)
		assert.False(t, s.IsActive(), s)
	}
	for _, s := range ActiveBorrowStatuses {
		assert.False(t, s.IsTerminal(), s)
		assert.True(t, s.IsActive(), s)
	}
}

func TestDonationStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, DonationPending.CanTransitionTo(DonationApproved))
	assert.True(t, DonationApproved.CanTransitionTo(DonationCompleted))
	assert.True(t, DonationApproved.CanTransitionTo(DonationCancelled))
	assert.False(t, DonationPending.CanTransitionTo(DonationCompleted))
	assert.False(t, DonationCompleted.CanTransitionTo(DonationApproved))
	assert.True(t, DonationCompleted.IsTerminal())
	assert.False(t, DonationApproved.IsTerminal())
}
