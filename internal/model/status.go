package model

type BorrowStatus string

const (
	BorrowPending         BorrowStatus = "pending"
	BorrowApproved        BorrowStatus = "approved"
	BorrowCollected       BorrowStatus = "collected"
	BorrowReturnRequested BorrowStatus = "return_requested"
	BorrowReturned        BorrowStatus = "returned"
	BorrowRejected        BorrowStatus = "rejected"
	BorrowCancelled       BorrowStatus = "cancelled"
)

// borrowTransitions is the closed transition table of the borrow lifecycle.
// Terminal statuses have no outgoing edges.
var borrowTransitions = map[BorrowStatus][]BorrowStatus{
	BorrowPending:         {BorrowApproved, BorrowRejected, BorrowCancelled},
	BorrowApproved:        {BorrowCollected, BorrowCancelled},
	BorrowCollected:       {BorrowReturnRequested, BorrowReturned},
	BorrowReturnRequested: {BorrowReturned},
	BorrowReturned:        nil,
	BorrowRejected:        nil,
	BorrowCancelled:       nil,
}

// ActiveBorrowStatuses are the non-terminal statuses; at most one request per
// (requester, title) may hold any of them at a time.
var ActiveBorrowStatuses = []BorrowStatus{
	BorrowPending, BorrowApproved, BorrowCollected, BorrowReturnRequested,
}

func (s BorrowStatus) CanTransitionTo(next BorrowStatus) bool {
	for _, allowed := range borrowTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BorrowStatus) IsTerminal() bool {
	next, ok := borrowTransitions[s]
	return ok && len(next) == 0
}

func (s BorrowStatus) IsActive() bool {
	return len(borrowTransitions[s]) > 0
}

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationApproved  DonationStatus = "approved"
	DonationCompleted DonationStatus = "completed"
	DonationRejected  DonationStatus = "rejected"
	DonationCancelled DonationStatus = "cancelled"
)

var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationPending:   {DonationApproved, DonationRejected, DonationCancelled},
	DonationApproved:  {DonationCompleted, DonationRejected, DonationCancelled},
	DonationCompleted: nil,
	DonationRejected:  nil,
	DonationCancelled: nil,
}

func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s DonationStatus) IsTerminal() bool {
	next, ok := donationTransitions[s]
	return ok && len(next) == 0
}
