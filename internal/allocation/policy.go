package allocation

import (
	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
)

// Policy picks which available copy satisfies a reservation. Implementations
// must be pure: no side effects, same input gives same output.
type Policy interface {
	Choose(candidates []model.BookCopy) (model.BookCopy, error)
}

// LowestCopyID hands out the available copy with the smallest id. Deterministic,
// so reservation outcomes are reproducible.
type LowestCopyID struct{}

func NewLowestCopyID() LowestCopyID {
	return LowestCopyID{}
}

func (LowestCopyID) Choose(candidates []model.BookCopy) (model.BookCopy, error) {
	if len(candidates) == 0 {
		return model.BookCopy{}, errs.ErrNoCopiesAvailable
	}
	chosen := candidates[0]
	for _, c := range candidates[1:] {
		if c.ID < chosen.ID {
			chosen = c
		}
	}
	return chosen, nil
}
