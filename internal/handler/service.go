package handler

import (
	"context"

	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/internal/service/borrow"
	"github.com/campusbooks/bookshare-service/internal/service/catalog"
	"github.com/campusbooks/bookshare-service/internal/service/donation"
	"github.com/campusbooks/bookshare-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BorrowService interface {
	CreateBorrow(ctx context.Context, actor auth.Actor, bookID int) (model.BorrowRequest, error)
	GetBorrow(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error)
	ListBorrows(ctx context.Context, requester string, all bool) ([]model.BorrowRequest, error)
	Approve(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error)
	Reject(ctx context.Context, actor auth.Actor, uid, reason string) (model.BorrowRequest, error)
	Cancel(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error)
	Collect(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error)
	RequestReturn(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error)
	ConfirmReturn(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error)
}

type DonationService interface {
	CreateDonation(ctx context.Context, actor auth.Actor, req model.CreateDonationRequest) (model.DonationRequest, error)
	GetDonation(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error)
	ListDonations(ctx context.Context, donor string, all bool) ([]model.DonationRequest, error)
	Approve(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error)
	Reject(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error)
	Cancel(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error)
	Complete(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error)
}

type CatalogService interface {
	ListBookTitles(ctx context.Context, page, size int) (model.ListBookTitles, error)
	GetBookTitle(ctx context.Context, id int) (model.BookTitle, error)
	AddCopies(ctx context.Context, actor auth.Actor, titleID, count int) ([]model.BookCopy, error)
	MarkDamaged(ctx context.Context, actor auth.Actor, copyID int) (model.BookCopy, error)
}

var (
	_ BorrowService   = (*borrow.Service)(nil)
	_ DonationService = (*donation.Service)(nil)
	_ CatalogService  = (*catalog.Service)(nil)
)
