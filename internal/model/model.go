package model

import (
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"page_size"`
	TotalElements int `json:"total_elements"`
}

// BookTitle is an immutable catalog entry. AvailableCopies is derived from
// book_copy rows, never stored on the title itself.
type BookTitle struct {
	ID              int    `json:"id" db:"id"`
	Name            string `json:"name" db:"name"`
	Author          string `json:"author" db:"author"`
	Category        string `json:"category" db:"category"`
	PublishedYear   int    `json:"published_year" db:"published_year"`
	Pages           int    `json:"pages" db:"pages"`
	CoverURL        string `json:"cover_url" db:"cover_url"`
	AvailableCopies int    `json:"available_copies" db:"available_copies"`
}

type ListBookTitles struct {
	Paging `json:",inline"`
	Items  []BookTitle `json:"items"`
}

type CopyStatus string

const (
	CopyAvailable CopyStatus = "available"
	CopyReserved  CopyStatus = "reserved"
	CopyBorrowed  CopyStatus = "borrowed"
	CopyDamaged   CopyStatus = "damaged"
)

// BookCopy is one loanable physical unit of a BookTitle.
type BookCopy struct {
	ID          int        `json:"id" db:"id"`
	BookTitleID int        `json:"book_title_id" db:"book_title_id"`
	Status      CopyStatus `json:"status" db:"status"`
}

type BorrowRequest struct {
	ID                int          `json:"-" db:"id"`
	BorrowUid         string       `json:"borrow_uid" db:"borrow_uid"`
	BookTitleID       int          `json:"book_id" db:"book_title_id"`
	Requester         string       `json:"requester" db:"requester"`
	CopyID            *int         `json:"copy_id,omitempty" db:"copy_id"`
	Status            BorrowStatus `json:"status" db:"status"`
	RejectReason      string       `json:"reject_reason,omitempty" db:"reject_reason"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
	ReviewedAt        *time.Time   `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CollectedAt       *time.Time   `json:"collected_at,omitempty" db:"collected_at"`
	ReturnRequestedAt *time.Time   `json:"return_requested_at,omitempty" db:"return_requested_at"`
	ReturnedAt        *time.Time   `json:"returned_at,omitempty" db:"returned_at"`
	DueDate           *time.Time   `json:"due_date,omitempty" db:"due_date"`

	// derived on read, never stored
	IsOverdue   bool `json:"is_overdue" db:"-"`
	OverdueDays int  `json:"overdue_days" db:"-"`
}

type DonationRequest struct {
	ID            int            `json:"-" db:"id"`
	DonationUid   string         `json:"donation_uid" db:"donation_uid"`
	Donor         string         `json:"donor" db:"donor"`
	Name          string         `json:"name" db:"name"`
	Author        string         `json:"author" db:"author"`
	PublishedYear int            `json:"published_year" db:"published_year"`
	Pages         int            `json:"pages" db:"pages"`
	Status        DonationStatus `json:"status" db:"status"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	ReviewedAt    *time.Time     `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
}

type CreateBorrowRequest struct {
	BookID    int    `json:"book_id" validate:"required"`
	Requester string `json:"-" validate:"required"`
}

type CreateDonationRequest struct {
	Name          string `json:"name" validate:"required"`
	Author        string `json:"author" validate:"required"`
	PublishedYear int    `json:"published_year"`
	Pages         int    `json:"pages"`
	Donor         string `json:"-" validate:"required"`
}

type AddCopiesRequest struct {
	Count int `json:"count" validate:"required,min=1,max=100"`
}
