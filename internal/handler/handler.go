package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/internal/errs"
	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/pkg/auth"
	"github.com/campusbooks/bookshare-service/pkg/kafka"
	md "github.com/campusbooks/bookshare-service/pkg/middleware"
	"github.com/campusbooks/bookshare-service/pkg/validate"
	_ "github.com/campusbooks/bookshare-service/swagger"
)

type Handler struct {
	borrowSvc   BorrowService
	donationSvc DonationService
	catalogSvc  CatalogService
	enqueuer    Enqueuer
	log         *zap.Logger
}

func New(borrowSvc BorrowService, donationSvc DonationService, catalogSvc CatalogService, enqueuer Enqueuer, log *zap.Logger) *Handler {
	h := &Handler{
		borrowSvc:   borrowSvc,
		donationSvc: donationSvc,
		catalogSvc:  catalogSvc,
		enqueuer:    enqueuer,
		log:         log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.HTTPErrorHandler = errorHandler

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.POST("/books/:bookId/copies", h.AddCopies)
	api.POST("/copies/:copyId/damaged", h.MarkDamaged)

	api.POST("/borrows", h.CreateBorrow)
	api.GET("/borrows", h.GetBorrows)
	api.GET("/borrows/:borrowUid", h.GetBorrow)
	api.POST("/borrows/:borrowUid/cancel", h.CancelBorrow)
	api.POST("/borrows/:borrowUid/approve", h.ApproveBorrow)
	api.POST("/borrows/:borrowUid/reject", h.RejectBorrow)
	api.POST("/borrows/:borrowUid/collect", h.CollectBorrow)
	api.POST("/borrows/:borrowUid/return-request", h.RequestReturn)
	api.POST("/borrows/:borrowUid/return", h.ConfirmReturn)

	api.POST("/donations", h.CreateDonation)
	api.GET("/donations", h.GetDonations)
	api.GET("/donations/:donationUid", h.GetDonation)
	api.POST("/donations/:donationUid/cancel", h.CancelDonation)
	api.POST("/donations/:donationUid/approve", h.ApproveDonation)
	api.POST("/donations/:donationUid/reject", h.RejectDonation)
	api.POST("/donations/:donationUid/complete", h.CompleteDonation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// errorHandler shapes every error as the {"detail": ...} body the frontend
// renders in toasts.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	detail := "internal error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		detail = fmt.Sprintf("%v", he.Message)
	}
	if jsonErr := c.JSON(code, map[string]string{"detail": detail}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}

// httpError translates the core's error kinds into stable HTTP codes.
// Business rejections map to 4xx; anything unknown stays a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrDuplicateActiveRequest):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrNoCopiesAvailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func actor(c echo.Context) (auth.Actor, error) {
	a, err := auth.ActorFromContext(c.Request().Context())
	if err != nil {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return a, nil
}

// CreateBorrow godoc
// @Summary file a borrow request for a book title
// @Tags borrows
// @Param request body model.CreateBorrowRequest true "book to borrow"
// @Success 200 {object} model.BorrowRequest
// @Failure 409 {object} map[string]string "active request already exists"
// @Router /api/v1/borrows [post]
func (h *Handler) CreateBorrow(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Requester = a.Name
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.borrowSvc.CreateBorrow(c.Request().Context(), a, req.BookID)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent("borrow", res.BorrowUid, res.BookTitleID, a, string(res.Status))
	return c.JSON(http.StatusOK, res)
}

// GetBorrows godoc
// @Summary list borrow requests with derived overdue fields
// @Tags borrows
// @Param all query bool false "include closed requests"
// @Success 200 {array} model.BorrowRequest
// @Router /api/v1/borrows [get]
func (h *Handler) GetBorrows(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	all := false
	if allParam := c.QueryParam("all"); allParam != "" {
		if all, err = strconv.ParseBool(allParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("all is invalid"))
		}
	}
	requester := a.Name
	if a.IsLibrarian() {
		// librarians may inspect any user's requests, or all of them
		requester = c.QueryParam("requester")
	}
	items, err := h.borrowSvc.ListBorrows(c.Request().Context(), requester, all)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetBorrow(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	uid := c.Param("borrowUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowUid is empty")
	}
	res, err := h.borrowSvc.GetBorrow(c.Request().Context(), a, uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CancelBorrow(c echo.Context) error {
	return h.borrowTransition(c, h.borrowSvc.Cancel)
}

func (h *Handler) ApproveBorrow(c echo.Context) error {
	return h.borrowTransition(c, h.borrowSvc.Approve)
}

// RejectBorrow carries an optional reason in the body.
func (h *Handler) RejectBorrow(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	uid := c.Param("borrowUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowUid is empty")
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.borrowSvc.Reject(c.Request().Context(), a, uid, req.Reason)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent("borrow", res.BorrowUid, res.BookTitleID, a, string(res.Status))
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CollectBorrow(c echo.Context) error {
	return h.borrowTransition(c, h.borrowSvc.Collect)
}

func (h *Handler) RequestReturn(c echo.Context) error {
	return h.borrowTransition(c, h.borrowSvc.RequestReturn)
}

func (h *Handler) ConfirmReturn(c echo.Context) error {
	return h.borrowTransition(c, h.borrowSvc.ConfirmReturn)
}

type borrowTransitionFunc func(ctx context.Context, actor auth.Actor, uid string) (model.BorrowRequest, error)

func (h *Handler) borrowTransition(c echo.Context, fn borrowTransitionFunc) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	uid := c.Param("borrowUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowUid is empty")
	}
	res, err := fn(c.Request().Context(), a, uid)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent("borrow", res.BorrowUid, res.BookTitleID, a, string(res.Status))
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) publishEvent(kind, uid string, bookTitleID int, a auth.Actor, status string) {
	event := kafka.Event{
		Kind:        kind,
		RequestUid:  uid,
		BookTitleID: bookTitleID,
		Actor:       a.Name,
		Status:      status,
		OccurredAt:  time.Now().UTC(),
	}
	if err := h.enqueuer.Enqueue(kafka.BorrowEventsTopic, event); err != nil {
		h.log.Warn("enqueue lifecycle event",
			zap.String("request_uid", uid),
			zap.Error(err))
	}
}
