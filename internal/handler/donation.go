package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusbooks/bookshare-service/internal/model"
	"github.com/campusbooks/bookshare-service/pkg/auth"
)

// CreateDonation godoc
// @Summary offer a book to the catalog
// @Tags donations
// @Param request body model.CreateDonationRequest true "donated book details"
// @Success 200 {object} model.DonationRequest
// @Router /api/v1/donations [post]
func (h *Handler) CreateDonation(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	var req model.CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Donor = a.Name
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.donationSvc.CreateDonation(c.Request().Context(), a, req)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent("donation", res.DonationUid, 0, a, string(res.Status))
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) GetDonations(c echo.Context) error {
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
	donor := a.Name
	if a.IsLibrarian() {
		donor = c.QueryParam("donor")
	}
	items, err := h.donationSvc.ListDonations(c.Request().Context(), donor, all)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetDonation(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	uid := c.Param("donationUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "donationUid is empty")
	}
	res, err := h.donationSvc.GetDonation(c.Request().Context(), a, uid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CancelDonation(c echo.Context) error {
	return h.donationTransition(c, h.donationSvc.Cancel)
}

func (h *Handler) ApproveDonation(c echo.Context) error {
	return h.donationTransition(c, h.donationSvc.Approve)
}

func (h *Handler) RejectDonation(c echo.Context) error {
	return h.donationTransition(c, h.donationSvc.Reject)
}

// CompleteDonation materializes the catalog entry together with the status
// change; the repository guarantees both or neither.
func (h *Handler) CompleteDonation(c echo.Context) error {
	return h.donationTransition(c, h.donationSvc.Complete)
}

type donationTransitionFunc func(ctx context.Context, actor auth.Actor, uid string) (model.DonationRequest, error)

func (h *Handler) donationTransition(c echo.Context, fn donationTransitionFunc) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	uid := c.Param("donationUid")
	if uid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "donationUid is empty")
	}
	res, err := fn(c.Request().Context(), a, uid)
	if err != nil {
		return httpError(err)
	}
	h.publishEvent("donation", res.DonationUid, 0, a, string(res.Status))
	return c.JSON(http.StatusOK, res)
}
