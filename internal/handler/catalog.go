package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusbooks/bookshare-service/internal/model"
)

// GetBooks godoc
// @Summary list catalog titles with live available_copies counts
// @Tags books
// @Param page query int false "page"
// @Param size query int false "page size"
// @Success 200 {object} model.ListBookTitles
// @Router /api/v1/books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	books, err := h.catalogSvc.ListBookTitles(c.Request().Context(), page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookId is invalid"))
	}
	book, err := h.catalogSvc.GetBookTitle(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) AddCopies(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("bookId is invalid"))
	}
	var req model.AddCopiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	copies, err := h.catalogSvc.AddCopies(c.Request().Context(), a, id, req.Count)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, copies)
}

func (h *Handler) MarkDamaged(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(c.Param("copyId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("copyId is invalid"))
	}
	cp, err := h.catalogSvc.MarkDamaged(c.Request().Context(), a, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cp)
}
