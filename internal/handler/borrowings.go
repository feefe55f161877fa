package handler

import (
	"net/http"
	"strconv"

	"library-admin/internal/screen"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) BorrowingList(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	ls := screen.NewList(screen.Borrowings, h.svc.ListBorrowings, h.svc.DeleteBorrowing, nt, nav)
	if err := ls.Load(ctx); err != nil {
		h.log.Warn("borrowing list load", zap.Error(err))
	}
	var expanded int64
	if v := c.QueryParam("view"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			ls.Toggle(id)
			if _, ok := ls.Expanded(); ok {
				expanded = id
			}
		}
	}
	return c.Render(http.StatusOK, "borrowings_list", echo.Map{
		"Title":    "Borrowings",
		"Flash":    merge(popFlash(c), nt.flash),
		"Error":    ls.ErrMessage(),
		"Items":    ls.Items(),
		"Expanded": expanded,
	})
}

func (h *Handler) BorrowingDelete(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	id, ok := nav.CurrentID()
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	ls := screen.NewList(screen.Borrowings, h.svc.ListBorrowings, h.svc.DeleteBorrowing, nt, nav)
	if err := ls.Delete(c.Request().Context(), id); err != nil {
		h.log.Warn("borrowing delete", zap.Int64("id", id), zap.Error(err))
	}
	return nav.redirect(c, nt, screen.Borrowings.ListPath)
}

func (h *Handler) BorrowingForm(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewBorrowingForm(h.svc, nt, nav)
	if err := form.Load(c.Request().Context()); err != nil {
		h.log.Warn("borrowing form load", zap.Error(err))
	}
	return h.renderBorrowingForm(c, form, merge(popFlash(c), nt.flash))
}

func (h *Handler) BorrowingSubmit(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewBorrowingForm(h.svc, nt, nav)
	// the zero-stock guard reads the book list fetched at mount
	if !form.Editing() {
		if err := form.Load(ctx); err != nil {
			h.log.Warn("borrowing form load", zap.Error(err))
		}
	}
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	for _, name := range []string{"borrowerName", "borrowerMail", "borrowingDate", "returnDate", "bookForBorrowingRequest"} {
		if _, ok := params[name]; !ok {
			continue
		}
		if err := form.SetField(name, params.Get(name)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if err := form.Submit(ctx); err != nil {
		h.log.Warn("borrowing submit", zap.Error(err))
	}
	if nav.target != "" {
		return nav.redirect(c, nt, screen.Borrowings.ListPath)
	}
	return h.renderBorrowingForm(c, form, nt.flash)
}

func (h *Handler) renderBorrowingForm(c echo.Context, form *screen.BorrowingForm, flash Flash) error {
	title := "Add New Borrowing"
	if form.Editing() {
		title = "Update Borrowing"
	}
	return c.Render(http.StatusOK, "borrowing_form", echo.Map{
		"Title":   title,
		"Flash":   flash,
		"Editing": form.Editing(),
		"Fields":  form.Fields(),
		"Books":   form.Books(),
	})
}
