package handler

import (
	"net/http"
	"strconv"

	"library-admin/internal/screen"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) BookList(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	ls := screen.NewList(screen.Books, h.svc.ListBooks, h.svc.DeleteBook, nt, nav)
	if err := ls.Load(ctx); err != nil {
		h.log.Warn("book list load", zap.Error(err))
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
	return c.Render(http.StatusOK, "books_list", echo.Map{
		"Title":    "Books",
		"Flash":    merge(popFlash(c), nt.flash),
		"Error":    ls.ErrMessage(),
		"Items":    ls.Items(),
		"Expanded": expanded,
	})
}

func (h *Handler) BookDelete(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	id, ok := nav.CurrentID()
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	ls := screen.NewList(screen.Books, h.svc.ListBooks, h.svc.DeleteBook, nt, nav)
	if err := ls.Delete(c.Request().Context(), id); err != nil {
		h.log.Warn("book delete", zap.Int64("id", id), zap.Error(err))
	}
	return nav.redirect(c, nt, screen.Books.ListPath)
}

func (h *Handler) BookForm(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewBookForm(h.svc, nt, nav)
	if err := form.LoadOptions(ctx); err != nil {
		h.log.Warn("book form options", zap.Error(err))
	}
	if err := form.Load(ctx); err != nil {
		h.log.Warn("book form load", zap.Error(err))
	}
	return h.renderBookForm(c, form, merge(popFlash(c), nt.flash))
}

func (h *Handler) BookSubmit(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewBookForm(h.svc, nt, nav)
	for _, name := range []string{"name", "publicationYear", "stock", "authorId", "publisherId"} {
		if err := form.SetField(name, c.FormValue(name)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ids := make([]int64, 0, len(params["categoryIds"]))
	for _, raw := range params["categoryIds"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "categoryIds is invalid")
		}
		ids = append(ids, id)
	}
	form.SetCategoryIDs(ids)

	if err := form.Submit(ctx); err != nil {
		h.log.Warn("book submit", zap.Error(err))
	}
	if nav.target != "" {
		return nav.redirect(c, nt, screen.Books.ListPath)
	}
	// failed: reload the dropdowns so the form renders with options again
	if err := form.LoadOptions(ctx); err != nil {
		h.log.Warn("book form options", zap.Error(err))
	}
	return h.renderBookForm(c, form, nt.flash)
}

func (h *Handler) renderBookForm(c echo.Context, form *screen.BookForm, flash Flash) error {
	title := "Add New Book"
	if form.Editing() {
		title = "Update Book"
	}
	return c.Render(http.StatusOK, "book_form", echo.Map{
		"Title":      title,
		"Flash":      flash,
		"Editing":    form.Editing(),
		"Fields":     form.Fields(),
		"Authors":    form.Authors(),
		"Categories": form.Categories(),
		"Publishers": form.Publishers(),
	})
}
