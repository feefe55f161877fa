package handler

import (
	"net/http"
	"strconv"

	"library-admin/internal/screen"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) AuthorList(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	ls := screen.NewList(screen.Authors, h.svc.ListAuthors, h.svc.DeleteAuthor, nt, nav)
	if err := ls.Load(ctx); err != nil {
		h.log.Warn("author list load", zap.Error(err))
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
	return c.Render(http.StatusOK, "authors_list", echo.Map{
		"Title":    "Authors",
		"Flash":    merge(popFlash(c), nt.flash),
		"Error":    ls.ErrMessage(),
		"Items":    ls.Items(),
		"Expanded": expanded,
	})
}

func (h *Handler) AuthorDelete(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	id, ok := nav.CurrentID()
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	ls := screen.NewList(screen.Authors, h.svc.ListAuthors, h.svc.DeleteAuthor, nt, nav)
	if err := ls.Delete(c.Request().Context(), id); err != nil {
		h.log.Warn("author delete", zap.Int64("id", id), zap.Error(err))
	}
	return nav.redirect(c, nt, screen.Authors.ListPath)
}

func (h *Handler) AuthorForm(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewAuthorForm(h.svc, nt, nav)
	if err := form.Load(c.Request().Context()); err != nil {
		h.log.Warn("author form load", zap.Error(err))
	}
	return h.renderAuthorForm(c, form, merge(popFlash(c), nt.flash))
}

func (h *Handler) AuthorSubmit(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewAuthorForm(h.svc, nt, nav)
	for _, name := range []string{"name", "birthDate", "country"} {
		if err := form.SetField(name, c.FormValue(name)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if err := form.Submit(c.Request().Context()); err != nil {
		h.log.Warn("author submit", zap.Error(err))
	}
	if nav.target != "" {
		return nav.redirect(c, nt, screen.Authors.ListPath)
	}
	// submission failed: re-render with the entered values preserved
	return h.renderAuthorForm(c, form, nt.flash)
}

func (h *Handler) renderAuthorForm(c echo.Context, form *screen.AuthorForm, flash Flash) error {
	title := "Add New Author"
	if form.Editing() {
		title = "Update Author"
	}
	return c.Render(http.StatusOK, "author_form", echo.Map{
		"Title":   title,
		"Flash":   flash,
		"Editing": form.Editing(),
		"Fields":  form.Fields(),
	})
}
