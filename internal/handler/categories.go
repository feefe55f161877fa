package handler

import (
	"net/http"
	"strconv"

	"library-admin/internal/screen"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) CategoryList(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	ls := screen.NewList(screen.Categories, h.svc.ListCategories, h.svc.DeleteCategory, nt, nav)
	if err := ls.Load(ctx); err != nil {
		h.log.Warn("category list load", zap.Error(err))
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
	return c.Render(http.StatusOK, "categories_list", echo.Map{
		"Title":    "Categories",
		"Flash":    merge(popFlash(c), nt.flash),
		"Error":    ls.ErrMessage(),
		"Items":    ls.Items(),
		"Expanded": expanded,
	})
}

func (h *Handler) CategoryDelete(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	id, ok := nav.CurrentID()
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	ls := screen.NewList(screen.Categories, h.svc.ListCategories, h.svc.DeleteCategory, nt, nav)
	if err := ls.Delete(c.Request().Context(), id); err != nil {
		h.log.Warn("category delete", zap.Int64("id", id), zap.Error(err))
	}
	return nav.redirect(c, nt, screen.Categories.ListPath)
}

func (h *Handler) CategoryForm(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewCategoryForm(h.svc, nt, nav)
	if err := form.Load(c.Request().Context()); err != nil {
		h.log.Warn("category form load", zap.Error(err))
	}
	return h.renderCategoryForm(c, form, merge(popFlash(c), nt.flash))
}

func (h *Handler) CategorySubmit(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewCategoryForm(h.svc, nt, nav)
	for _, name := range []string{"name", "description"} {
		if err := form.SetField(name, c.FormValue(name)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if err := form.Submit(c.Request().Context()); err != nil {
		h.log.Warn("category submit", zap.Error(err))
	}
	if nav.target != "" {
		return nav.redirect(c, nt, screen.Categories.ListPath)
	}
	return h.renderCategoryForm(c, form, nt.flash)
}

func (h *Handler) renderCategoryForm(c echo.Context, form *screen.CategoryForm, flash Flash) error {
	title := "Add New Category"
	if form.Editing() {
		title = "Update Category"
	}
	return c.Render(http.StatusOK, "category_form", echo.Map{
		"Title":   title,
		"Flash":   flash,
		"Editing": form.Editing(),
		"Fields":  form.Fields(),
	})
}
