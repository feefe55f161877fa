package handler

import (
	"net/http"
	"strconv"

	"library-admin/internal/screen"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) PublisherList(c echo.Context) error {
	ctx := c.Request().Context()
	nt := &notifier{}
	nav := newNavigator(c)
	ls := screen.NewList(screen.Publishers, h.svc.ListPublishers, h.svc.DeletePublisher, nt, nav)
	if err := ls.Load(ctx); err != nil {
		h.log.Warn("publisher list load", zap.Error(err))
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
	return c.Render(http.StatusOK, "publishers_list", echo.Map{
		"Title":    "Publishers",
		"Flash":    merge(popFlash(c), nt.flash),
		"Error":    ls.ErrMessage(),
		"Items":    ls.Items(),
		"Expanded": expanded,
	})
}

func (h *Handler) PublisherDelete(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	id, ok := nav.CurrentID()
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	ls := screen.NewList(screen.Publishers, h.svc.ListPublishers, h.svc.DeletePublisher, nt, nav)
	if err := ls.Delete(c.Request().Context(), id); err != nil {
		h.log.Warn("publisher delete", zap.Int64("id", id), zap.Error(err))
	}
	return nav.redirect(c, nt, screen.Publishers.ListPath)
}

func (h *Handler) PublisherForm(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewPublisherForm(h.svc, nt, nav)
	if err := form.Load(c.Request().Context()); err != nil {
		h.log.Warn("publisher form load", zap.Error(err))
	}
	return h.renderPublisherForm(c, form, merge(popFlash(c), nt.flash))
}

func (h *Handler) PublisherSubmit(c echo.Context) error {
	nt := &notifier{}
	nav := newNavigator(c)
	form := screen.NewPublisherForm(h.svc, nt, nav)
	for _, name := range []string{"name", "establishmentYear", "address"} {
		if err := form.SetField(name, c.FormValue(name)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if err := form.Submit(c.Request().Context()); err != nil {
		h.log.Warn("publisher submit", zap.Error(err))
	}
	if nav.target != "" {
		return nav.redirect(c, nt, screen.Publishers.ListPath)
	}
	return h.renderPublisherForm(c, form, nt.flash)
}

func (h *Handler) renderPublisherForm(c echo.Context, form *screen.PublisherForm, flash Flash) error {
	title := "Add New Publisher"
	if form.Editing() {
		title = "Update Publisher"
	}
	return c.Render(http.StatusOK, "publisher_form", echo.Map{
		"Title":   title,
		"Flash":   flash,
		"Editing": form.Editing(),
		"Fields":  form.Fields(),
	})
}
