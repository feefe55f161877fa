package handler

import (
	"net/http"

	md "library-admin/pkg/middleware"
	"library-admin/pkg/validate"

	"library-admin/internal/screen"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	svc screen.CatalogService
	log *zap.Logger
}

func New(svc screen.CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		uiRPS   = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Renderer = newRenderer()
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	ui := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(uiRPS),
	)

	ui.GET("/", h.Dashboard)

	ui.GET("/authors", h.AuthorList)
	ui.POST("/authors/:id/delete", h.AuthorDelete)
	ui.GET("/authors/new", h.AuthorForm)
	ui.POST("/authors/new", h.AuthorSubmit)
	ui.GET("/authors/edit/:id", h.AuthorForm)
	ui.POST("/authors/edit/:id", h.AuthorSubmit)

	ui.GET("/publishers", h.PublisherList)
	ui.POST("/publishers/:id/delete", h.PublisherDelete)
	ui.GET("/publishers/new", h.PublisherForm)
	ui.POST("/publishers/new", h.PublisherSubmit)
	ui.GET("/publishers/edit/:id", h.PublisherForm)
	ui.POST("/publishers/edit/:id", h.PublisherSubmit)

	ui.GET("/categories", h.CategoryList)
	ui.POST("/categories/:id/delete", h.CategoryDelete)
	ui.GET("/categories/new", h.CategoryForm)
	ui.POST("/categories/new", h.CategorySubmit)
	ui.GET("/categories/edit/:id", h.CategoryForm)
	ui.POST("/categories/edit/:id", h.CategorySubmit)

	ui.GET("/books", h.BookList)
	ui.POST("/books/:id/delete", h.BookDelete)
	ui.GET("/books/new", h.BookForm)
	ui.POST("/books/new", h.BookSubmit)
	ui.GET("/books/edit/:id", h.BookForm)
	ui.POST("/books/edit/:id", h.BookSubmit)

	ui.GET("/borrowings", h.BorrowingList)
	ui.POST("/borrowings/:id/delete", h.BorrowingDelete)
	ui.GET("/borrowings/new", h.BorrowingForm)
	ui.POST("/borrowings/new", h.BorrowingSubmit)
	ui.GET("/borrowings/edit/:id", h.BorrowingForm)
	ui.POST("/borrowings/edit/:id", h.BorrowingSubmit)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Dashboard(c echo.Context) error {
	dash := screen.NewDashboard(h.svc)
	if err := dash.Load(c.Request().Context()); err != nil {
		// counts render as zero on any fetch failure, the page itself still loads
		h.log.Error("dashboard load", zap.Error(err))
	}
	return c.Render(http.StatusOK, "dashboard", echo.Map{
		"Title":  "Home",
		"Flash":  popFlash(c),
		"Counts": dash.Counts(),
	})
}
