package handler_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"library-admin/internal/handler"
	"library-admin/internal/model"
	"library-admin/internal/screen"
	mock_screen "library-admin/internal/screen/mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (*echo.Echo, *mock_screen.MockCatalogService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := mock_screen.NewMockCatalogService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))
	return h.NewRouter(), svc
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_AuthorList(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *mock_screen.MockCatalogService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		wantBody     []string
		notWantBody  []string
	}{
		{
			name:   "rows rendered in server order",
			target: "/authors",
			mockBehavior: func(r *mock_screen.MockCatalogService) {
				r.EXPECT().ListAuthors(gomock.Any()).Return([]model.Author{
					{ID: 2, Name: "Italo Calvino", BirthDate: "1923-10-15", Country: "Italy"},
					{ID: 1, Name: "Stanislaw Lem", BirthDate: "1921-09-12", Country: "Poland"},
				}, nil)
			},
			wantBody:    []string{"Italo Calvino", "Stanislaw Lem"},
			notWantBody: []string{"Author Details"},
		},
		{
			name:   "expanded row shows the details block",
			target: "/authors?view=2",
			mockBehavior: func(r *mock_screen.MockCatalogService) {
				r.EXPECT().ListAuthors(gomock.Any()).Return([]model.Author{
					{ID: 2, Name: "Italo Calvino", BirthDate: "1923-10-15", Country: "Italy"},
				}, nil)
			},
			wantBody: []string{"Author Details", "1923-10-15", "Hide"},
		},
		{
			name:   "expanded id missing from the collection renders collapsed",
			target: "/authors?view=99",
			mockBehavior: func(r *mock_screen.MockCatalogService) {
				r.EXPECT().ListAuthors(gomock.Any()).Return([]model.Author{
					{ID: 2, Name: "Italo Calvino", BirthDate: "1923-10-15", Country: "Italy"},
				}, nil)
			},
			notWantBody: []string{"Author Details"},
		},
		{
			name:   "fetch failure renders the inline error",
			target: "/authors",
			mockBehavior: func(r *mock_screen.MockCatalogService) {
				r.EXPECT().ListAuthors(gomock.Any()).Return(nil, errors.New("down"))
			},
			wantBody: []string{"Error fetching authors"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusOK, w.Code)
			for _, s := range tt.wantBody {
				require.Contains(t, w.Body.String(), s)
			}
			for _, s := range tt.notWantBody {
				require.NotContains(t, w.Body.String(), s)
			}
		})
	}
}

func TestHandler_AuthorCreate(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().
		CreateAuthor(gomock.Any(), model.AuthorPayload{
			Name:      "Stanislaw Lem",
			BirthDate: "1921-09-12",
			Country:   "Poland",
		}).
		Return(model.Author{ID: 1}, nil)

	w := postForm(e, "/authors/new", url.Values{
		"name":      {"Stanislaw Lem"},
		"birthDate": {"1921-09-12"},
		"country":   {"Poland"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/authors", w.Header().Get(echo.HeaderLocation))
	// the success notification travels to the next page via the flash cookie
	require.Contains(t, w.Header().Get("Set-Cookie"), "flash=")
}

func TestHandler_AuthorCreateInvalid(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	// no expectations: nothing may reach the remote API

	w := postForm(e, "/authors/new", url.Values{
		"name":      {"Stanislaw Lem"},
		"birthDate": {"1921-09-12"},
		"country":   {""},
	})

	// failed submission re-renders the form with the entered values preserved
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Stanislaw Lem")
	require.Contains(t, w.Body.String(), "Error saving author data.")
}

func TestHandler_AuthorDelete(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().DeleteAuthor(gomock.Any(), int64(7)).Return(nil)
	svc.EXPECT().ListAuthors(gomock.Any()).Return(nil, nil)

	w := postForm(e, "/authors/7/delete", url.Values{})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/authors", w.Header().Get(echo.HeaderLocation))
}

func TestHandler_AuthorEditForm(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().
		GetAuthor(gomock.Any(), int64(5)).
		Return(model.Author{ID: 5, Name: "Italo Calvino", BirthDate: "1923-10-15", Country: "Italy"}, nil)

	r := httptest.NewRequest(http.MethodGet, "/authors/edit/5", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Update Author")
	require.Contains(t, w.Body.String(), `value="Italo Calvino"`)
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().ListAuthors(gomock.Any()).Return(make([]model.Author, 3), nil)
	svc.EXPECT().ListBooks(gomock.Any()).Return(make([]model.Book, 5), nil)
	svc.EXPECT().ListPublishers(gomock.Any()).Return(make([]model.Publisher, 2), nil)
	svc.EXPECT().ListCategories(gomock.Any()).Return(make([]model.Category, 4), nil)
	svc.EXPECT().ListBorrowings(gomock.Any()).Return(make([]model.Borrowing, 1), nil)

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Welcome to the Library Management System")
	require.Contains(t, w.Body.String(), "Books: 5")
}

func TestHandler_BorrowingCreateZeroStock(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().
		ListBooks(gomock.Any()).
		Return([]model.Book{{ID: 1, Name: "Solaris", Stock: 0}}, nil)
	// no CreateBorrowing expectation: the stock guard blocks the request

	w := postForm(e, "/borrowings/new", url.Values{
		"borrowerName":            {"Kelvin"},
		"borrowerMail":            {"kelvin@prometheus.org"},
		"borrowingDate":           {"2026-08-30"},
		"bookForBorrowingRequest": {"1"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Stock is empty! Cannot borrow this book.")
	require.Contains(t, w.Body.String(), `value="Kelvin"`)
}

func TestHandler_BorrowingCreate(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().
		ListBooks(gomock.Any()).
		Return([]model.Book{{ID: 2, Name: "The Dispossessed", Stock: 4}}, nil)
	svc.EXPECT().
		CreateBorrowing(gomock.Any(), model.CreateBorrowingPayload{
			BorrowerName:  "Kelvin",
			BorrowerMail:  "kelvin@prometheus.org",
			BorrowingDate: "2026-08-30",
			Book:          model.Ref{ID: 2},
		}).
		Return(model.Borrowing{ID: 11}, nil)

	w := postForm(e, "/borrowings/new", url.Values{
		"borrowerName":            {"Kelvin"},
		"borrowerMail":            {"kelvin@prometheus.org"},
		"borrowingDate":           {"2026-08-30"},
		"bookForBorrowingRequest": {"2"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, screen.Borrowings.ListPath, w.Header().Get(echo.HeaderLocation))
}

func TestHandler_BookCreate(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().
		CreateBook(gomock.Any(), model.BookPayload{
			Name:            "Solaris",
			PublicationYear: 1961,
			Stock:           3,
			Author:          model.Ref{ID: 1},
			Publisher:       model.Ref{ID: 4},
			Categories:      []model.Ref{{ID: 2}, {ID: 3}},
		}).
		Return(model.Book{ID: 9}, nil)

	w := postForm(e, "/books/new", url.Values{
		"name":            {"Solaris"},
		"publicationYear": {"1961"},
		"stock":           {"3"},
		"authorId":        {"1"},
		"publisherId":     {"4"},
		"categoryIds":     {"2", "3"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/books", w.Header().Get(echo.HeaderLocation))
}

func TestHandler_FlashShownOnce(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().ListAuthors(gomock.Any()).Return(nil, nil).Times(2)

	r := httptest.NewRequest(http.MethodGet, "/authors", http.NoBody)
	r.AddCookie(&http.Cookie{
		Name:  "flash",
		Value: flashCookieValue(t, "Author added successfully!"),
	})
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Author added successfully!")
	// the cookie is cleared so the next page renders without the message
	require.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")

	r = httptest.NewRequest(http.MethodGet, "/authors", http.NoBody)
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.NotContains(t, w.Body.String(), "Author added successfully!")
}

func flashCookieValue(t *testing.T, success string) string {
	t.Helper()
	// mirrors the wire shape written on redirect
	return base64.RawURLEncoding.EncodeToString([]byte(`{"success":["` + success + `"]}`))
}
