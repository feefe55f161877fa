package catalog_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"library-admin/config"
	"library-admin/internal/errs"
	"library-admin/internal/model"
	"library-admin/internal/service/catalog"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, h http.HandlerFunc) *catalog.Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return catalog.NewService(zap.NewExample().Named("test"), config.CatalogAPI{
		BaseURL: srv.URL,
		Timeout: time.Second,
	})
}

func TestService_ListAuthors(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/authors", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Stanislaw Lem","birthDate":"1921-09-12","country":"Poland"}]`))
	})

	authors, err := svc.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Author{
		{ID: 1, Name: "Stanislaw Lem", BirthDate: "1921-09-12", Country: "Poland"},
	}, authors)
}

func TestService_CreateBook(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/books", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"name":"Solaris","publicationYear":1961,"stock":3,
			"author":{"id":1},"publisher":{"id":4},
			"categories":[{"id":2},{"id":3}]
		}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9,"name":"Solaris","publicationYear":1961,"stock":3}`))
	})

	book, err := svc.CreateBook(context.Background(), model.BookPayload{
		Name:            "Solaris",
		PublicationYear: 1961,
		Stock:           3,
		Author:          model.Ref{ID: 1},
		Publisher:       model.Ref{ID: 4},
		Categories:      []model.Ref{{ID: 2}, {ID: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(9), book.ID)
}

func TestService_CreateBorrowing(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/borrows", r.URL.Path)
		var payload map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		// the book relation travels under its request-specific key
		require.JSONEq(t, `{"id":2}`, string(payload["bookForBorrowingRequest"]))
		require.Equal(t, "null", string(payload["returnDate"]))
		_, _ = w.Write([]byte(`{"id":11,"borrowerName":"Kelvin","borrowingDate":"2026-08-30","returnDate":null}`))
	})

	borrowing, err := svc.CreateBorrowing(context.Background(), model.CreateBorrowingPayload{
		BorrowerName:  "Kelvin",
		BorrowerMail:  "kelvin@prometheus.org",
		BorrowingDate: "2026-08-30",
		Book:          model.Ref{ID: 2},
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), borrowing.ID)
	require.Nil(t, borrowing.ReturnDate)
}

func TestService_UpdatePublisher(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/publishers/4", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":4,"name":"Tor Books","establishmentYear":1980,"address":"New York"}`))
	})

	publisher, err := svc.UpdatePublisher(context.Background(), 4, model.PublisherPayload{
		Name:              "Tor Books",
		EstablishmentYear: 1980,
		Address:           "New York",
	})
	require.NoError(t, err)
	require.Equal(t, "Tor Books", publisher.Name)
}

func TestService_DeleteCategory(t *testing.T) {
	t.Parallel()
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/categories/2", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, svc.DeleteCategory(context.Background(), 2))
}

func TestService_ErrorMapping(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name    string
		status  int
		call    func(svc *catalog.Service) error
		wantErr error
	}{
		{
			name:   "get 404",
			status: http.StatusNotFound,
			call: func(svc *catalog.Service) error {
				_, err := svc.GetAuthor(context.Background(), 99)
				return err
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:   "get 500",
			status: http.StatusInternalServerError,
			call: func(svc *catalog.Service) error {
				_, err := svc.ListBooks(context.Background())
				return err
			},
			wantErr: errs.ErrFetch,
		},
		{
			name:   "post 400",
			status: http.StatusBadRequest,
			call: func(svc *catalog.Service) error {
				_, err := svc.CreateCategory(context.Background(), model.CategoryPayload{
					Name: "SF", Description: "Science fiction",
				})
				return err
			},
			wantErr: errs.ErrMutation,
		},
		{
			name:   "delete 409",
			status: http.StatusConflict,
			call: func(svc *catalog.Service) error {
				return svc.DeleteBook(context.Background(), 9)
			},
			wantErr: errs.ErrMutation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			require.ErrorIs(t, tt.call(svc), tt.wantErr)
		})
	}
}
