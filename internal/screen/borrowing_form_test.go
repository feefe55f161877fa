package screen_test

import (
	"context"
	"testing"

	"library-admin/internal/model"
	"library-admin/internal/screen"
	mock_screen "library-admin/internal/screen/mocks"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBorrowingForm_CreateStockGuard(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockBorrowingFormService(c)
	svc.EXPECT().
		ListBooks(context.Background()).
		Return([]model.Book{
			{ID: 1, Name: "Solaris", Stock: 0},
			{ID: 2, Name: "The Dispossessed", Stock: 4},
		}, nil)
	// no CreateBorrowing expectation: the guard must stop before any request

	nt := &recordingNotifier{}
	nav := &recordingNavigator{}
	f := screen.NewBorrowingForm(svc, nt, nav)
	require.NoError(t, f.Load(context.Background()))

	require.NoError(t, f.SetField("borrowerName", "Kelvin"))
	require.NoError(t, f.SetField("borrowerMail", "kelvin@prometheus.org"))
	require.NoError(t, f.SetField("borrowingDate", "2026-08-30"))
	require.NoError(t, f.SetField("bookForBorrowingRequest", "1"))

	err := f.Submit(context.Background())
	require.ErrorIs(t, err, screen.ErrStockEmpty)
	require.Equal(t, []string{"Stock is empty! Cannot borrow this book."}, nt.errs)
	require.Empty(t, nav.path)
}

func TestBorrowingForm_Create(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockBorrowingFormService(c)
	svc.EXPECT().
		ListBooks(context.Background()).
		Return([]model.Book{{ID: 2, Name: "The Dispossessed", Stock: 4}}, nil)
	svc.EXPECT().
		CreateBorrowing(context.Background(), model.CreateBorrowingPayload{
			BorrowerName:  "Kelvin",
			BorrowerMail:  "kelvin@prometheus.org",
			BorrowingDate: "2026-08-30",
			ReturnDate:    nil,
			Book:          model.Ref{ID: 2},
		}).
		Return(model.Borrowing{ID: 11}, nil)

	nt := &recordingNotifier{}
	nav := &recordingNavigator{}
	f := screen.NewBorrowingForm(svc, nt, nav)
	require.NoError(t, f.Load(context.Background()))

	require.NoError(t, f.SetField("borrowerName", "Kelvin"))
	require.NoError(t, f.SetField("borrowerMail", "kelvin@prometheus.org"))
	require.NoError(t, f.SetField("borrowingDate", "2026-08-30"))
	require.NoError(t, f.SetField("bookForBorrowingRequest", "2"))

	require.NoError(t, f.Submit(context.Background()))
	require.Equal(t, []string{"Borrowing added successfully!"}, nt.successes)
	require.Equal(t, "/borrowings", nav.path)
}

func TestBorrowingForm_EditDateGuard(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *mock_screen.MockBorrowingFormService)

	returned := "2026-08-20"
	var tests = []struct {
		name          string
		borrowingDate string
		returnDate    string
		mockBehavior  mockBehavior
		wantErr       error
		wantErrs      []string
	}{
		{
			name:          "borrowing after return blocked",
			borrowingDate: "2026-08-30",
			returnDate:    "2026-08-20",
			mockBehavior:  func(r *mock_screen.MockBorrowingFormService) {},
			wantErr:       screen.ErrDateOrder,
			wantErrs:      []string{"Borrowing date cannot be later than the return date."},
		},
		{
			name:          "unparseable date skips the guard",
			borrowingDate: "30/08/2026",
			returnDate:    "2026-08-20",
			mockBehavior: func(r *mock_screen.MockBorrowingFormService) {
				r.EXPECT().
					UpdateBorrowing(context.Background(), int64(11), model.UpdateBorrowingPayload{
						BorrowerName:  "Kelvin",
						BorrowingDate: "30/08/2026",
						ReturnDate:    &returned,
					}).
					Return(model.Borrowing{ID: 11}, nil)
			},
		},
		{
			name:          "empty return date skips the guard",
			borrowingDate: "2026-08-30",
			mockBehavior: func(r *mock_screen.MockBorrowingFormService) {
				r.EXPECT().
					UpdateBorrowing(context.Background(), int64(11), model.UpdateBorrowingPayload{
						BorrowerName:  "Kelvin",
						BorrowingDate: "2026-08-30",
						ReturnDate:    nil,
					}).
					Return(model.Borrowing{ID: 11}, nil)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_screen.NewMockBorrowingFormService(c)
			tt.mockBehavior(svc)
			nt := &recordingNotifier{}

			f := screen.NewBorrowingForm(svc, nt, &recordingNavigator{id: 11, ok: true})
			require.NoError(t, f.SetField("borrowerName", "Kelvin"))
			require.NoError(t, f.SetField("borrowingDate", tt.borrowingDate))
			require.NoError(t, f.SetField("returnDate", tt.returnDate))

			err := f.Submit(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantErrs, nt.errs)
		})
	}
}

func TestBorrowingForm_LoadEdit(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	returned := "2026-08-20"
	svc := mock_screen.NewMockBorrowingFormService(c)
	svc.EXPECT().
		GetBorrowing(context.Background(), int64(11)).
		Return(model.Borrowing{
			ID:            11,
			BorrowerName:  "Kelvin",
			BorrowingDate: "2026-08-01",
			ReturnDate:    &returned,
			Book:          &model.Book{ID: 2, Name: "The Dispossessed"},
		}, nil)

	f := screen.NewBorrowingForm(svc, &recordingNotifier{}, &recordingNavigator{id: 11, ok: true})
	require.NoError(t, f.Load(context.Background()))
	require.Equal(t, screen.BorrowingFields{
		BorrowerName:  "Kelvin",
		BorrowingDate: "2026-08-01",
		ReturnDate:    "2026-08-20",
		BookID:        2,
	}, f.Fields())
}

func TestBorrowingForm_CreateBooksFetchFailure(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockBorrowingFormService(c)
	svc.EXPECT().
		ListBooks(context.Background()).
		Return(nil, errors.New("down"))

	nt := &recordingNotifier{}
	f := screen.NewBorrowingForm(svc, nt, &recordingNavigator{})
	require.Error(t, f.Load(context.Background()))
	require.Equal(t, []string{"Error fetching books."}, nt.errs)
	require.Empty(t, f.Books())
}
