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

func TestDashboard_Load(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockDashboardService(c)
	svc.EXPECT().ListAuthors(gomock.Any()).Return(make([]model.Author, 3), nil)
	svc.EXPECT().ListBooks(gomock.Any()).Return(make([]model.Book, 5), nil)
	svc.EXPECT().ListPublishers(gomock.Any()).Return(make([]model.Publisher, 2), nil)
	svc.EXPECT().ListCategories(gomock.Any()).Return(make([]model.Category, 4), nil)
	svc.EXPECT().ListBorrowings(gomock.Any()).Return(nil, nil)

	d := screen.NewDashboard(svc)
	require.NoError(t, d.Load(context.Background()))
	require.Equal(t, screen.Counts{
		Authors:    3,
		Books:      5,
		Publishers: 2,
		Categories: 4,
		Borrowings: 0,
	}, d.Counts())
}

func TestDashboard_LoadFailureZeroesEverything(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockDashboardService(c)
	svc.EXPECT().ListAuthors(gomock.Any()).Return(make([]model.Author, 3), nil).AnyTimes()
	svc.EXPECT().ListBooks(gomock.Any()).Return(make([]model.Book, 5), nil).AnyTimes()
	svc.EXPECT().ListPublishers(gomock.Any()).Return(make([]model.Publisher, 2), nil).AnyTimes()
	svc.EXPECT().ListCategories(gomock.Any()).Return(make([]model.Category, 4), nil).AnyTimes()
	svc.EXPECT().ListBorrowings(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()

	d := screen.NewDashboard(svc)
	require.Error(t, d.Load(context.Background()))
	// one failed fetch leaves every count untouched
	require.Equal(t, screen.Counts{}, d.Counts())
}
