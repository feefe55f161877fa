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

func TestBookForm_LoadOptions(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockBookFormService(c)
	svc.EXPECT().ListAuthors(gomock.Any()).Return([]model.Author{{ID: 1}}, nil)
	svc.EXPECT().ListCategories(gomock.Any()).Return([]model.Category{{ID: 2}, {ID: 3}}, nil)
	svc.EXPECT().ListPublishers(gomock.Any()).Return([]model.Publisher{{ID: 4}}, nil)

	f := screen.NewBookForm(svc, &recordingNotifier{}, &recordingNavigator{})
	require.NoError(t, f.LoadOptions(context.Background()))
	require.Len(t, f.Authors(), 1)
	require.Len(t, f.Categories(), 2)
	require.Len(t, f.Publishers(), 1)
}

func TestBookForm_LoadOptionsFailure(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockBookFormService(c)
	svc.EXPECT().ListAuthors(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	svc.EXPECT().ListCategories(gomock.Any()).Return([]model.Category{{ID: 2}}, nil).AnyTimes()
	svc.EXPECT().ListPublishers(gomock.Any()).Return([]model.Publisher{{ID: 4}}, nil).AnyTimes()

	nt := &recordingNotifier{}
	f := screen.NewBookForm(svc, nt, &recordingNavigator{})
	require.Error(t, f.LoadOptions(context.Background()))
	require.Equal(t, []string{"Error fetching dropdown data."}, nt.errs)
	require.Empty(t, f.Authors())
	require.Empty(t, f.Categories())
	require.Empty(t, f.Publishers())
}

func TestBookForm_LoadEdit(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockBookFormService(c)
	svc.EXPECT().
		GetBook(context.Background(), int64(9)).
		Return(model.Book{
			ID:              9,
			Name:            "Solaris",
			PublicationYear: 1961,
			Stock:           3,
			Author:          &model.Author{ID: 1, Name: "Stanislaw Lem"},
			Publisher:       &model.Publisher{ID: 4, Name: "MON"},
			Categories:      []model.Category{{ID: 2}, {ID: 3}},
		}, nil)

	f := screen.NewBookForm(svc, &recordingNotifier{}, &recordingNavigator{id: 9, ok: true})
	require.NoError(t, f.Load(context.Background()))
	// nested relation objects come back as bare identifiers
	require.Equal(t, screen.BookFields{
		Name:            "Solaris",
		PublicationYear: "1961",
		Stock:           "3",
		AuthorID:        1,
		PublisherID:     4,
		CategoryIDs:     []int64{2, 3},
	}, f.Fields())
	require.True(t, f.Fields().HasCategory(2))
	require.False(t, f.Fields().HasCategory(5))
}

func TestBookForm_Submit(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *mock_screen.MockBookFormService)

	var tests = []struct {
		name         string
		fields       map[string]string
		categoryIDs  []int64
		mockBehavior mockBehavior
		wantErr      bool
		wantErrs     []string
	}{
		{
			name: "create ok",
			fields: map[string]string{
				"name":            "Solaris",
				"publicationYear": "1961",
				"stock":           "3",
				"authorId":        "1",
				"publisherId":     "4",
			},
			categoryIDs: []int64{2, 3, 2},
			mockBehavior: func(r *mock_screen.MockBookFormService) {
				r.EXPECT().
					CreateBook(context.Background(), model.BookPayload{
						Name:            "Solaris",
						PublicationYear: 1961,
						Stock:           3,
						Author:          model.Ref{ID: 1},
						Publisher:       model.Ref{ID: 4},
						Categories:      []model.Ref{{ID: 2}, {ID: 3}},
					}).
					Return(model.Book{ID: 9}, nil)
			},
		},
		{
			name: "year not a number",
			fields: map[string]string{
				"name":            "Solaris",
				"publicationYear": "MCMXLI",
				"stock":           "3",
				"authorId":        "1",
				"publisherId":     "4",
			},
			categoryIDs:  []int64{2},
			mockBehavior: func(r *mock_screen.MockBookFormService) {},
			wantErr:      true,
			wantErrs:     []string{"Error saving book data."},
		},
		{
			name: "no category selected",
			fields: map[string]string{
				"name":            "Solaris",
				"publicationYear": "1961",
				"stock":           "3",
				"authorId":        "1",
				"publisherId":     "4",
			},
			mockBehavior: func(r *mock_screen.MockBookFormService) {},
			wantErr:      true,
			wantErrs:     []string{"Error saving book data."},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_screen.NewMockBookFormService(c)
			tt.mockBehavior(svc)
			nt := &recordingNotifier{}

			f := screen.NewBookForm(svc, nt, &recordingNavigator{})
			for name, value := range tt.fields {
				require.NoError(t, f.SetField(name, value))
			}
			f.SetCategoryIDs(tt.categoryIDs)

			err := f.Submit(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantErrs, nt.errs)
		})
	}
}
