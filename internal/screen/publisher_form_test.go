package screen_test

import (
	"context"
	"testing"

	"library-admin/internal/model"
	"library-admin/internal/screen"
	mock_screen "library-admin/internal/screen/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestPublisherForm_Submit(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *mock_screen.MockPublisherService)

	var tests = []struct {
		name         string
		fields       map[string]string
		mockBehavior mockBehavior
		wantErr      bool
		wantErrs     []string
	}{
		{
			name: "ok",
			fields: map[string]string{
				"name":              "Tor Books",
				"establishmentYear": "1980",
				"address":           "New York",
			},
			mockBehavior: func(r *mock_screen.MockPublisherService) {
				r.EXPECT().
					CreatePublisher(context.Background(), model.PublisherPayload{
						Name:              "Tor Books",
						EstablishmentYear: 1980,
						Address:           "New York",
					}).
					Return(model.Publisher{ID: 1}, nil)
			},
		},
		{
			name: "year not a number",
			fields: map[string]string{
				"name":              "Tor Books",
				"establishmentYear": "nineteen-eighty",
				"address":           "New York",
			},
			mockBehavior: func(r *mock_screen.MockPublisherService) {},
			wantErr:      true,
			wantErrs:     []string{"Error saving publisher data."},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := mock_screen.NewMockPublisherService(c)
			tt.mockBehavior(svc)
			nt := &recordingNotifier{}

			f := screen.NewPublisherForm(svc, nt, &recordingNavigator{})
			for name, value := range tt.fields {
				require.NoError(t, f.SetField(name, value))
			}

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

func TestPublisherForm_LoadEdit(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := mock_screen.NewMockPublisherService(c)
	svc.EXPECT().
		GetPublisher(context.Background(), int64(2)).
		Return(model.Publisher{ID: 2, Name: "Tor Books", EstablishmentYear: 1980, Address: "New York"}, nil)

	f := screen.NewPublisherForm(svc, &recordingNotifier{}, &recordingNavigator{id: 2, ok: true})
	require.NoError(t, f.Load(context.Background()))
	// the year round-trips through its string form
	require.Equal(t, screen.PublisherFields{
		Name:              "Tor Books",
		EstablishmentYear: "1980",
		Address:           "New York",
	}, f.Fields())
}
