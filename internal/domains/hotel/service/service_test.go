package service_test

import (
	"context"
	"errors"
	otelMocks "hotelhub/infras/otel/mocks"
	"hotelhub/internal/domains/hotel/mocks"
	"hotelhub/internal/domains/hotel/model"
	"hotelhub/internal/domains/hotel/service"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		hotel     model.Hotel
		repoErr   error
		wantErrIs error
	}{
		{name: "found", hotel: model.Hotel{ID: "h-1", OwnerID: "o-1"}},
		{name: "missing", hotel: model.Hotel{}, wantErrIs: failure.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockHotel(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.hotel, tt.repoErr)

			got, err := service.New(repo, otelMocks.NewOtel()).Get(context.Background(), "h-1")
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.hotel, got)
		})
	}
}

func TestGet_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHotel(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, errors.New("db down"))

	_, err := service.New(repo, otelMocks.NewOtel()).Get(context.Background(), "h-1")
	assert.EqualError(t, err, "db down")
}

func TestFirstOwnedBy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHotel(ctrl)

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Hotel, error) {
			assert.Equal(t, 1, params.Limit)
			assert.Equal(t, "created_at", params.SortBy)
			assert.Equal(t, "ASC", params.SortDir)

			return []model.Hotel{{ID: "h-oldest", OwnerID: "o-1"}}, nil
		})

	got, err := service.New(repo, otelMocks.NewOtel()).FirstOwnedBy(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, "h-oldest", got.ID)
}

func TestFirstOwnedBy_NoHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHotel(ctrl)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Hotel{}, nil)

	_, err := service.New(repo, otelMocks.NewOtel()).FirstOwnedBy(context.Background(), "o-1")
	assert.ErrorIs(t, err, failure.ErrNotFound)
}

func TestListOwnedBy(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHotel(ctrl)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Hotel{{ID: "h-1"}, {ID: "h-2"}}, nil)

	got, err := service.New(repo, otelMocks.NewOtel()).ListOwnedBy(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestIsOwnedBy(t *testing.T) {
	assert.True(t, model.Hotel{OwnerID: "o-1"}.IsOwnedBy("o-1"))
	assert.False(t, model.Hotel{OwnerID: "o-1"}.IsOwnedBy("o-2"))
	assert.False(t, model.Hotel{}.IsOwnedBy(""))
}
