package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"hotelhub/infras/otel"
	"hotelhub/internal/domains/hotel/model"
	"hotelhub/internal/domains/hotel/repository"
	"hotelhub/shared"
	"hotelhub/shared/constant"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"

	"github.com/rs/zerolog/log"
)

// Directory resolves hotels and their owners for contract creation.
type Directory interface {
	Get(ctx context.Context, id string) (model.Hotel, error)
	FirstOwnedBy(ctx context.Context, ownerID string) (model.Hotel, error)
	ListOwnedBy(ctx context.Context, ownerID string) ([]model.Hotel, error)
}

type serviceImpl struct {
	repo repository.Hotel
	otel otel.Otel
}

func New(repo repository.Hotel, otel otel.Otel) Directory {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("failed to get hotel")

		return model.Hotel{}, err //nolint:wrapcheck
	}

	if res.ID == "" {
		return model.Hotel{}, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	return res, nil
}

// FirstOwnedBy returns the owner's oldest hotel.
func (s *serviceImpl) FirstOwnedBy(ctx context.Context, ownerID string) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.FirstOwnedBy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotels, err := s.list(ctx, ownerID, 1)
	if err != nil {
		return model.Hotel{}, err
	}

	if len(hotels) == 0 {
		return model.Hotel{}, failure.NotFound("owner has no hotel") //nolint:wrapcheck
	}

	return hotels[0], nil
}

func (s *serviceImpl) ListOwnedBy(ctx context.Context, ownerID string) (res []model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.ListOwnedBy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, ownerID, 0)
}

func (s *serviceImpl) list(ctx context.Context, ownerID string, limit int) ([]model.Hotel, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	hotels, err := s.repo.GetAll(ctx, params, shared.FilterByID(ownerID, model.FieldOwnerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("ownerID", ownerID).Msg("failed to list hotels")

		return nil, err //nolint:wrapcheck
	}

	return hotels, nil
}
