package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelhub/infras/otel"
	"hotelhub/infras/postgres"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/shared"
	"hotelhub/shared/constant"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"
	gRepo "hotelhub/shared/repository"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	argExpectedStatus = "expected_status"
	argDraftStatus    = "draft_status"
	argToday          = "today"
)

// Contract is the contract store. CompareAndSetStatus is the only status mutator.
type Contract interface {
	Insert(ctx context.Context, contract model.Contract) error
	GetByID(ctx context.Context, id string) (model.Contract, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Contract, error)
	ListByOwner(ctx context.Context, ownerID string, params gDto.QueryParams) ([]model.Contract, error)
	ListByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) ([]model.Contract, error)
	ListByStatus(ctx context.Context, status model.Status, params gDto.QueryParams) ([]model.Contract, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	ListExpirable(ctx context.Context, today time.Time, limit int) ([]model.Contract, error)
	UpdateFields(ctx context.Context, id string, patch model.Patch, actor string, now time.Time) (model.Contract, error)
	CompareAndSetStatus(ctx context.Context, change model.StatusChange) (model.Contract, error)
	Delete(ctx context.Context, id string) error
	ListStatusLogs(ctx context.Context, contractID string) ([]model.StatusLog, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Contract]
	logs gRepo.Repository[model.StatusLog]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Contract {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Contract](model.EntityName, model.TableName, model.FieldID, db, otel),
		logs:       gRepo.NewRepository[model.StatusLog](model.StatusLogEntityName, model.StatusLogTableName, model.FieldStatusLogID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, contract model.Contract) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contract.Status = model.StatusDraft
	contract.SignedDate = nil

	err = r.Repository.Insert(ctx, contract)
	if isUniqueViolation(err) {
		return failure.Conflict("an open draft with the same title already exists for this hotel") //nolint:wrapcheck
	}

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Contract, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.GetByID")
	defer scope.End()

	contract, err := r.Get(ctx, byID(id))
	if err != nil {
		return model.Contract{}, err //nolint:wrapcheck
	}

	if contract.ID == "" {
		return model.Contract{}, failure.NotFound("contract not found") //nolint:wrapcheck
	}

	return contract, nil
}

func (r *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Contract, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.List")
	defer scope.End()

	return r.GetAll(ctx, params, listFilter(filter)) //nolint:wrapcheck
}

func (r *repositoryImpl) ListByOwner(ctx context.Context, ownerID string, params gDto.QueryParams) ([]model.Contract, error) {
	return r.List(ctx, params, model.ListFilter{OwnerID: ownerID})
}

func (r *repositoryImpl) ListByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) ([]model.Contract, error) {
	return r.List(ctx, params, model.ListFilter{HotelID: hotelID})
}

func (r *repositoryImpl) ListByStatus(ctx context.Context, status model.Status, params gDto.QueryParams) ([]model.Contract, error) {
	return r.List(ctx, params, model.ListFilter{Status: status})
}

func (r *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.Count")
	defer scope.End()

	return r.Repository.Count(ctx, listFilter(filter)) //nolint:wrapcheck
}

// ListExpirable returns active contracts whose end date is before today, oldest end date first.
func (r *repositoryImpl) ListExpirable(ctx context.Context, today time.Time, limit int) ([]model.Contract, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.ListExpirable")
	defer scope.End()

	filter := listFilter(model.ListFilter{Status: model.StatusActive})
	filter.Add(gDto.Filter{
		ArgName:  argToday,
		Field:    model.FieldEndDate,
		Value:    today,
		Operator: gDto.FilterOperatorLess,
	})

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldEndDate,
		SortDir: "ASC",
	}

	return r.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// UpdateFields applies patch only while the stored row is still a draft.
func (r *repositoryImpl) UpdateFields(ctx context.Context, id string, patch model.Patch, actor string, now time.Time) (res model.Contract, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.UpdateFields")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := byID(id)
	filter.Add(gDto.Filter{
		ArgName:  argDraftStatus,
		Field:    model.FieldStatus,
		Value:    model.StatusDraft,
		Operator: gDto.FilterOperatorEq,
	})

	updated, ok, err := r.UpdateReturning(ctx, shared.TransformFields(patch, actor, now), filter)
	if isUniqueViolation(err) {
		return model.Contract{}, failure.Conflict("an open draft with the same title already exists for this hotel") //nolint:wrapcheck
	}

	if err != nil {
		return model.Contract{}, err //nolint:wrapcheck
	}

	if !ok {
		return model.Contract{}, r.explainDraftMiss(ctx, id)
	}

	return updated, nil
}

// CompareAndSetStatus moves a contract from change.Expected to change.Next and appends the
// audit row in the same transaction. A lost race reports the status that won.
func (r *repositoryImpl) CompareAndSetStatus(ctx context.Context, change model.StatusChange) (res model.Contract, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.CompareAndSetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// the actor is recorded in the status log, the record itself only gains status and dates
	mod := map[string]any{
		model.FieldStatus:       change.Next,
		constant.FieldUpdatedAt: change.At,
	}

	if change.SignedDate != nil {
		mod[model.FieldSignedDate] = *change.SignedDate
	}

	filter := byID(change.ContractID)
	filter.Add(gDto.Filter{
		ArgName:  argExpectedStatus,
		Field:    model.FieldStatus,
		Value:    change.Expected,
		Operator: gDto.FilterOperatorEq,
	})

	err = r.WithTx(ctx, func(tx *sqlx.Tx) error {
		updated, ok, err := r.UpdateReturningTx(ctx, tx, mod, filter)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !ok {
			current, err := r.GetTx(ctx, tx, byID(change.ContractID), model.FieldID, model.FieldStatus)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if current.ID == "" {
				return failure.NotFound("contract not found") //nolint:wrapcheck
			}

			return failure.StaleState(change.ContractID, change.Expected.String(), current.Status.String()) //nolint:wrapcheck
		}

		if err := r.logs.InsertTx(ctx, tx, change.ToLog(uuid.NewString())); err != nil {
			return err //nolint:wrapcheck
		}

		res = updated

		return nil
	})
	if err != nil {
		return model.Contract{}, err //nolint:wrapcheck
	}

	return res, nil
}

// Delete removes a contract only while it is still a draft.
func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := byID(id)
	filter.Add(gDto.Filter{
		ArgName:  argDraftStatus,
		Field:    model.FieldStatus,
		Value:    model.StatusDraft,
		Operator: gDto.FilterOperatorEq,
	})

	deleted, err := r.Repository.Delete(ctx, filter)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if deleted == 0 {
		return r.explainDraftMiss(ctx, id)
	}

	return nil
}

func (r *repositoryImpl) ListStatusLogs(ctx context.Context, contractID string) ([]model.StatusLog, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".contract.ListStatusLogs")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.FieldStatusLogCreatedAt,
		SortDir: "ASC",
	}

	filter := shared.FilterByID(contractID, model.FieldStatusLogContractID, "")

	return r.logs.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// explainDraftMiss turns a conditional write that matched nothing into NotFound or PreconditionFailed.
func (r *repositoryImpl) explainDraftMiss(ctx context.Context, id string) error {
	current, err := r.GetFromPrimary(ctx, byID(id), model.FieldID, model.FieldStatus)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if current.ID == "" {
		return failure.NotFound("contract not found") //nolint:wrapcheck
	}

	return failure.PreconditionFailed(fmt.Sprintf("contract is %s, only drafts can be changed", current.Status)) //nolint:wrapcheck
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, "")
}

func listFilter(filter model.ListFilter) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if filter.OwnerID != "" {
		group.Add(gDto.Filter{Field: model.FieldOwnerID, Value: filter.OwnerID, Operator: gDto.FilterOperatorEq})
	}

	if filter.HotelID != "" {
		group.Add(gDto.Filter{Field: model.FieldHotelID, Value: filter.HotelID, Operator: gDto.FilterOperatorEq})
	}

	if filter.Status != "" {
		group.Add(gDto.Filter{Field: model.FieldStatus, Value: filter.Status, Operator: gDto.FilterOperatorEq})
	}

	return group
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		log.Warn().Str("constraint", pqErr.Constraint).Msg("unique constraint violated")

		return true
	}

	return false
}
