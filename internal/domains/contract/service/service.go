package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Contract=MockService

import (
	"context"
	"errors"
	"fmt"
	"hotelhub/config"
	"hotelhub/infras/metrics"
	"hotelhub/infras/otel"
	"hotelhub/internal/domains/contract/event"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/internal/domains/contract/model/dto"
	"hotelhub/internal/domains/contract/policy"
	"hotelhub/internal/domains/contract/repository"
	"hotelhub/internal/domains/contract/transition"
	hotelModel "hotelhub/internal/domains/hotel/model"
	hotelService "hotelhub/internal/domains/hotel/service"
	"hotelhub/shared/constant"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"
	"hotelhub/shared/principal"
	"hotelhub/shared/timezone"
	"hotelhub/shared/validator"

	"github.com/rs/zerolog/log"
)

type Contract interface {
	CreateDraft(ctx context.Context, p principal.Principal, req dto.CreateContractRequest) (dto.ContractResponse, error)
	UpdateDraftFields(ctx context.Context, p principal.Principal, id string, req dto.UpdateContractRequest) (dto.ContractResponse, error)
	DeleteDraft(ctx context.Context, p principal.Principal, id string) error
	SubmitForApproval(ctx context.Context, p principal.Principal, id string) (dto.ContractResponse, error)
	Decide(ctx context.Context, p principal.Principal, id string, req dto.DecideRequest) (dto.ContractResponse, error)
	Get(ctx context.Context, p principal.Principal, id string) (dto.ContractResponse, error)
	ListForPrincipal(ctx context.Context, p principal.Principal, params gDto.QueryParams, filter model.ListFilter) (dto.GetContractsResponse, error)
	History(ctx context.Context, p principal.Principal, id string) (dto.GetHistoryResponse, error)
	Expire(ctx context.Context, contract model.Contract) (model.Contract, error)
}

type serviceImpl struct {
	repo      repository.Contract
	hotels    hotelService.Directory
	publisher event.Publisher
	clock     timezone.Clock
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Contract,
	hotels hotelService.Directory,
	publisher event.Publisher,
	clock timezone.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Contract {
	return &serviceImpl{
		repo:      repo,
		hotels:    hotels,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) CreateDraft(ctx context.Context, p principal.Principal, req dto.CreateContractRequest) (res dto.ContractResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDraft")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	if err = policy.Authorize(p, policy.ActionCreate, nil); err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	hotel, err := s.resolveHotel(ctx, p, req.HotelID)
	if err != nil {
		return res, err
	}

	now := s.clock.Now()

	contract, err := req.ToModel(p.UserID, hotel.ID, s.cfg.App.DefaultCurrency, now)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = contract.Terms().Validate(timezone.DateOf(now)); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, contract); err != nil {
		log.Error().Err(err).Str("ownerID", p.UserID).Str("hotelID", hotel.ID).Msg("failed to insert contract")

		return res, err //nolint:wrapcheck
	}

	contract.Status = model.StatusDraft

	return s.response(contract, p), nil
}

func (s *serviceImpl) UpdateDraftFields(ctx context.Context, p principal.Principal, id string, req dto.UpdateContractRequest) (res dto.ContractResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDraftFields")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	current, err := s.load(ctx, p, id)
	if err != nil {
		return res, err
	}

	if err = policy.Authorize(p, policy.ActionEditFields, &current); err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	patch, err := req.ToPatch()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if patch.IsEmpty() {
		return res, failure.Validation("", "at least one editable field must be provided") //nolint:wrapcheck
	}

	if err = requireDraft(current); err != nil {
		return res, err
	}

	now := s.clock.Now()

	if patch.TouchesTerms() {
		if err = patch.Apply(current).Terms().Validate(timezone.DateOf(now)); err != nil {
			return res, err //nolint:wrapcheck
		}
	}

	updated, err := s.repo.UpdateFields(ctx, id, patch, p.UserID, now)
	if err != nil {
		log.Error().Err(err).Str("contractID", id).Msg("failed to update contract fields")

		return res, err //nolint:wrapcheck
	}

	return s.response(updated, p), nil
}

func (s *serviceImpl) DeleteDraft(ctx context.Context, p principal.Principal, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDraft")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	current, err := s.load(ctx, p, id)
	if err != nil {
		return err
	}

	if err = policy.Authorize(p, policy.ActionDelete, &current); err != nil {
		return err
	}

	if err = requireDraft(current); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("contractID", id).Msg("failed to delete contract")

		return err //nolint:wrapcheck
	}

	return nil
}

// SubmitForApproval moves a draft to pending after re-checking the term invariants against today.
func (s *serviceImpl) SubmitForApproval(ctx context.Context, p principal.Principal, id string) (res dto.ContractResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitForApproval")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	current, err := s.load(ctx, p, id)
	if err != nil {
		return res, err
	}

	if err = policy.Authorize(p, policy.ActionSubmit, &current); err != nil {
		return res, err
	}

	if err = transition.Check(current.Status, model.StatusPending, p.Role); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := s.clock.Now()

	if err = current.Terms().Validate(timezone.DateOf(now)); err != nil {
		return res, err //nolint:wrapcheck
	}

	updated, err := s.transition(ctx, current, model.StatusChange{
		ContractID: current.ID,
		Expected:   current.Status,
		Next:       model.StatusPending,
		ActorID:    p.UserID,
		ActorRole:  p.Role,
		At:         now,
	})
	if err != nil {
		return res, err
	}

	return s.response(updated, p), nil
}

// Decide applies an admin decision. A lost race is returned as a stale state failure, never merged.
func (s *serviceImpl) Decide(ctx context.Context, p principal.Principal, id string, req dto.DecideRequest) (res dto.ContractResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	if err = policy.Authorize(p, policy.ActionDecide, nil); err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	current, err := s.load(ctx, p, id)
	if err != nil {
		return res, err
	}

	target := model.Status(req.Status)
	if err = transition.Check(current.Status, target, p.Role); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := s.clock.Now()
	change := model.StatusChange{
		ContractID: current.ID,
		Expected:   current.Status,
		Next:       target,
		ActorID:    p.UserID,
		ActorRole:  p.Role,
		Reason:     req.Reason,
		At:         now,
	}

	if target == model.StatusActive {
		signed := timezone.DateOf(now)
		change.SignedDate = &signed
	}

	updated, err := s.transition(ctx, current, change)
	if err != nil {
		return res, err
	}

	return s.response(updated, p), nil
}

func (s *serviceImpl) Get(ctx context.Context, p principal.Principal, id string) (res dto.ContractResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	current, err := s.load(ctx, p, id)
	if err != nil {
		return res, err
	}

	if err = policy.Authorize(p, policy.ActionRead, &current); err != nil {
		return res, err
	}

	return s.response(current, p), nil
}

// ListForPrincipal lists contracts visible to p. Owners only ever see their own contracts.
func (s *serviceImpl) ListForPrincipal(ctx context.Context, p principal.Principal, params gDto.QueryParams, filter model.ListFilter) (res dto.GetContractsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForPrincipal")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	if err = policy.Authorize(p, policy.ActionList, nil); err != nil {
		return res, err
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		return res, failure.Validation(model.FieldStatus, "status must be one of draft pending active expired terminated cancelled") //nolint:wrapcheck
	}

	if p.IsHotelOwner() {
		filter.OwnerID = p.UserID
	}

	params.Sanitize(model.SortableFields...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contracts")

		return res, err //nolint:wrapcheck
	}

	contracts, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list contracts")

		return res, err //nolint:wrapcheck
	}

	res.FromModels(contracts, total, params.Limit)

	for i := range res.Contracts {
		res.Contracts[i].WithTransitions(transition.Targets(contracts[i].Status, p.Role))
	}

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, p principal.Principal, id string) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	current, err := s.load(ctx, p, id)
	if err != nil {
		return res, err
	}

	if err = policy.Authorize(p, policy.ActionRead, &current); err != nil {
		return res, err
	}

	logs, err := s.repo.ListStatusLogs(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("contractID", id).Msg("failed to list contract history")

		return res, err //nolint:wrapcheck
	}

	res.FromModels(id, logs)

	return res, nil
}

// Expire moves an active contract past its end date to expired on behalf of the system actor.
func (s *serviceImpl) Expire(ctx context.Context, contract model.Contract) (res model.Contract, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expire")
	defer scope.End()
	defer func() { s.finish(scope, err) }()

	system := principal.System()

	if err = policy.Authorize(system, policy.ActionExpire, &contract); err != nil {
		return res, err
	}

	if err = transition.Check(contract.Status, model.StatusExpired, system.Role); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := s.clock.Now()
	if !contract.IsExpirable(timezone.DateOf(now)) {
		return res, failure.PreconditionFailed(fmt.Sprintf("contract %s ends on %s and cannot expire yet", contract.ID, contract.EndDate.Format(constant.CalendarDate))) //nolint:wrapcheck
	}

	return s.transition(ctx, contract, model.StatusChange{
		ContractID: contract.ID,
		Expected:   contract.Status,
		Next:       model.StatusExpired,
		ActorID:    system.UserID,
		ActorRole:  system.Role,
		Reason:     "end date passed",
		At:         now,
	})
}

// transition runs the compare-and-set and reports the committed change.
func (s *serviceImpl) transition(ctx context.Context, current model.Contract, change model.StatusChange) (model.Contract, error) {
	updated, err := s.repo.CompareAndSetStatus(ctx, change)
	if err != nil {
		if errors.Is(err, failure.ErrStaleState) {
			log.Warn().Err(err).Str("contractID", change.ContractID).Msg("contract status changed concurrently")
		} else {
			log.Error().Err(err).Str("contractID", change.ContractID).Msg("failed to change contract status")
		}

		return model.Contract{}, err //nolint:wrapcheck
	}

	metrics.ObserveTransition(change.Expected.String(), change.Next.String(), change.ActorRole)

	if err := s.publisher.PublishStatusChanged(context.WithoutCancel(ctx), event.NewStatusChanged(current, change)); err != nil {
		log.Error().Err(err).Str("contractID", change.ContractID).Msg("failed to publish contract status event")
	}

	log.Info().
		Str("contractID", change.ContractID).
		Str("from", change.Expected.String()).
		Str("to", change.Next.String()).
		Str("actor", change.ActorID).
		Msg("contract status changed")

	return updated, nil
}

func (s *serviceImpl) resolveHotel(ctx context.Context, p principal.Principal, hotelID string) (hotelModel.Hotel, error) {
	if hotelID == "" {
		hotel, err := s.hotels.FirstOwnedBy(ctx, p.UserID)
		if errors.Is(err, failure.ErrNotFound) {
			return hotelModel.Hotel{}, failure.Validation(model.FieldHotelID, "hotel_id is required, no hotel is registered to this owner") //nolint:wrapcheck
		}

		return hotel, err //nolint:wrapcheck
	}

	hotel, err := s.hotels.Get(ctx, hotelID)
	if err != nil {
		return hotelModel.Hotel{}, err //nolint:wrapcheck
	}

	if !hotel.IsOwnedBy(p.UserID) {
		return hotelModel.Hotel{}, failure.Forbidden("hotel belongs to another owner") //nolint:wrapcheck
	}

	return hotel, nil
}

// load reads a contract. A missing contract is only reported as such to admins.
func (s *serviceImpl) load(ctx context.Context, p principal.Principal, id string) (model.Contract, error) {
	contract, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, failure.ErrNotFound) {
		return model.Contract{}, policy.Missing(p)
	}

	if err != nil {
		log.Error().Err(err).Str("contractID", id).Msg("failed to get contract")

		return model.Contract{}, err //nolint:wrapcheck
	}

	return contract, nil
}

func (s *serviceImpl) response(contract model.Contract, p principal.Principal) dto.ContractResponse {
	var res dto.ContractResponse

	res.FromModel(contract)
	res.WithTransitions(transition.Targets(contract.Status, p.Role))

	return res
}

func (s *serviceImpl) finish(scope otel.Scope, err error) {
	scope.TraceIfError(err)
	metrics.ObserveRejection(failure.GetReason(err))
}

func requireDraft(contract model.Contract) error {
	if contract.Status != model.StatusDraft {
		return failure.PreconditionFailed(fmt.Sprintf("contract is %s, only drafts can be changed", contract.Status)) //nolint:wrapcheck
	}

	return nil
}
