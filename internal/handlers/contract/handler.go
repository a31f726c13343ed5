package contract

import (
	"hotelhub/infras/otel"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/internal/domains/contract/model/dto"
	"hotelhub/internal/domains/contract/service"
	"hotelhub/shared/constant"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"
	"hotelhub/shared/principal"
	"hotelhub/shared/validator"
	"hotelhub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contract
	otel    otel.Otel
}

func New(service service.Contract, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contracts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContract)
		routerGroup.Get("/", handler.GetContracts)
		routerGroup.Get("/{id}", handler.GetContractByID)
		routerGroup.Patch("/{id}", handler.UpdateContract)
		routerGroup.Delete("/{id}", handler.DeleteContract)
		routerGroup.Patch("/{id}/send-for-approval", handler.SendForApproval)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Get("/{id}/history", handler.GetHistory)
	})
}

// CreateContract handles the creation of a draft contract.
// @Summary Create a draft contract
// @Description Create a draft contract for one of the caller's hotels. Without hotel_id the caller's first hotel is used.
// @Tags Contract
// @Accept json
// @Produce json
// @Param request body dto.CreateContractRequest true "Contract terms"
// @Success 201 {object} response.Data[dto.ContractResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts [post]
// @Security BearerAuth
func (handler *Handler) CreateContract(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContract")
	defer scope.End()

	caller, ok := principal.FromContext(ctx)
	if !ok {
		response.WithError(writer, failure.Unauthorized("missing principal"))

		return
	}

	var req dto.CreateContractRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateDraft(ctx, caller, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contract")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contract created by user " + caller.UserID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetContracts lists contracts visible to the caller.
// @Summary List contracts
// @Description Owners see their own contracts only. Admins see all contracts.
// @Tags Contract
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param hotel_id query string false "Filter by hotel"
// @Success 200 {object} response.Data[dto.GetContractsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts [get]
// @Security BearerAuth
func (handler *Handler) GetContracts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContracts")
	defer scope.End()

	caller, ok := principal.FromContext(ctx)
	if !ok {
		response.WithError(writer, failure.Unauthorized("missing principal"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()
	filter := model.ListFilter{
		HotelID: query.Get(constant.RequestParamHotelID),
		Status:  model.Status(query.Get(constant.RequestParamStatus)),
	}

	if filter.HotelID != "" {
		if err := validator.ValidateVar(filter.HotelID, "uuid"); err != nil {
			response.WithError(writer, failure.Validation(constant.RequestParamHotelID, "hotel_id must be a valid UUID"))

			return
		}
	}

	res, err := handler.service.ListForPrincipal(ctx, caller, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list contracts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetContractByID retrieves one contract.
// @Summary Get a contract
// @Tags Contract
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Data[dto.ContractResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContractByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContractByID")
	defer scope.End()

	caller, id, ok := handler.target(writer, request)
	if !ok {
		return
	}

	res, err := handler.service.Get(ctx, caller, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get contract")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateContract edits the terms of a draft contract.
// @Summary Update a draft contract
// @Description Only drafts are editable. Omitted fields keep their current value.
// @Tags Contract
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body dto.UpdateContractRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.ContractResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContract(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContract")
	defer scope.End()

	caller, id, ok := handler.target(writer, request)
	if !ok {
		return
	}

	var req dto.UpdateContractRequest
	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateDraftFields(ctx, caller, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update contract")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteContract removes a draft contract.
// @Summary Delete a draft contract
// @Tags Contract
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContract(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContract")
	defer scope.End()

	caller, id, ok := handler.target(writer, request)
	if !ok {
		return
	}

	if err := handler.service.DeleteDraft(ctx, caller, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete contract")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Contract deleted successfully")
}

// SendForApproval moves a draft to pending.
// @Summary Submit a draft for approval
// @Tags Contract
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Data[dto.ContractResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id}/send-for-approval [patch]
// @Security BearerAuth
func (handler *Handler) SendForApproval(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendForApproval")
	defer scope.End()

	caller, id, ok := handler.target(writer, request)
	if !ok {
		return
	}

	res, err := handler.service.SubmitForApproval(ctx, caller, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to submit contract")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateStatus applies an administrative decision.
// @Summary Decide on a contract
// @Description Admin only. Approve (active), reject (cancelled), terminate or expire a contract.
// @Tags Contract
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body dto.DecideRequest true "Target status"
// @Success 200 {object} response.Data[dto.ContractResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	caller, id, ok := handler.target(writer, request)
	if !ok {
		return
	}

	var req dto.DecideRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Decide(ctx, caller, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("status", req.Status).Msg("failed to decide contract")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetHistory lists the status changes of a contract, oldest first.
// @Summary Contract status history
// @Tags Contract
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Data[dto.GetHistoryResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	caller, id, ok := handler.target(writer, request)
	if !ok {
		return
	}

	res, err := handler.service.History(ctx, caller, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get contract history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// target resolves the caller and the contract id path parameter, writing the error response itself.
func (handler *Handler) target(writer http.ResponseWriter, request *http.Request) (principal.Principal, string, bool) {
	caller, ok := principal.FromContext(request.Context())
	if !ok {
		response.WithError(writer, failure.Unauthorized("missing principal"))

		return principal.Principal{}, "", false
	}

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		response.WithError(writer, failure.Validation(constant.RequestParamID, "id must be a valid UUID"))

		return principal.Principal{}, "", false
	}

	return caller, id, true
}
