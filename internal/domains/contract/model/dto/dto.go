package dto

import (
	"hotelhub/internal/domains/contract/model"
	"hotelhub/shared"
	"hotelhub/shared/constant"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"
	gModel "hotelhub/shared/model"
	"hotelhub/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateContractRequest struct {
	HotelID            string          `json:"hotel_id"             validate:"omitempty,uuid"`
	Title              string          `json:"title"                validate:"required,min=5,max=255"`
	Description        string          `json:"description"          validate:"max=5000"`
	ContractType       string          `json:"contract_type"        validate:"required,oneof=Business"`
	Notes              string          `json:"notes"                validate:"max=5000"`
	PaymentTerms       string          `json:"payment_terms"        validate:"max=5000"`
	TermsAndConditions string          `json:"terms_and_conditions" validate:"max=20000"`
	ContractFileURL    string          `json:"contract_file_url"    validate:"omitempty,url,max=2048"`
	CommissionRate     decimal.Decimal `json:"commission_rate"      validate:"required"`
	Currency           string          `json:"currency"             validate:"max=50"`
	StartDate          string          `json:"start_date"           validate:"required,calendardate"`
	EndDate            string          `json:"end_date"             validate:"required,calendardate"`
}

// ToModel builds a draft owned by ownerID for hotelID.
func (r *CreateContractRequest) ToModel(ownerID, hotelID, defaultCurrency string, now time.Time) (model.Contract, error) {
	startDate, err := parseDate(model.FieldStartDate, r.StartDate)
	if err != nil {
		return model.Contract{}, err
	}

	endDate, err := parseDate(model.FieldEndDate, r.EndDate)
	if err != nil {
		return model.Contract{}, err
	}

	currency := r.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return model.Contract{
		ID:                 uuid.NewString(),
		HotelID:            hotelID,
		OwnerID:            ownerID,
		Title:              r.Title,
		Description:        r.Description,
		ContractType:       r.ContractType,
		Notes:              r.Notes,
		PaymentTerms:       r.PaymentTerms,
		TermsAndConditions: r.TermsAndConditions,
		ContractFileURL:    r.ContractFileURL,
		CommissionRate:     r.CommissionRate,
		Currency:           currency,
		StartDate:          startDate,
		EndDate:            endDate,
		Status:             model.StatusDraft,
		Metadata:           gModel.NewMetadata(now, ownerID),
	}, nil
}

// UpdateContractRequest is a partial edit of a draft. Absent fields are left untouched.
// Identity and lifecycle fields are rejected when present.
type UpdateContractRequest struct {
	HotelID            *string          `json:"hotel_id"             validate:"empty"`
	OwnerID            *string          `json:"owner_id"             validate:"empty"`
	Status             *string          `json:"status"               validate:"empty"`
	SignedDate         *string          `json:"signed_date"          validate:"empty"`
	Title              *string          `json:"title"                validate:"omitempty,min=5,max=255"`
	Description        *string          `json:"description"          validate:"omitempty,max=5000"`
	ContractType       *string          `json:"contract_type"        validate:"omitempty,oneof=Business"`
	Notes              *string          `json:"notes"                validate:"omitempty,max=5000"`
	PaymentTerms       *string          `json:"payment_terms"        validate:"omitempty,max=5000"`
	TermsAndConditions *string          `json:"terms_and_conditions" validate:"omitempty,max=20000"`
	ContractFileURL    *string          `json:"contract_file_url"    validate:"omitempty,url,max=2048"`
	CommissionRate     *decimal.Decimal `json:"commission_rate"`
	Currency           *string          `json:"currency"             validate:"omitempty,max=50"`
	StartDate          *string          `json:"start_date"           validate:"omitempty,calendardate"`
	EndDate            *string          `json:"end_date"             validate:"omitempty,calendardate"`
}

func (r *UpdateContractRequest) ToPatch() (model.Patch, error) {
	patch := model.Patch{
		Title:              r.Title,
		Description:        r.Description,
		ContractType:       r.ContractType,
		Notes:              r.Notes,
		PaymentTerms:       r.PaymentTerms,
		TermsAndConditions: r.TermsAndConditions,
		ContractFileURL:    r.ContractFileURL,
		CommissionRate:     r.CommissionRate,
		Currency:           r.Currency,
	}

	if r.StartDate != nil {
		startDate, err := parseDate(model.FieldStartDate, *r.StartDate)
		if err != nil {
			return model.Patch{}, err
		}

		patch.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := parseDate(model.FieldEndDate, *r.EndDate)
		if err != nil {
			return model.Patch{}, err
		}

		patch.EndDate = &endDate
	}

	return patch, nil
}

type DecideRequest struct {
	Status string `json:"status" validate:"required,oneof=draft pending active expired terminated cancelled"`
	Reason string `json:"reason" validate:"max=1000"`
}

type ContractResponse struct {
	ID                 string          `json:"id"`
	HotelID            string          `json:"hotel_id"`
	OwnerID            string          `json:"owner_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	ContractType       string          `json:"contract_type"`
	Notes              string          `json:"notes"`
	PaymentTerms       string          `json:"payment_terms"`
	TermsAndConditions string          `json:"terms_and_conditions"`
	ContractFileURL    string          `json:"contract_file_url"`
	CommissionRate     decimal.Decimal `json:"commission_rate"`
	Currency           string          `json:"currency"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	SignedDate         *string         `json:"signed_date"`
	Status             string          `json:"status"`
	AllowedTransitions []string        `json:"allowed_transitions"`
	gDto.Metadata
}

func (r *ContractResponse) FromModel(m model.Contract) {
	r.ID = m.ID
	r.HotelID = m.HotelID
	r.OwnerID = m.OwnerID
	r.Title = m.Title
	r.Description = m.Description
	r.ContractType = m.ContractType
	r.Notes = m.Notes
	r.PaymentTerms = m.PaymentTerms
	r.TermsAndConditions = m.TermsAndConditions
	r.ContractFileURL = m.ContractFileURL
	r.CommissionRate = m.CommissionRate
	r.Currency = m.Currency
	r.StartDate = formatDate(m.StartDate)
	r.EndDate = formatDate(m.EndDate)
	r.Status = m.Status.String()
	r.AllowedTransitions = []string{}
	r.Metadata.FromModel(m.Metadata)

	r.SignedDate = nil
	if m.SignedDate != nil {
		signed := formatDate(*m.SignedDate)
		r.SignedDate = &signed
	}
}

// WithTransitions sets the statuses the caller may move the contract to next.
func (r *ContractResponse) WithTransitions(targets []model.Status) {
	r.AllowedTransitions = make([]string, len(targets))
	for i, target := range targets {
		r.AllowedTransitions[i] = target.String()
	}
}

type GetContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetContractsResponse) FromModels(models []model.Contract, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contracts = make([]ContractResponse, len(models))
	for i, mod := range models {
		r.Contracts[i].FromModel(mod)
	}
}

type StatusLogResponse struct {
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	Reason     string `json:"reason"`
	CreatedAt  string `json:"created_at"`
}

func (r *StatusLogResponse) FromModel(m model.StatusLog) {
	r.FromStatus = m.FromStatus.String()
	r.ToStatus = m.ToStatus.String()
	r.ActorID = m.ActorID
	r.ActorRole = m.ActorRole
	r.Reason = m.Reason
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type GetHistoryResponse struct {
	ContractID string              `json:"contract_id"`
	Entries    []StatusLogResponse `json:"entries"`
}

func (r *GetHistoryResponse) FromModels(contractID string, models []model.StatusLog) {
	r.ContractID = contractID
	r.Entries = make([]StatusLogResponse, len(models))

	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := timezone.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.Validation(field, field+" must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	return parsed, nil
}

// formatDate renders a calendar day. Days are stored as midnight UTC, so no timezone shift applies.
func formatDate(day time.Time) string {
	return day.UTC().Format(constant.CalendarDate)
}
