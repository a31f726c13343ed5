package model

import (
	"hotelhub/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "contracts"
	EntityName = "contract"

	FieldID                 = "id"
	FieldHotelID            = "hotel_id"
	FieldOwnerID            = "owner_id"
	FieldTitle              = "title"
	FieldDescription        = "description"
	FieldContractType       = "contract_type"
	FieldNotes              = "notes"
	FieldPaymentTerms       = "payment_terms"
	FieldTermsAndConditions = "terms_and_conditions"
	FieldContractFileURL    = "contract_file_url"
	FieldCommissionRate     = "commission_rate"
	FieldCurrency           = "currency"
	FieldStartDate          = "start_date"
	FieldEndDate            = "end_date"
	FieldSignedDate         = "signed_date"
	FieldStatus             = "status"
)

const (
	ContractTypeBusiness = "Business"
)

// SortableFields can be used as sort_by on listings.
var SortableFields = []string{"created_at", "updated_at", FieldTitle, FieldStartDate, FieldEndDate, FieldStatus}

type Contract struct {
	ID                 string          `db:"id"`
	HotelID            string          `db:"hotel_id"`
	OwnerID            string          `db:"owner_id"`
	Title              string          `db:"title"`
	Description        string          `db:"description"`
	ContractType       string          `db:"contract_type"`
	Notes              string          `db:"notes"`
	PaymentTerms       string          `db:"payment_terms"`
	TermsAndConditions string          `db:"terms_and_conditions"`
	ContractFileURL    string          `db:"contract_file_url"`
	CommissionRate     decimal.Decimal `db:"commission_rate"`
	Currency           string          `db:"currency"`
	StartDate          time.Time       `db:"start_date"`
	EndDate            time.Time       `db:"end_date"`
	SignedDate         *time.Time      `db:"signed_date"`
	Status             Status          `db:"status"`
	model.Metadata
}

func (c Contract) Terms() Terms {
	return Terms{
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		CommissionRate: c.CommissionRate,
	}
}

// IsExpirable reports whether an active contract has run past its end date.
func (c Contract) IsExpirable(today time.Time) bool {
	return c.Status == StatusActive && c.EndDate.Before(today)
}

// Patch holds the editable draft fields. Nil fields are left untouched.
type Patch struct {
	Title              *string          `db:"title"`
	Description        *string          `db:"description"`
	ContractType       *string          `db:"contract_type"`
	Notes              *string          `db:"notes"`
	PaymentTerms       *string          `db:"payment_terms"`
	TermsAndConditions *string          `db:"terms_and_conditions"`
	ContractFileURL    *string          `db:"contract_file_url"`
	CommissionRate     *decimal.Decimal `db:"commission_rate"`
	Currency           *string          `db:"currency"`
	StartDate          *time.Time       `db:"start_date"`
	EndDate            *time.Time       `db:"end_date"`
}

func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// TouchesTerms reports whether the patch changes a field covered by the term invariants.
func (p Patch) TouchesTerms() bool {
	return p.CommissionRate != nil || p.StartDate != nil || p.EndDate != nil
}

// Apply returns c with the patch merged in.
func (p Patch) Apply(c Contract) Contract {
	assign(&c.Title, p.Title)
	assign(&c.Description, p.Description)
	assign(&c.ContractType, p.ContractType)
	assign(&c.Notes, p.Notes)
	assign(&c.PaymentTerms, p.PaymentTerms)
	assign(&c.TermsAndConditions, p.TermsAndConditions)
	assign(&c.ContractFileURL, p.ContractFileURL)
	assign(&c.CommissionRate, p.CommissionRate)
	assign(&c.Currency, p.Currency)
	assign(&c.StartDate, p.StartDate)
	assign(&c.EndDate, p.EndDate)

	return c
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ListFilter narrows listings. Empty fields are ignored.
type ListFilter struct {
	OwnerID string
	HotelID string
	Status  Status
}
