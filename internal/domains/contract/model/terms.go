package model

import (
	"hotelhub/shared/failure"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinLeadDays     = 7
	MinDurationDays = 30
)

var (
	MinCommissionRate = decimal.NewFromInt(5)
	MaxCommissionRate = decimal.NewFromInt(20)
)

// Terms are the fields the creation and submission invariants apply to.
type Terms struct {
	StartDate      time.Time
	EndDate        time.Time
	CommissionRate decimal.Decimal
}

// Validate checks the term invariants against today. Dates are calendar days.
func (t Terms) Validate(today time.Time) error {
	if t.CommissionRate.LessThan(MinCommissionRate) || t.CommissionRate.GreaterThan(MaxCommissionRate) {
		return failure.Validation(FieldCommissionRate, "commission_rate must be between 5 and 20") //nolint:wrapcheck
	}

	earliestStart := today.AddDate(0, 0, MinLeadDays)
	if t.StartDate.Before(earliestStart) {
		return failure.Validation(FieldStartDate, "start_date must be at least 7 days from today ("+earliestStart.Format("2006-01-02")+")") //nolint:wrapcheck
	}

	earliestEnd := t.StartDate.AddDate(0, 0, MinDurationDays)
	if t.EndDate.Before(earliestEnd) {
		return failure.Validation(FieldEndDate, "end_date must be at least 30 days after start_date ("+earliestEnd.Format("2006-01-02")+")") //nolint:wrapcheck
	}

	return nil
}
