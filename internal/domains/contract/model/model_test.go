package model_test

import (
	"hotelhub/internal/domains/contract/model"
	"hotelhub/shared/failure"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func TestTermsValidate(t *testing.T) {
	tests := []struct {
		name      string
		terms     model.Terms
		wantField string
	}{
		{
			name:  "start exactly seven days out and end exactly thirty days later",
			terms: model.Terms{StartDate: day(7), EndDate: day(37), CommissionRate: decimal.NewFromInt(10)},
		},
		{
			name:      "start six days out",
			terms:     model.Terms{StartDate: day(6), EndDate: day(60), CommissionRate: decimal.NewFromInt(10)},
			wantField: model.FieldStartDate,
		},
		{
			name:      "end twenty nine days after start",
			terms:     model.Terms{StartDate: day(7), EndDate: day(36), CommissionRate: decimal.NewFromInt(10)},
			wantField: model.FieldEndDate,
		},
		{
			name:  "commission lower bound",
			terms: model.Terms{StartDate: day(10), EndDate: day(40), CommissionRate: decimal.NewFromInt(5)},
		},
		{
			name:  "commission upper bound",
			terms: model.Terms{StartDate: day(10), EndDate: day(40), CommissionRate: decimal.NewFromInt(20)},
		},
		{
			name:      "commission just below range",
			terms:     model.Terms{StartDate: day(10), EndDate: day(40), CommissionRate: decimal.RequireFromString("4.99")},
			wantField: model.FieldCommissionRate,
		},
		{
			name:      "commission just above range",
			terms:     model.Terms{StartDate: day(10), EndDate: day(40), CommissionRate: decimal.RequireFromString("20.01")},
			wantField: model.FieldCommissionRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.terms.Validate(today)
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, failure.ErrValidation)
			assert.Equal(t, tt.wantField, failure.GetField(err))
		})
	}
}

func TestStatus(t *testing.T) {
	for _, s := range model.Statuses {
		assert.True(t, s.IsValid(), s)
	}

	assert.False(t, model.Status("rejected").IsValid())
	assert.True(t, model.StatusExpired.IsTerminal())
	assert.True(t, model.StatusTerminated.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusActive.IsTerminal())
}

func TestIsExpirable(t *testing.T) {
	c := model.Contract{Status: model.StatusActive, EndDate: day(-1)}
	assert.True(t, c.IsExpirable(today))

	c.EndDate = today
	assert.False(t, c.IsExpirable(today), "a contract ending today is still active today")

	c = model.Contract{Status: model.StatusPending, EndDate: day(-10)}
	assert.False(t, c.IsExpirable(today))
}

func TestPatchApply(t *testing.T) {
	title := "Winter allotment"
	rate := decimal.NewFromInt(15)

	patch := model.Patch{Title: &title, CommissionRate: &rate}
	assert.False(t, patch.IsEmpty())
	assert.True(t, patch.TouchesTerms())

	merged := patch.Apply(model.Contract{ID: "c-1", Title: "Summer allotment", Notes: "keep", CommissionRate: decimal.NewFromInt(10)})

	assert.Equal(t, "c-1", merged.ID)
	assert.Equal(t, title, merged.Title)
	assert.Equal(t, "keep", merged.Notes)
	assert.True(t, rate.Equal(merged.CommissionRate))

	assert.True(t, model.Patch{}.IsEmpty())
	assert.False(t, model.Patch{Title: &title}.TouchesTerms())
}
