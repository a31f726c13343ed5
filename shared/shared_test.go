package shared_test

import (
	"hotelhub/shared"
	"hotelhub/shared/constant"
	"hotelhub/shared/dto"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no rows", total: 0, limit: 10, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial page", total: 21, limit: 10, expected: 3},
		{name: "invalid limit", total: 5, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		Title          *string          `db:"title"`
		Notes          *string          `db:"notes"`
		CommissionRate *decimal.Decimal `db:"commission_rate"`
		Ignored        *string          `db:"-"`
		NoTag          *string
	}

	title := "Summer allotment"
	empty := ""
	rate := decimal.RequireFromString("12.5")
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	result := shared.TransformFields(patch{
		Title:          &title,
		Notes:          &empty,
		CommissionRate: &rate,
		Ignored:        &title,
		NoTag:          &title,
	}, "owner-1", now)

	assert.Equal(t, map[string]any{
		"title":                  "Summer allotment",
		"notes":                  "",
		"commission_rate":        rate,
		constant.FieldUpdatedAt:  now,
		constant.FieldModifiedBy: "owner-1",
	}, result)
}

func TestTransformFieldsEmptyPatch(t *testing.T) {
	type patch struct {
		Title *string `db:"title"`
	}

	result := shared.TransformFields(patch{}, "owner-1", time.Now())

	assert.Len(t, result, 2)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("c-1", "id", "contracts")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "c-1", Operator: dto.FilterOperatorEq, Table: "contracts"},
		},
	}, result)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey(constant.CacheKeyRateLimit, "10.0.0.1", "curl"))
}
