package dto_test

import (
	"hotelhub/internal/domains/contract/model"
	"hotelhub/internal/domains/contract/model/dto"
	"hotelhub/shared/failure"
	gModel "hotelhub/shared/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContractRequest_ToModel(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	req := dto.CreateContractRequest{
		Title:          "Summer partnership",
		ContractType:   model.ContractTypeBusiness,
		CommissionRate: decimal.RequireFromString("12.5"),
		StartDate:      "2026-03-08",
		EndDate:        "2026-04-07",
	}

	got, err := req.ToModel("owner-1", "hotel-1", "Phần trăm", now)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Equal(t, "hotel-1", got.HotelID)
	assert.Equal(t, "Phần trăm", got.Currency)
	assert.Equal(t, model.StatusDraft, got.Status)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, now, got.CreatedAt)

	req.Currency = "USD"
	got, err = req.ToModel("owner-1", "hotel-1", "Phần trăm", now)
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Currency)

	req.EndDate = "2026-02-30"
	_, err = req.ToModel("owner-1", "hotel-1", "Phần trăm", now)
	require.ErrorIs(t, err, failure.ErrValidation)
	assert.Equal(t, "end_date", failure.GetField(err))
}

func TestUpdateContractRequest_ToPatch(t *testing.T) {
	title := "Winter partnership"
	start := "2026-04-01"

	patch, err := (&dto.UpdateContractRequest{Title: &title, StartDate: &start}).ToPatch()
	require.NoError(t, err)
	require.NotNil(t, patch.StartDate)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), *patch.StartDate)
	assert.Equal(t, &title, patch.Title)
	assert.Nil(t, patch.EndDate)
	assert.True(t, patch.TouchesTerms())

	empty, err := (&dto.UpdateContractRequest{}).ToPatch()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	bad := "tomorrow"
	_, err = (&dto.UpdateContractRequest{EndDate: &bad}).ToPatch()
	assert.ErrorIs(t, err, failure.ErrValidation)
}

func TestContractResponse_FromModel(t *testing.T) {
	signed := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	contract := model.Contract{
		ID:             "c-1",
		Title:          "Summer partnership",
		CommissionRate: decimal.NewFromInt(10),
		StartDate:      time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC),
		SignedDate:     &signed,
		Status:         model.StatusActive,
		Metadata:       gModel.Metadata{CreatedBy: "owner-1", ModifiedBy: "admin-1"},
	}

	var res dto.ContractResponse
	res.FromModel(contract)

	assert.Equal(t, "2026-03-08", res.StartDate)
	assert.Equal(t, "2026-04-07", res.EndDate)
	require.NotNil(t, res.SignedDate)
	assert.Equal(t, "2026-03-02", *res.SignedDate)
	assert.Equal(t, "active", res.Status)
	assert.Equal(t, []string{}, res.AllowedTransitions)
	assert.Equal(t, "admin-1", res.ModifiedBy)

	res.WithTransitions([]model.Status{model.StatusCancelled, model.StatusTerminated})
	assert.Equal(t, []string{"cancelled", "terminated"}, res.AllowedTransitions)
}

func TestGetContractsResponse_FromModels(t *testing.T) {
	var res dto.GetContractsResponse
	res.FromModels([]model.Contract{{ID: "c-1"}, {ID: "c-2"}}, 21, 10)

	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 21, res.TotalData)
	assert.Len(t, res.Contracts, 2)
}

func TestGetHistoryResponse_FromModels(t *testing.T) {
	var res dto.GetHistoryResponse
	res.FromModels("c-1", []model.StatusLog{
		{FromStatus: model.StatusDraft, ToStatus: model.StatusPending, ActorID: "owner-1", ActorRole: "hotel_owner"},
		{FromStatus: model.StatusPending, ToStatus: model.StatusCancelled, ActorID: "admin-1", ActorRole: "admin", Reason: "rate too high"},
	})

	assert.Equal(t, "c-1", res.ContractID)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "cancelled", res.Entries[1].ToStatus)
	assert.Equal(t, "rate too high", res.Entries[1].Reason)
}
