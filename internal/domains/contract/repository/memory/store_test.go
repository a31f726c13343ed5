package memory_test

import (
	"context"
	"errors"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/internal/domains/contract/repository/memory"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"
	gModel "hotelhub/shared/model"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newContract(id, title string) model.Contract {
	return model.Contract{
		ID:             id,
		HotelID:        "hotel-1",
		OwnerID:        "owner-1",
		Title:          title,
		ContractType:   model.ContractTypeBusiness,
		CommissionRate: decimal.NewFromInt(10),
		StartDate:      day(2026, 4, 1),
		EndDate:        day(2026, 6, 1),
		Status:         model.StatusActive,
		Metadata:       gModel.NewMetadata(now, "owner-1"),
	}
}

func TestInsert(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Insert(ctx, newContract("c-1", "Summer deal")))

	got, err := store.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, got.Status, "insert always starts in draft")

	err = store.Insert(ctx, newContract("c-2", "Summer deal"))
	assert.ErrorIs(t, err, failure.ErrConflict)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, failure.ErrNotFound)
}

func TestInsert_DuplicateTitleAllowedOnceSubmitted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Insert(ctx, newContract("c-1", "Summer deal")))
	_, err := store.CompareAndSetStatus(ctx, model.StatusChange{
		ContractID: "c-1", Expected: model.StatusDraft, Next: model.StatusPending, At: now,
	})
	require.NoError(t, err)

	assert.NoError(t, store.Insert(ctx, newContract("c-2", "Summer deal")))
}

func TestUpdateFields(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Insert(ctx, newContract("c-1", "Summer deal")))

	title := "Winter deal"
	later := now.Add(time.Hour)

	updated, err := store.UpdateFields(ctx, "c-1", model.Patch{Title: &title}, "owner-1", later)
	require.NoError(t, err)
	assert.Equal(t, "Winter deal", updated.Title)
	assert.Equal(t, later, updated.UpdatedAt)

	_, err = store.UpdateFields(ctx, "missing", model.Patch{Title: &title}, "owner-1", later)
	assert.ErrorIs(t, err, failure.ErrNotFound)

	_, err = store.CompareAndSetStatus(ctx, model.StatusChange{
		ContractID: "c-1", Expected: model.StatusDraft, Next: model.StatusPending, At: later,
	})
	require.NoError(t, err)

	_, err = store.UpdateFields(ctx, "c-1", model.Patch{Title: &title}, "owner-1", later)
	assert.ErrorIs(t, err, failure.ErrPreconditionFailed)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Insert(ctx, newContract("c-1", "Summer deal")))
	require.NoError(t, store.Insert(ctx, newContract("c-2", "Autumn deal")))

	_, err := store.CompareAndSetStatus(ctx, model.StatusChange{
		ContractID: "c-2", Expected: model.StatusDraft, Next: model.StatusPending, At: now,
	})
	require.NoError(t, err)

	assert.NoError(t, store.Delete(ctx, "c-1"))
	assert.ErrorIs(t, store.Delete(ctx, "c-1"), failure.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "c-2"), failure.ErrPreconditionFailed)
}

func TestCompareAndSetStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Insert(ctx, newContract("c-1", "Summer deal")))

	_, err := store.CompareAndSetStatus(ctx, model.StatusChange{
		ContractID: "c-1", Expected: model.StatusPending, Next: model.StatusActive, At: now,
	})
	require.ErrorIs(t, err, failure.ErrStaleState)
	assert.Contains(t, err.Error(), `"draft"`)

	_, err = store.CompareAndSetStatus(ctx, model.StatusChange{
		ContractID: "missing", Expected: model.StatusDraft, Next: model.StatusPending, At: now,
	})
	assert.ErrorIs(t, err, failure.ErrNotFound)

	signed := day(2026, 3, 1)
	_, err = store.CompareAndSetStatus(ctx, model.StatusChange{
		ContractID: "c-1", Expected: model.StatusDraft, Next: model.StatusPending, ActorID: "owner-1", At: now,
	})
	require.NoError(t, err)

	got, err := store.CompareAndSetStatus(ctx, model.StatusChange{
		ContractID: "c-1", Expected: model.StatusPending, Next: model.StatusActive,
		SignedDate: &signed, ActorID: "admin-1", ActorRole: "admin", At: now,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, got.Status)
	require.NotNil(t, got.SignedDate)
	assert.Equal(t, signed, *got.SignedDate)
	assert.Equal(t, "owner-1", got.ModifiedBy)

	history := logs(t, store, "c-1")
	require.Len(t, history, 2)
	assert.Equal(t, model.StatusDraft, history[0].FromStatus)
	assert.Equal(t, model.StatusActive, history[1].ToStatus)
	assert.Equal(t, "admin", history[1].ActorRole)
	assert.Equal(t, "admin-1", history[1].ActorID)
}

func logs(t *testing.T, store *memory.Store, id string) []model.StatusLog {
	t.Helper()

	history, err := store.ListStatusLogs(context.Background(), id)
	require.NoError(t, err)

	return history
}

func TestCompareAndSetStatus_ConcurrentDecisions(t *testing.T) {
	ctx := context.Background()

	for range 50 {
		store := memory.NewStore()
		require.NoError(t, store.Insert(ctx, newContract("c-1", "Summer deal")))
		_, err := store.CompareAndSetStatus(ctx, model.StatusChange{
			ContractID: "c-1", Expected: model.StatusDraft, Next: model.StatusPending, At: now,
		})
		require.NoError(t, err)

		targets := []model.Status{model.StatusActive, model.StatusCancelled}
		errs := make([]error, len(targets))

		var wg sync.WaitGroup
		for i, target := range targets {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, errs[i] = store.CompareAndSetStatus(ctx, model.StatusChange{
					ContractID: "c-1", Expected: model.StatusPending, Next: target, At: now,
				})
			}()
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++

				continue
			}

			assert.True(t, errors.Is(err, failure.ErrStaleState), "loser must see stale state, got %v", err)
		}

		assert.Equal(t, 1, winners)

		got, err := store.GetByID(ctx, "c-1")
		require.NoError(t, err)
		assert.Contains(t, targets, got.Status)

		logs, err := store.ListStatusLogs(ctx, "c-1")
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	}
}

func TestListExpirable(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	today := day(2026, 6, 10)

	ends := map[string]time.Time{
		"c-1": day(2026, 6, 9),
		"c-2": day(2026, 6, 1),
		"c-3": day(2026, 6, 10),
		"c-4": day(2026, 5, 20),
	}

	for id, end := range ends {
		contract := newContract(id, "Deal "+id)
		contract.EndDate = end
		require.NoError(t, store.Insert(ctx, contract))

		for _, step := range [][2]model.Status{{model.StatusDraft, model.StatusPending}, {model.StatusPending, model.StatusActive}} {
			_, err := store.CompareAndSetStatus(ctx, model.StatusChange{ContractID: id, Expected: step[0], Next: step[1], At: now})
			require.NoError(t, err)
		}
	}

	expirable, err := store.ListExpirable(ctx, today, 10)
	require.NoError(t, err)
	require.Len(t, expirable, 3, "a contract ending today is not yet expirable")
	assert.Equal(t, "c-4", expirable[0].ID)
	assert.Equal(t, "c-2", expirable[1].ID)
	assert.Equal(t, "c-1", expirable[2].ID)

	capped, err := store.ListExpirable(ctx, today, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	for i, id := range []string{"c-1", "c-2", "c-3"} {
		contract := newContract(id, "Deal "+id)
		contract.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		if id == "c-3" {
			contract.OwnerID = "owner-2"
			contract.HotelID = "hotel-2"
		}

		require.NoError(t, store.Insert(ctx, contract))
	}

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	owned, err := store.ListByOwner(ctx, "owner-1", params)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "c-2", owned[0].ID)

	byHotel, err := store.ListByHotel(ctx, "hotel-2", params)
	require.NoError(t, err)
	assert.Len(t, byHotel, 1)

	drafts, err := store.ListByStatus(ctx, model.StatusDraft, params)
	require.NoError(t, err)
	assert.Len(t, drafts, 3)

	page2, err := store.List(ctx, gDto.QueryParams{Page: 2, Limit: 2, SortBy: "created_at", SortDir: "ASC"}, model.ListFilter{})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "c-3", page2[0].ID)

	count, err := store.Count(ctx, model.ListFilter{OwnerID: "owner-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
