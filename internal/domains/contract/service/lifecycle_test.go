package service_test

import (
	"context"
	"hotelhub/config"
	otelMocks "hotelhub/infras/otel/mocks"
	"hotelhub/internal/domains/contract/event"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/internal/domains/contract/model/dto"
	"hotelhub/internal/domains/contract/repository/memory"
	"hotelhub/internal/domains/contract/service"
	"hotelhub/internal/domains/contract/transition"
	hotelMocks "hotelhub/internal/domains/hotel/mocks"
	hotelModel "hotelhub/internal/domains/hotel/model"
	"hotelhub/shared/failure"
	"hotelhub/shared/timezone"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type world struct {
	store *memory.Store
	svc   service.Contract
}

func newWorld(t *testing.T) *world {
	t.Helper()

	ctrl := gomock.NewController(t)
	hotels := hotelMocks.NewMockDirectory(ctrl)
	hotels.EXPECT().Get(gomock.Any(), hotelID).Return(hotelModel.Hotel{ID: hotelID, OwnerID: ownerID}, nil).AnyTimes()

	w := &world{store: memory.NewStore()}
	w.svc = w.at(t, hotels, clockAt)

	return w
}

// at returns a service over the same store whose clock reads now.
func (w *world) at(t *testing.T, hotels *hotelMocks.MockDirectory, now time.Time) service.Contract {
	t.Helper()

	if hotels == nil {
		hotels = hotelMocks.NewMockDirectory(gomock.NewController(t))
	}

	return service.New(w.store, hotels, event.Nop{}, timezone.FixedClock{At: now}, &config.Config{}, otelMocks.NewOtel())
}

func (w *world) createPending(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	created, err := w.svc.CreateDraft(ctx, owner, validCreate())
	require.NoError(t, err)

	_, err = w.svc.SubmitForApproval(ctx, owner, created.ID)
	require.NoError(t, err)

	return created.ID
}

func TestScenario_CommissionOutOfRange(t *testing.T) {
	w := newWorld(t)
	req := validCreate()
	req.CommissionRate = decimal.NewFromInt(25)

	_, err := w.svc.CreateDraft(context.Background(), owner, req)
	require.ErrorIs(t, err, failure.ErrValidation)
	assert.Equal(t, "commission_rate", failure.GetField(err))
}

func TestScenario_ActivatedContractIsFrozen(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	id := w.createPending(t)

	res, err := w.svc.Decide(ctx, admin, id, dto.DecideRequest{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, "active", res.Status)
	require.NotNil(t, res.SignedDate)
	assert.Equal(t, "2026-03-01", *res.SignedDate)

	title := "Renamed partnership"
	_, err = w.svc.UpdateDraftFields(ctx, owner, id, dto.UpdateContractRequest{Title: &title})
	assert.ErrorIs(t, err, failure.ErrPreconditionFailed)

	err = w.svc.DeleteDraft(ctx, owner, id)
	assert.ErrorIs(t, err, failure.ErrPreconditionFailed)
}

func TestDecisionKeepsRecordAuthorship(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	id := w.createPending(t)

	before, err := w.store.GetByID(ctx, id)
	require.NoError(t, err)

	_, err = w.svc.Decide(ctx, admin, id, dto.DecideRequest{Status: "active"})
	require.NoError(t, err)

	after, err := w.store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.ModifiedBy, after.ModifiedBy)

	history, err := w.svc.History(ctx, admin, id)
	require.NoError(t, err)
	require.NotEmpty(t, history.Entries)
	assert.Equal(t, admin.UserID, history.Entries[len(history.Entries)-1].ActorID)
}

func TestScenario_DecideOnCancelledContract(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	id := w.createPending(t)

	_, err := w.svc.Decide(ctx, admin, id, dto.DecideRequest{Status: "cancelled", Reason: "commission too high"})
	require.NoError(t, err)

	_, err = w.svc.Decide(ctx, admin, id, dto.DecideRequest{Status: "active"})
	assert.ErrorIs(t, err, failure.ErrInvalidTransition)
}

func TestScenario_ExpireIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	id := w.createPending(t)

	_, err := w.svc.Decide(ctx, admin, id, dto.DecideRequest{Status: "active"})
	require.NoError(t, err)

	later := w.at(t, nil, time.Date(2026, 4, 8, 10, 0, 0, 0, time.UTC))

	contract, err := w.store.GetByID(ctx, id)
	require.NoError(t, err)

	expired, err := later.Expire(ctx, contract)
	require.NoError(t, err)
	assert.Equal(t, model.StatusExpired, expired.Status)

	_, err = later.Expire(ctx, contract)
	assert.ErrorIs(t, err, failure.ErrStaleState, "a second sweep over the same snapshot loses the compare-and-set")

	current, err := w.store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expired, current)

	logs, err := w.store.ListStatusLogs(ctx, id)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestBoundary_StartDate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "today plus 7", start: "2026-03-08", end: "2026-04-07"},
		{name: "today plus 6", start: "2026-03-07", end: "2026-04-07", wantErr: true},
		{name: "start plus 30", start: "2026-03-10", end: "2026-04-09"},
		{name: "start plus 29", start: "2026-03-10", end: "2026-04-08", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			req := validCreate()
			req.StartDate = tt.start
			req.EndDate = tt.end

			_, err := w.svc.CreateDraft(context.Background(), owner, req)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrValidation)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSubmitForApproval_DraftPastItsWindow(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)

	created, err := w.svc.CreateDraft(ctx, owner, validCreate())
	require.NoError(t, err)

	nextDay := w.at(t, nil, clockAt.AddDate(0, 0, 1))

	_, err = nextDay.SubmitForApproval(ctx, owner, created.ID)
	require.ErrorIs(t, err, failure.ErrValidation)
	assert.Equal(t, "start_date", failure.GetField(err))
}

func TestDuplicateDraft(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)

	_, err := w.svc.CreateDraft(ctx, owner, validCreate())
	require.NoError(t, err)

	_, err = w.svc.CreateDraft(ctx, owner, validCreate())
	assert.ErrorIs(t, err, failure.ErrConflict)
}

func TestFieldsFrozenAfterSubmission(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)
	id := w.createPending(t)

	snapshot, err := w.store.GetByID(ctx, id)
	require.NoError(t, err)

	title := "Sneaky rename"
	rate := decimal.NewFromInt(6)
	end := "2026-06-01"
	attempts := []func() error{
		func() error {
			_, err := w.svc.UpdateDraftFields(ctx, owner, id, dto.UpdateContractRequest{Title: &title})

			return err
		},
		func() error {
			_, err := w.svc.UpdateDraftFields(ctx, owner, id, dto.UpdateContractRequest{CommissionRate: &rate, EndDate: &end})

			return err
		},
		func() error { return w.svc.DeleteDraft(ctx, owner, id) },
		func() error {
			_, err := w.svc.Decide(ctx, admin, id, dto.DecideRequest{Status: "active"})

			return err
		},
		func() error {
			_, err := w.svc.UpdateDraftFields(ctx, owner, id, dto.UpdateContractRequest{Title: &title})

			return err
		},
		func() error {
			_, err := w.svc.Decide(ctx, admin, id, dto.DecideRequest{Status: "terminated"})

			return err
		},
	}

	for _, attempt := range attempts {
		_ = attempt()
	}

	final, err := w.store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusTerminated, final.Status)

	final.Status = snapshot.Status
	final.SignedDate = snapshot.SignedDate
	final.UpdatedAt = snapshot.UpdatedAt
	assert.Equal(t, snapshot, final)
}

// loadBarrier holds every GetByID until all racing callers have read the record,
// so each decision is made against the same observed status.
type loadBarrier struct {
	*memory.Store
	loaded sync.WaitGroup
}

func (b *loadBarrier) GetByID(ctx context.Context, id string) (model.Contract, error) {
	contract, err := b.Store.GetByID(ctx, id)

	b.loaded.Done()
	b.loaded.Wait()

	return contract, err
}

func TestConcurrentDecisions(t *testing.T) {
	ctx := context.Background()

	for range 25 {
		w := newWorld(t)
		id := w.createPending(t)

		targets := []string{"active", "cancelled"}
		errs := make([]error, len(targets))

		barrier := &loadBarrier{Store: w.store}
		barrier.loaded.Add(len(targets))

		svc := service.New(barrier, hotelMocks.NewMockDirectory(gomock.NewController(t)), event.Nop{}, timezone.FixedClock{At: clockAt}, &config.Config{}, otelMocks.NewOtel())

		var wg sync.WaitGroup
		for i, target := range targets {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, errs[i] = svc.Decide(ctx, admin, id, dto.DecideRequest{Status: target})
			}()
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++

				continue
			}

			assert.ErrorIs(t, err, failure.ErrStaleState)
		}

		require.Equal(t, 1, winners)

		final, err := w.store.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Contains(t, []model.Status{model.StatusActive, model.StatusCancelled}, final.Status)

		logs, err := w.store.ListStatusLogs(ctx, id)
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	}
}

func TestStatusesStayReachable(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t)

	reachable := map[model.Status]bool{model.StatusDraft: true}
	for changed := true; changed; {
		changed = false

		for _, edge := range transition.Edges() {
			if reachable[edge.From] && !reachable[edge.To] {
				reachable[edge.To] = true
				changed = true
			}
		}
	}

	decisions := [][]string{
		{"active", "terminated"},
		{"cancelled", "active"},
		{"active", "cancelled", "active"},
		{"pending", "draft", "expired"},
	}

	for i, sequence := range decisions {
		req := validCreate()
		req.Title = req.Title + " " + string(rune('A'+i))

		created, err := w.svc.CreateDraft(ctx, owner, req)
		require.NoError(t, err)

		_, err = w.svc.SubmitForApproval(ctx, owner, created.ID)
		require.NoError(t, err)

		for _, target := range sequence {
			_, _ = w.svc.Decide(ctx, admin, created.ID, dto.DecideRequest{Status: target})

			current, err := w.store.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.True(t, reachable[current.Status], "status %s is not reachable from draft", current.Status)
		}

		logs, err := w.store.ListStatusLogs(ctx, created.ID)
		require.NoError(t, err)

		for _, entry := range logs {
			_, ok := transition.Actor(entry.FromStatus, entry.ToStatus)
			assert.True(t, ok, "logged edge %s -> %s is not in the table", entry.FromStatus, entry.ToStatus)
		}
	}
}
