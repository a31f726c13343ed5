// Package memory is an in-process contract store with the same conditional-write semantics
// as the PostgreSQL repository. It backs tests and local runs without a database.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/internal/domains/contract/repository"
	"hotelhub/shared/constant"
	gDto "hotelhub/shared/dto"
	"hotelhub/shared/failure"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	contracts map[string]model.Contract
	logs      map[string][]model.StatusLog
}

var _ repository.Contract = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		contracts: make(map[string]model.Contract),
		logs:      make(map[string][]model.StatusLog),
	}
}

func (s *Store) Insert(_ context.Context, contract model.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contracts[contract.ID]; exists {
		return fmt.Errorf("failed to insert data (%s): duplicate id %s", model.EntityName, contract.ID)
	}

	if s.hasOpenDraft(contract.OwnerID, contract.HotelID, contract.Title, contract.ID) {
		return failure.Conflict("an open draft with the same title already exists for this hotel") //nolint:wrapcheck
	}

	contract.Status = model.StatusDraft
	contract.SignedDate = nil
	s.contracts[contract.ID] = contract

	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (model.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contract, ok := s.contracts[id]
	if !ok {
		return model.Contract{}, failure.NotFound("contract not found") //nolint:wrapcheck
	}

	return contract, nil
}

func (s *Store) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Contract, error) {
	s.mu.RLock()
	matched := s.match(filter)
	s.mu.RUnlock()

	sortContracts(matched, params.SortBy, params.SortDir)

	return paginate(matched, params.Page, params.Limit), nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string, params gDto.QueryParams) ([]model.Contract, error) {
	return s.List(ctx, params, model.ListFilter{OwnerID: ownerID})
}

func (s *Store) ListByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) ([]model.Contract, error) {
	return s.List(ctx, params, model.ListFilter{HotelID: hotelID})
}

func (s *Store) ListByStatus(ctx context.Context, status model.Status, params gDto.QueryParams) ([]model.Contract, error) {
	return s.List(ctx, params, model.ListFilter{Status: status})
}

func (s *Store) Count(_ context.Context, filter model.ListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.match(filter)), nil
}

func (s *Store) ListExpirable(_ context.Context, today time.Time, limit int) ([]model.Contract, error) {
	s.mu.RLock()
	expirable := []model.Contract{}

	for _, contract := range s.contracts {
		if contract.IsExpirable(today) {
			expirable = append(expirable, contract)
		}
	}
	s.mu.RUnlock()

	sortContracts(expirable, model.FieldEndDate, "ASC")

	return paginate(expirable, 0, limit), nil
}

func (s *Store) UpdateFields(_ context.Context, id string, patch model.Patch, actor string, now time.Time) (model.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.contracts[id]
	if !ok {
		return model.Contract{}, failure.NotFound("contract not found") //nolint:wrapcheck
	}

	if current.Status != model.StatusDraft {
		return model.Contract{}, failure.PreconditionFailed(fmt.Sprintf("contract is %s, only drafts can be changed", current.Status)) //nolint:wrapcheck
	}

	updated := patch.Apply(current)
	if s.hasOpenDraft(updated.OwnerID, updated.HotelID, updated.Title, updated.ID) {
		return model.Contract{}, failure.Conflict("an open draft with the same title already exists for this hotel") //nolint:wrapcheck
	}

	updated.UpdatedAt = now
	updated.ModifiedBy = actor
	s.contracts[id] = updated

	return updated, nil
}

func (s *Store) CompareAndSetStatus(_ context.Context, change model.StatusChange) (model.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.contracts[change.ContractID]
	if !ok {
		return model.Contract{}, failure.NotFound("contract not found") //nolint:wrapcheck
	}

	if current.Status != change.Expected {
		return model.Contract{}, failure.StaleState(change.ContractID, change.Expected.String(), current.Status.String()) //nolint:wrapcheck
	}

	current.Status = change.Next
	current.UpdatedAt = change.At

	if change.SignedDate != nil {
		signed := *change.SignedDate
		current.SignedDate = &signed
	}

	s.contracts[change.ContractID] = current
	s.logs[change.ContractID] = append(s.logs[change.ContractID], change.ToLog(uuid.NewString()))

	return current, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.contracts[id]
	if !ok {
		return failure.NotFound("contract not found") //nolint:wrapcheck
	}

	if current.Status != model.StatusDraft {
		return failure.PreconditionFailed(fmt.Sprintf("contract is %s, only drafts can be changed", current.Status)) //nolint:wrapcheck
	}

	delete(s.contracts, id)

	return nil
}

func (s *Store) ListStatusLogs(_ context.Context, contractID string) ([]model.StatusLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]model.StatusLog, len(s.logs[contractID]))
	copy(logs, s.logs[contractID])

	return logs, nil
}

// hasOpenDraft mirrors the partial unique index on (owner_id, hotel_id, title) for drafts.
func (s *Store) hasOpenDraft(ownerID, hotelID, title, exceptID string) bool {
	for id, contract := range s.contracts {
		if id == exceptID || contract.Status != model.StatusDraft {
			continue
		}

		if contract.OwnerID == ownerID && contract.HotelID == hotelID && contract.Title == title {
			return true
		}
	}

	return false
}

func (s *Store) match(filter model.ListFilter) []model.Contract {
	matched := []model.Contract{}

	for _, contract := range s.contracts {
		if filter.OwnerID != "" && contract.OwnerID != filter.OwnerID {
			continue
		}

		if filter.HotelID != "" && contract.HotelID != filter.HotelID {
			continue
		}

		if filter.Status != "" && contract.Status != filter.Status {
			continue
		}

		matched = append(matched, contract)
	}

	return matched
}

func sortContracts(contracts []model.Contract, sortBy, sortDir string) {
	desc := strings.EqualFold(sortDir, "DESC")

	slices.SortFunc(contracts, func(a, b model.Contract) int {
		order := compareBy(a, b, sortBy)
		if desc {
			order = -order
		}

		return cmp.Or(order, cmp.Compare(a.ID, b.ID))
	})
}

func compareBy(a, b model.Contract, field string) int {
	switch field {
	case model.FieldTitle:
		return cmp.Compare(a.Title, b.Title)
	case model.FieldStatus:
		return cmp.Compare(a.Status, b.Status)
	case model.FieldStartDate:
		return a.StartDate.Compare(b.StartDate)
	case model.FieldEndDate:
		return a.EndDate.Compare(b.EndDate)
	case constant.FieldUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func paginate(contracts []model.Contract, page, limit int) []model.Contract {
	if limit <= 0 {
		return contracts
	}

	offset := 0
	if page > 0 {
		offset = (page - 1) * limit
	}

	if offset >= len(contracts) {
		return []model.Contract{}
	}

	return contracts[offset:min(offset+limit, len(contracts))]
}
