// Package policy decides who may do what to a contract. It never touches storage.
package policy

import (
	"hotelhub/internal/domains/contract/model"
	"hotelhub/shared/failure"
	"hotelhub/shared/principal"
)

type Action string

const (
	ActionCreate     Action = "create"
	ActionRead       Action = "read"
	ActionList       Action = "list"
	ActionEditFields Action = "edit_fields"
	ActionDelete     Action = "delete"
	ActionSubmit     Action = "submit_for_approval"
	ActionDecide     Action = "admin_decide"
	ActionExpire     Action = "expire"
)

// Authorize returns a forbidden failure when p may not perform action on contract.
// contract may be nil for actions that are decided on the role alone.
func Authorize(p principal.Principal, action Action, contract *model.Contract) error {
	switch action {
	case ActionCreate, ActionEditFields, ActionDelete, ActionSubmit:
		if !p.IsHotelOwner() {
			return deny(action)
		}

		if contract != nil && contract.OwnerID != p.UserID {
			return deny(action)
		}

		return nil
	case ActionRead:
		if p.IsAdmin() {
			return nil
		}

		if p.IsHotelOwner() && (contract == nil || contract.OwnerID == p.UserID) {
			return nil
		}

		return deny(action)
	case ActionList:
		if p.IsAdmin() || p.IsHotelOwner() {
			return nil
		}

		return deny(action)
	case ActionDecide:
		if p.IsAdmin() {
			return nil
		}

		return deny(action)
	case ActionExpire:
		if p.IsSystem() {
			return nil
		}

		return deny(action)
	default:
		return deny(action)
	}
}

// Missing is the error a principal gets for a contract id that does not exist.
// Only admins learn that the record is absent.
func Missing(p principal.Principal) error {
	if p.IsAdmin() {
		return failure.NotFound("contract not found") //nolint:wrapcheck
	}

	return failure.ResourceRestrictedError
}

func deny(action Action) error {
	return failure.Forbidden("you are not allowed to " + string(action) + " this contract") //nolint:wrapcheck
}
