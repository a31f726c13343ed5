package principal

import (
	"context"
	"hotelhub/shared/constant"
)

// Principal is the resolved caller of an operation.
type Principal struct {
	UserID string
	Role   string
}

// System is the actor used by background jobs.
func System() Principal {
	return Principal{UserID: constant.SystemActorID, Role: constant.RoleSystem}
}

func (p Principal) IsAdmin() bool {
	return p.Role == constant.RoleAdmin
}

func (p Principal) IsHotelOwner() bool {
	return p.Role == constant.RoleHotelOwner
}

func (p Principal) IsSystem() bool {
	return p.Role == constant.RoleSystem
}

// FromContext reads the principal set by the auth middleware.
func FromContext(ctx context.Context) (Principal, bool) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if userID == "" || role == "" {
		return Principal{}, false
	}

	return Principal{UserID: userID, Role: role}, true
}

// WithPrincipal stores p in ctx under the same keys the auth middleware uses.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, p.UserID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, p.Role)
}
