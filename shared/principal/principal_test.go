package principal_test

import (
	"context"
	"hotelhub/shared/constant"
	"hotelhub/shared/principal"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	_, ok := principal.FromContext(context.Background())
	assert.False(t, ok)

	ctx := principal.WithPrincipal(context.Background(), principal.Principal{UserID: "owner-1", Role: constant.RoleHotelOwner})

	p, ok := principal.FromContext(ctx)
	assert.True(t, ok)
	assert.True(t, p.IsHotelOwner())
	assert.False(t, p.IsAdmin())
	assert.Equal(t, "owner-1", p.UserID)
}

func TestSystem(t *testing.T) {
	p := principal.System()

	assert.True(t, p.IsSystem())
	assert.Equal(t, constant.SystemActorID, p.UserID)
}
