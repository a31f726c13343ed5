// Package transition holds the closed table of contract status transitions
// and the actor kind allowed to perform each one.
package transition

import (
	"cmp"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/shared/constant"
	"hotelhub/shared/failure"
	"slices"
)

type Edge struct {
	From model.Status
	To   model.Status
}

var table = map[Edge]string{
	{From: model.StatusDraft, To: model.StatusPending}:     constant.RoleHotelOwner,
	{From: model.StatusPending, To: model.StatusActive}:    constant.RoleAdmin,
	{From: model.StatusPending, To: model.StatusCancelled}: constant.RoleAdmin,
	{From: model.StatusActive, To: model.StatusTerminated}: constant.RoleAdmin,
	{From: model.StatusActive, To: model.StatusCancelled}:  constant.RoleAdmin,
	{From: model.StatusActive, To: model.StatusExpired}:    constant.RoleSystem,
}

// Check reports whether role may move a contract from one status to another.
// An edge missing from the table is an invalid transition. An edge owned by another actor kind is forbidden.
func Check(from, to model.Status, role string) error {
	actor, ok := table[Edge{From: from, To: to}]
	if !ok {
		return failure.InvalidTransition(from.String(), to.String()) //nolint:wrapcheck
	}

	if actor != role {
		return failure.Forbidden("only " + actor + " may move a contract from " + from.String() + " to " + to.String()) //nolint:wrapcheck
	}

	return nil
}

// Actor returns the actor kind that owns an edge.
func Actor(from, to model.Status) (string, bool) {
	actor, ok := table[Edge{From: from, To: to}]

	return actor, ok
}

// Targets lists the statuses role may move a contract to from the given status.
func Targets(from model.Status, role string) []model.Status {
	targets := []model.Status{}

	for edge, actor := range table {
		if edge.From == from && actor == role {
			targets = append(targets, edge.To)
		}
	}

	slices.Sort(targets)

	return targets
}

// Edges returns every legal edge in a stable order.
func Edges() []Edge {
	edges := make([]Edge, 0, len(table))
	for edge := range table {
		edges = append(edges, edge)
	}

	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})

	return edges
}
