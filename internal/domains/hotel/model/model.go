package model

import "hotelhub/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID       = "id"
	FieldOwnerID  = "owner_id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldActive   = "active"
)

type Hotel struct {
	ID       string `db:"id"`
	OwnerID  string `db:"owner_id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Active   bool   `db:"active"`
	model.Metadata
}

func (h Hotel) IsOwnedBy(userID string) bool {
	return h.OwnerID != "" && h.OwnerID == userID
}
