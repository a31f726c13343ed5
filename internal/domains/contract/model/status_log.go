package model

import "time"

const (
	StatusLogTableName  = "contract_status_logs"
	StatusLogEntityName = "contract_status_log"

	FieldStatusLogID         = "id"
	FieldStatusLogContractID = "contract_id"
	FieldStatusLogCreatedAt  = "created_at"
)

// StatusLog is one committed status change. Rows are append only.
type StatusLog struct {
	ID         string    `db:"id"`
	ContractID string    `db:"contract_id"`
	FromStatus Status    `db:"from_status"`
	ToStatus   Status    `db:"to_status"`
	ActorID    string    `db:"actor_id"`
	ActorRole  string    `db:"actor_role"`
	Reason     string    `db:"reason"`
	CreatedAt  time.Time `db:"created_at"`
}

// StatusChange is a compare-and-set request: move ContractID from Expected to Next.
type StatusChange struct {
	ContractID string
	Expected   Status
	Next       Status
	SignedDate *time.Time
	ActorID    string
	ActorRole  string
	Reason     string
	At         time.Time
}

func (c StatusChange) ToLog(id string) StatusLog {
	return StatusLog{
		ID:         id,
		ContractID: c.ContractID,
		FromStatus: c.Expected,
		ToStatus:   c.Next,
		ActorID:    c.ActorID,
		ActorRole:  c.ActorRole,
		Reason:     c.Reason,
		CreatedAt:  c.At,
	}
}
