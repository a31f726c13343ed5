package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelhub/config"
	"hotelhub/infras/kafka"
	"hotelhub/infras/otel"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

// StatusChanged is emitted after every committed status change.
type StatusChanged struct {
	ContractID string    `json:"contract_id"`
	HotelID    string    `json:"hotel_id"`
	OwnerID    string    `json:"owner_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewStatusChanged(contract model.Contract, change model.StatusChange) StatusChanged {
	return StatusChanged{
		ContractID: contract.ID,
		HotelID:    contract.HotelID,
		OwnerID:    contract.OwnerID,
		FromStatus: change.Expected.String(),
		ToStatus:   change.Next.String(),
		ActorID:    change.ActorID,
		ActorRole:  change.ActorRole,
		Reason:     change.Reason,
		OccurredAt: change.At,
	}
}

type Publisher interface {
	PublishStatusChanged(ctx context.Context, evt StatusChanged) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// New returns a Kafka backed publisher, or a no-op one when Kafka is disabled.
func New(cfg *config.Config, client kafka.Client, otl otel.Otel) Publisher {
	if !cfg.Kafka.Enable || client == nil {
		log.Info().Msg("kafka disabled, contract status events are not published")

		return Nop{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.ContractStatus,
		otel:   otl,
	}
}

func (p *kafkaPublisher) PublishStatusChanged(ctx context.Context, evt StatusChanged) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".PublishStatusChanged")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("contract_id", evt.ContractID)
	scope.SetAttribute("to_status", evt.ToStatus)

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: evt.ContractID, Value: evt})
	if err != nil {
		log.Error().Err(err).Str("contractID", evt.ContractID).Msg("failed to publish contract status event")

		return fmt.Errorf("failed to publish contract status event: %w", err)
	}

	return nil
}

// Nop drops events.
type Nop struct{}

func (Nop) PublishStatusChanged(_ context.Context, evt StatusChanged) error {
	log.Debug().
		Str("contractID", evt.ContractID).
		Str("from", evt.FromStatus).
		Str("to", evt.ToStatus).
		Msg("contract status changed")

	return nil
}
