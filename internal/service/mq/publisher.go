package mq

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"wallet-mapper/internal/event"
	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/logger"
	"wallet-mapper/pkg/monitor"
	"wallet-mapper/pkg/safe_random"
)

// EventPublisher 发布交易审计事件
type EventPublisher struct {
	producer Producer
	topic    string
}

func NewEventPublisher(producer Producer, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

// PublishPrepared 以签名地址为分区键发送 TransactionPreparedEvent
func (p *EventPublisher) PublishPrepared(ctx context.Context, tx *model.Transaction) error {
	id, err := safe_random.UUID()
	if err != nil {
		return err
	}
	payload, err := json.Marshal(event.NewTransactionPreparedEvent(id, tx))
	if err != nil {
		return err
	}

	if err := p.producer.Publish(ctx, p.topic, tx.Signer.Address.String(), payload); err != nil {
		monitor.EventsPublishedTotal.WithLabelValues("error").Inc()
		return err
	}
	monitor.EventsPublishedTotal.WithLabelValues("ok").Inc()
	logger.Debug("transaction event published", zap.String("event_id", id), zap.String("kind", tx.Kind.String()))
	return nil
}
