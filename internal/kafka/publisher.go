package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shenikar/wildfire_notifier/internal/models"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter - часть kafka-go Writer, нужная издателю
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// FirePublisher публикует обновления пожаров в топик Kafka.
// Ключ сообщения - uniqueFireId, поэтому обновления одного пожара идут в одну партицию.
type FirePublisher struct {
	writer messageWriter
}

func NewFirePublisher(brokers []string, topic string) *FirePublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &FirePublisher{writer: w}
}

func (p *FirePublisher) PublishFires(ctx context.Context, fires []*models.FireRecord) error {
	if len(fires) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(fires))
	for _, fire := range fires {
		msg, err := serializeFire(fire)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish fire updates: %w", err)
	}
	return nil
}

func (p *FirePublisher) Close() error {
	return p.writer.Close()
}

func serializeFire(fire *models.FireRecord) (kafkago.Message, error) {
	data, err := json.Marshal(fire)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize fire record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(fire.UniqueFireID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "active", Value: []byte(strconv.FormatBool(fire.IsActive()))},
			{Key: "last_update", Value: []byte(strconv.FormatInt(fire.LastUpdate, 10))},
		},
	}, nil
}
