package kafkabroker

import (
	"context"
	"time"

	"github.com/Egor213/EndpointLog/pkg/logger"
	"github.com/segmentio/kafka-go"
)

const (
	defaultWriteTimeout = 5 * time.Second
	batchTimeout        = 10 * time.Millisecond
)

var lg = logger.Component("kafka")

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg ProducerConfig) *Producer {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           timeout,
		BatchSize:              1,
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{
		writer: w,
		topic:  cfg.Topic,
	}
}

// SendMessage keys messages so that signals for one view stay ordered
// within a partition.
func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}
	err := p.writer.WriteMessages(ctx, msg)
	if err != nil {
		lg.WithField("topic", p.topic).Errorf("Failed to send message: %v", err)
		return err
	}
	lg.WithField("topic", p.topic).Debugf("Message sent: key=%s value=%s", key, value)
	return nil
}

func (p *Producer) Close() error {
	lg.Info("Closing Kafka producer...")
	return p.writer.Close()
}
