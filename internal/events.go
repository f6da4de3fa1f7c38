package internal

import (
	"encoding/json"
	"strings"

	"github.com/IBM/sarama"

	"paybox/config"
	"paybox/entity"
)

// Producer publishes request-built events to the message broker for
// downstream consumers (accounting, notification).
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(conf *config.Config) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true

	brokers := strings.Split(conf.Kafka.Brokers, ",")
	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, err
	}
	return &Producer{
		producer: producer,
		topic:    conf.Kafka.Topic,
	}, nil
}

// Publish sends the event keyed by payment reference, which keeps events
// of one payment on one partition.
func (p *Producer) Publish(event *entity.RequestEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Reference),
		Value: sarama.ByteEncoder(data),
	})
	return err
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
