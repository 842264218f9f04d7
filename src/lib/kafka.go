package lib

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

const TRIP_REQUESTS_TOPIC = "trip-requests"

// EventPublisher delivers trip request events to whatever consumes them.
type EventPublisher interface {
	Publish(ctx context.Context, event types.TripRequestEvent) error
}

type EventHandler func(ctx context.Context, payload string)

func GetKafkaProducerConfig(clientId string) kafka.ConfigMap {
	return kafka.ConfigMap{
		"bootstrap.servers": config.KAFKA_BROKER,
		"client.id":         clientId,
		"acks":              "all",
	}
}

func GetKafkaConsumerConfig(groupId string) kafka.ConfigMap {
	return kafka.ConfigMap{
		"bootstrap.servers": config.KAFKA_BROKER,
		"group.id":          groupId,
		"auto.offset.reset": "smallest",
		"retry.backoff.ms":  100,
	}
}

type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaPublisher(clientId string, topic string) (*KafkaPublisher, error) {
	cfg := GetKafkaProducerConfig(clientId)
	p, err := kafka.NewProducer(&cfg)
	if err != nil {
		log.Printf("Error on producer: %s\n", err.Error())
		return nil, err
	}
	go func() {
		for e := range p.Events() {
			if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
				log.Printf("[kafka] Delivery failed: %s\n", m.TopicPartition.Error.Error())
			}
		}
	}()
	return &KafkaPublisher{producer: p, topic: topic}, nil
}

func (k *KafkaPublisher) Publish(ctx context.Context, event types.TripRequestEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &k.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.Type),
		Value:          value,
	}, nil)
	if err != nil {
		log.Printf("[kafka] Error sending %s to %s: %s\n", event.Type, k.topic, err.Error())
		return err
	}
	return nil
}

func (k *KafkaPublisher) Close() {
	k.producer.Flush(5000)
	k.producer.Close()
}

// KafkaConsume polls topic until ctx is cancelled, passing each message value to handler.
func KafkaConsume(ctx context.Context, groupId string, topic string, handler EventHandler) error {
	cfg := GetKafkaConsumerConfig(groupId)
	consumer, err := kafka.NewConsumer(&cfg)
	if err != nil {
		log.Printf("Error on consumer: %s\n", err.Error())
		return err
	}
	if err = consumer.SubscribeTopics([]string{topic}, nil); err != nil {
		log.Printf("Error on consumer: %s\n", err.Error())
		consumer.Close()
		return err
	}
	go func() {
		defer consumer.Close()
		log.Printf("[BACKGROUND]: waiting for messages on %s...\n", topic)
		for {
			select {
			case <-ctx.Done():
				log.Printf("[BACKGROUND]: consumer for %s stopped\n", topic)
				return
			default:
			}
			ev := consumer.Poll(100)
			switch e := ev.(type) {
			case *kafka.Message:
				handler(ctx, string(e.Value))
			case kafka.Error:
				log.Printf("[kafka] Error: %v\n", e)
				if e.IsFatal() {
					return
				}
			}
		}
	}()
	return nil
}

func KafkaCreateTopics(topics ...string) ([]kafka.TopicResult, error) {
	a, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": config.KAFKA_BROKER,
	})
	if err != nil {
		log.Printf("Error on AdminClient: %s\n", err.Error())
		return nil, err
	}
	defer a.Close()
	topicsDef := []kafka.TopicSpecification{}
	for _, topic := range topics {
		topicsDef = append(topicsDef, kafka.TopicSpecification{
			Topic:             topic,
			NumPartitions:     10,
			ReplicationFactor: 1,
		})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := a.CreateTopics(ctx, topicsDef)
	if err != nil {
		log.Printf("Error creating topics: %s\n", err.Error())
		return nil, err
	}
	return result, nil
}
