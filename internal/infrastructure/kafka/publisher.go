package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/horotrade/horotrade-listing-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	listingWriter     *kafka.Writer
	transactionWriter *kafka.Writer
}

func NewKafkaPublisher(brokers []string, listingTopic, transactionTopic string) *KafkaPublisher {
	return &KafkaPublisher{
		listingWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    listingTopic,
			Balancer: &kafka.LeastBytes{},
		},
		transactionWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    transactionTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishListingEvent(event domain.ListingEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.listingWriter.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.SellerID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) PublishTransactionEvent(event domain.TransactionEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.transactionWriter.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.SellerID),
		Value: msg,
		Time:  time.Now(),
	})
}
