package kafka

import (
	"context"
	"fmt"
	"sync"

	"github.com/Shopify/sarama"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

const partition = 0

// MessageQueue of kafka.
type MessageQueue struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	client   sarama.Client
	producer sarama.SyncProducer
	consumer sarama.Consumer
	handler  map[string]handler

	logger log.Logger
}

// NewMessageQueue connects to brokers addrs.
func NewMessageQueue(
	addrs []string,
	logger log.Logger,
) (*MessageQueue, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Consumer.Return.Errors = true
	client, err := sarama.NewClient(addrs, cfg)
	if err != nil {
		return nil, err
	}
	return newMessageQueue(client, logger)
}

// newMessageQueue takes ownership of client, it is closed if producer or consumer can't be created.
func newMessageQueue(client sarama.Client, logger log.Logger) (mq *MessageQueue, err error) {
	mq = &MessageQueue{
		client:  client,
		handler: make(map[string]handler),
		logger:  log.WithPrefix(logger, "component", "kafka"),
	}
	if mq.producer, err = sarama.NewSyncProducerFromClient(client); err != nil {
		client.Close()
		return nil, err
	}
	if mq.consumer, err = sarama.NewConsumerFromClient(client); err != nil {
		mq.producer.Close()
		client.Close()
		return nil, err
	}
	return
}

// Consume adds handler of new messages of topic.
func (mq *MessageQueue) Consume(topic string, h Handler) error {
	if _, isExist := mq.handler[topic]; isExist {
		return fmt.Errorf("%w: %s", errTopicIsExist, topic)
	}

	cp, err := mq.consumer.ConsumePartition(topic, partition, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("consume %s: %w", topic, err)
	}
	mq.handler[topic] = handler{
		partitionConsumer: cp,
		handler:           h,
	}
	return nil
}

// NewPublish returns publish func of topic.
func (mq *MessageQueue) NewPublish(topic string) Publish {
	return func(message []byte) (err error) {
		msg := &sarama.ProducerMessage{
			Topic: topic,
			Value: sarama.ByteEncoder(message),
		}
		_, _, err = mq.producer.SendMessage(msg)
		return
	}
}

// ListenAndServe starts consumers of all topics.
func (mq *MessageQueue) ListenAndServe() {
	mq.ctx, mq.cancel = context.WithCancel(context.Background())
	for topic, h := range mq.handler {
		mq.wg.Add(1)
		go mq.runtime(topic, h)
	}
}

// Shutdown consumers and waits handlers in progress.
func (mq *MessageQueue) Shutdown() {
	if mq.cancel != nil {
		mq.cancel()
	}
	mq.wg.Wait()
	mq.consumer.Close()
	mq.producer.Close()
	mq.client.Close()
}

func (mq *MessageQueue) runtime(topic string, h handler) {
	defer mq.wg.Done()
	defer h.partitionConsumer.Close()

	logger := log.WithPrefix(mq.logger, "topic", topic)
	for {
		select {
		case <-mq.ctx.Done():
			return
		case err, ok := <-h.partitionConsumer.Errors():
			if !ok {
				return
			}
			level.Error(logger).Log("msg", "consume", "err", err)
		case m, ok := <-h.partitionConsumer.Messages():
			if !ok {
				return
			}
			mq.wg.Add(1)
			go func(value []byte) {
				defer mq.wg.Done()
				h.handler(mq.ctx, value)
			}(m.Value)
		}
	}
}
