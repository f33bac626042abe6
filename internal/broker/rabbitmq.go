package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"okaigpt/backend/internal/model"
)

const publishTimeout = 5 * time.Second

// amqpChannel is the subset of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitSession is one open connection and its publishing channel. closed
// receives the connection's close notification.
type rabbitSession struct {
	conn   io.Closer
	ch     amqpChannel
	closed <-chan *amqp.Error
}

// RabbitPublisher publishes video jobs to a durable queue on the default
// exchange. A lost connection is logged and redialed on the next publish.
type RabbitPublisher struct {
	queue   string
	now     func() time.Time
	connect func() (*rabbitSession, error)

	mu       sync.Mutex
	conn     io.Closer
	ch       amqpChannel
	shutdown bool
}

// NewRabbitPublisher dials the broker and declares the job queue and its
// dead-letter queue.
func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	p := &RabbitPublisher{
		queue:   queue,
		now:     time.Now,
		connect: func() (*rabbitSession, error) { return dialRabbit(url, queue) },
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.reconnectLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialRabbit(url, queue string) (*rabbitSession, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	dlq := queue + ".dlq"
	if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare %s: %w", dlq, err)
	}
	// Jobs rejected by the worker end up in the DLQ.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlq,
	}); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare %s: %w", queue, err)
	}

	return &rabbitSession{
		conn:   conn,
		ch:     ch,
		closed: conn.NotifyClose(make(chan *amqp.Error, 1)),
	}, nil
}

// reconnectLocked opens a new session. p.mu must be held.
func (p *RabbitPublisher) reconnectLocked() error {
	session, err := p.connect()
	if err != nil {
		return err
	}
	p.conn, p.ch = session.conn, session.ch
	go p.watch(session.closed, session.ch)
	return nil
}

// watch waits for the connection behind ch to close and drops it.
func (p *RabbitPublisher) watch(closed <-chan *amqp.Error, ch amqpChannel) {
	if amqpErr, ok := <-closed; ok && amqpErr != nil {
		slog.Error("RabbitMQ connection closed", "queue", p.queue, "code", amqpErr.Code, "reason", amqpErr.Reason)
	}
	p.drop(ch)
}

// drop discards the session owning ch unless it has already been replaced.
func (p *RabbitPublisher) drop(ch amqpChannel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil || p.ch != ch {
		return
	}
	_ = p.ch.Close()
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

func (p *RabbitPublisher) channel() (amqpChannel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		return p.ch, nil
	}
	if p.shutdown || p.connect == nil {
		return nil, amqp.ErrClosed
	}

	slog.Info("Reconnecting to RabbitMQ", "queue", p.queue)
	if err := p.reconnectLocked(); err != nil {
		return nil, fmt.Errorf("rabbitmq reconnect: %w", err)
	}
	return p.ch, nil
}

func (p *RabbitPublisher) DispatchVideo(ctx context.Context, video *model.Video) error {
	body, err := json.Marshal(VideoJob{
		VideoID:         video.ID,
		Prompt:          video.Prompt,
		InitialImageURL: video.InitialImageURL,
	})
	if err != nil {
		return err
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	cctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = ch.PublishWithContext(cctx,
		"",      // default exchange
		p.queue, // routing key = queue
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    fmt.Sprintf("video-%d", video.ID),
			Body:         body,
			Timestamp:    p.now(),
		},
	)
	if errors.Is(err, amqp.ErrClosed) {
		p.drop(ch)
	}
	return err
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shutdown = true

	if p.ch != nil {
		_ = p.ch.Close()
	}
	var err error
	if p.conn != nil {
		err = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
	return err
}
