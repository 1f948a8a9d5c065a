package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	DefaultSubject = "vendor.registered"
	flushTimeout   = 2 * time.Second
)

// conn is the subset of *nats.Conn used by the publisher.
type conn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// NatsEventPublisher announces registrations on a core NATS subject.
type NatsEventPublisher struct {
	nc      conn
	subject string
}

var _ interfaces.IEventPublisher = (*NatsEventPublisher)(nil)

// ConnectNats dials the NATS server with reconnects enabled.
func ConnectNats(url, name string) (*nats.Conn, error) {
	if url == "" {
		return nil, errors.New("nats url missing")
	}
	opts := []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(500 * time.Millisecond),
		nats.ReconnectJitter(100*time.Millisecond, 500*time.Millisecond),
		nats.Timeout(3 * time.Second),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return nc, nil
}

func NewNatsEventPublisher(nc conn, subject string) *NatsEventPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NatsEventPublisher{nc: nc, subject: subject}
}

func (p *NatsEventPublisher) PublishRegistered(ctx context.Context, ev entities.RegistrationEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", p.subject, err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}
	if err := p.nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush %s: %w", p.subject, err)
	}

	logger.FromContext(ctx).Debug("[events][nats] registration published",
		zap.String("subject", p.subject), zap.String("record_id", ev.RecordID))
	return nil
}

// Close drains pending messages and closes the connection.
func (p *NatsEventPublisher) Close() error {
	return p.nc.Drain()
}
