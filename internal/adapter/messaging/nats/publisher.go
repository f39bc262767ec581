package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Subjects for property lifecycle events consumed by downstream services
// (search indexing, analytics). Publishing is fire-and-forget.
const (
	SubjectPropertyCreated   = "property.created"
	SubjectPropertySubmitted = "property.submitted"
	SubjectPropertyApproved  = "property.approved"
	SubjectPropertyRejected  = "property.rejected"
	SubjectPropertyDeleted   = "property.deleted"
)

type Publisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(url string, logger *zap.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, logger: logger.Named("NATSPublisher")}, nil
}

// Publish marshals and emits an event. Errors are logged and swallowed: an
// event bus outage must never fail the originating request.
func (p *Publisher) Publish(ctx context.Context, subject string, data interface{}) {
	if p == nil || p.conn == nil {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		p.logger.Error("Failed to encode event", zap.String("subject", subject), zap.Error(err))
		return
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		p.logger.Warn("Failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}

func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}
