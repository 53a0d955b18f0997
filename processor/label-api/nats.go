package labelapi

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/c360studio/ontolabel/label"
)

// ResolveRequest is the NATS request payload. Either IRI (catalog
// lookup) or Entity (resolve as sent) must be set; Entity wins when
// both are present.
type ResolveRequest struct {
	IRI      string        `json:"iri,omitempty"`
	Entity   *label.Entity `json:"entity,omitempty"`
	Language string        `json:"language,omitempty"`
}

// ResolveResponse is the NATS reply payload.
type ResolveResponse struct {
	RequestID string `json:"request_id"`
	ID        string `json:"id"`
	Label     string `json:"label"`
	Tier      string `json:"tier"`
	Error     string `json:"error,omitempty"`
}

// natsResponder answers label resolution requests over NATS
// request/reply, the transport the rest of the platform speaks.
type natsResponder struct {
	component *Component
	conn      *nats.Conn
	sub       *nats.Subscription
	logger    *slog.Logger
}

func newNATSResponder(c *Component, url, subject string, logger *slog.Logger) (*natsResponder, error) {
	if subject == "" {
		return nil, fmt.Errorf("NATS subject required")
	}

	conn, err := nats.Connect(url, nats.Name("ontolabel-label-api"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	r := &natsResponder{component: c, conn: conn, logger: logger}

	sub, err := conn.Subscribe(subject, r.handle)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}
	r.sub = sub

	logger.Info("NATS responder subscribed", "subject", subject, "url", url)
	return r, nil
}

func (r *natsResponder) handle(msg *nats.Msg) {
	requestID := uuid.New().String()

	var req ResolveRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		r.reply(msg, ResolveResponse{RequestID: requestID, Error: "invalid request payload"})
		return
	}

	var entity label.Entity
	switch {
	case req.Entity != nil:
		entity = *req.Entity
	case req.IRI != "":
		var ok bool
		entity, ok = r.component.catalog.Entity(req.IRI)
		if !ok {
			entity = label.Entity{ID: req.IRI}
		}
	default:
		r.reply(msg, ResolveResponse{RequestID: requestID, Error: "iri or entity required"})
		return
	}

	display, tier := r.component.resolve(entity, req.Language)
	r.reply(msg, ResolveResponse{
		RequestID: requestID,
		ID:        entity.ID,
		Label:     display,
		Tier:      string(tier),
	})

	r.logger.Debug("Resolved label over NATS",
		"request_id", requestID,
		"id", entity.ID,
		"tier", tier)
}

func (r *natsResponder) reply(msg *nats.Msg, resp ResolveResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		r.logger.Warn("Failed to marshal NATS reply", "error", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		r.logger.Warn("Failed to send NATS reply", "error", err)
	}
}

// Close drains the subscription and closes the connection.
func (r *natsResponder) Close() {
	if r.sub != nil {
		_ = r.sub.Drain()
	}
	if r.conn != nil {
		r.conn.Close()
	}
}
