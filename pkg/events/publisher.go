// Package events provides NATS event publishing for the challenge
// controller. Unlike a subscriber, the publisher is one-way: phase
// transitions are announced for scoreboard/UI consumers, and nothing the
// controller does ever depends on a response coming back over NATS.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Subject constants for instance lifecycle events.
const (
	SubjectInstancePhase     = "berg.instance.phase"
	SubjectInstanceReady     = "berg.instance.ready"
	SubjectInstanceTerminated = "berg.instance.terminated"
)

// Config holds connection settings for the publisher.
type Config struct {
	URL      string
	User     string
	Password string
}

// Publisher publishes ChallengeInstance lifecycle events to NATS. It holds
// no subscriptions and never blocks a reconcile on a reply.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher connects to NATS and returns a Publisher. Connection
// failures are returned to the caller, who is expected to log and continue
// without event publishing rather than fail startup.
func NewPublisher(cfg Config) (*Publisher, error) {
	if cfg.URL == "" {
		cfg.URL = nats.DefaultURL
	}

	opts := []nats.Option{
		nats.Name("berg-challenge-controller"),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
	}
	if cfg.User != "" {
		opts = append(opts, nats.UserInfo(cfg.User, cfg.Password))
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{conn: conn}, nil
}

// Close closes the underlying connection.
func (p *Publisher) Close() {
	p.conn.Close()
}

// InstancePhaseEvent announces a ChallengeInstance's new phase.
type InstancePhaseEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	InstanceID string    `json:"instance_id"`
	OwnerID    string    `json:"owner_id"`
	Challenge  string    `json:"challenge"`
	Phase      string    `json:"phase"`
	Message    string    `json:"message,omitempty"`
}

// InstanceReadyEvent announces that an instance's services have become
// reachable, carrying the endpoints players will connect to.
type InstanceReadyEvent struct {
	Timestamp  time.Time         `json:"timestamp"`
	InstanceID string            `json:"instance_id"`
	OwnerID    string            `json:"owner_id"`
	Services   []ServiceEndpoint `json:"services"`
}

// InstanceTerminatedEvent announces teardown, including the reason so a
// scoreboard can distinguish a timeout from a player-initiated stop.
type InstanceTerminatedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	InstanceID string    `json:"instance_id"`
	OwnerID    string    `json:"owner_id"`
	Reason     string    `json:"reason"`
}

// ServiceEndpoint mirrors berg/api/v1.ServiceEndpoint without importing the
// api package, keeping events free of a dependency on CRD types.
type ServiceEndpoint struct {
	Name     string `json:"name"`
	Hostname string `json:"hostname"`
	Port     uint16 `json:"port"`
	Protocol string `json:"protocol"`
}

// PublishPhase publishes an InstancePhaseEvent. A publish error is
// returned, not fatal to the caller: the reconciler discards it and
// proceeds, since event delivery is best-effort.
func (p *Publisher) PublishPhase(evt InstancePhaseEvent) error {
	return p.publish(SubjectInstancePhase, evt)
}

// PublishReady publishes an InstanceReadyEvent.
func (p *Publisher) PublishReady(evt InstanceReadyEvent) error {
	return p.publish(SubjectInstanceReady, evt)
}

// PublishTerminated publishes an InstanceTerminatedEvent.
func (p *Publisher) PublishTerminated(evt InstanceTerminatedEvent) error {
	return p.publish(SubjectInstanceTerminated, evt)
}

func (p *Publisher) publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.conn.Publish(subject, data)
}
