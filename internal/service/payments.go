package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentSimulator fakes the payment round trip with a fixed delay. Every
// attempt gets a fresh flow token; a completion whose token no longer matches
// the flow the UI is waiting on must be dropped, so navigating away from a
// payment screen cancels the pending completion instead of letting it mutate
// shared state later.
type PaymentSimulator struct {
	Delay time.Duration
	Log   *zap.Logger
}

// DefaultPaymentDelay matches the 1-2 second fake round trip of the
// wireframes.
const DefaultPaymentDelay = 1500 * time.Millisecond

// Begin starts a payment attempt and returns its flow token.
func (p *PaymentSimulator) Begin() string {
	token := uuid.NewString()
	if p.Log != nil {
		p.Log.Debug("payment started", zap.String("flow", token), zap.Duration("delay", p.delay()))
	}
	return token
}

// ReportStale logs a completion that arrived for an abandoned flow.
func (p *PaymentSimulator) ReportStale(token string) {
	if p.Log != nil {
		p.Log.Warn("stale payment completion dropped", zap.String("flow", token))
	}
}

func (p *PaymentSimulator) delay() time.Duration {
	if p.Delay <= 0 {
		return DefaultPaymentDelay
	}
	return p.Delay
}

// ProcessingDelay returns the configured delay, defaulted when unset.
func (p *PaymentSimulator) ProcessingDelay() time.Duration { return p.delay() }
