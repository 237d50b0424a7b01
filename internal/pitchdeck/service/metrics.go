package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics counts domain events. A nil *Metrics records nothing.
type Metrics struct {
	signups   metric.Int64Counter
	logins    metric.Int64Counter
	interests metric.Int64Counter
	pitches   metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	signups, err := meter.Int64Counter("pitchdeck.auth.signups",
		metric.WithDescription("Accounts created, by role and method."))
	if err != nil {
		return nil, err
	}
	logins, err := meter.Int64Counter("pitchdeck.auth.logins",
		metric.WithDescription("Login attempts, by method and outcome."))
	if err != nil {
		return nil, err
	}
	interests, err := meter.Int64Counter("pitchdeck.investor.interests",
		metric.WithDescription("Interest changes, by action."))
	if err != nil {
		return nil, err
	}
	pitches, err := meter.Int64Counter("pitchdeck.pitches.created",
		metric.WithDescription("Pitches submitted."))
	if err != nil {
		return nil, err
	}
	return &Metrics{signups: signups, logins: logins, interests: interests, pitches: pitches}, nil
}

func (m *Metrics) signup(ctx context.Context, role, method string) {
	if m == nil {
		return
	}
	m.signups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", role),
		attribute.String("method", method),
	))
}

func (m *Metrics) login(ctx context.Context, method, outcome string) {
	if m == nil {
		return
	}
	m.logins.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	))
}

func (m *Metrics) interest(ctx context.Context, action string) {
	if m == nil {
		return
	}
	m.interests.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
}

func (m *Metrics) pitchCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.pitches.Add(ctx, 1)
}
