package domain

import (
	"fmt"
	"time"
)

// PolicyKind is the flavour of a cancellation policy
type PolicyKind string

const (
	PolicyFlexible PolicyKind = "flexible"
	PolicyModerate PolicyKind = "moderate"
	PolicyStrict   PolicyKind = "strict"
	PolicyCustom   PolicyKind = "custom"
)

// IsValid returns true for a known policy kind
func (k PolicyKind) IsValid() bool {
	switch k {
	case PolicyFlexible, PolicyModerate, PolicyStrict, PolicyCustom:
		return true
	}
	return false
}

// CancellationPolicy is embedded in Business.
// Zero value is valid: flexible, 24 hours.
type CancellationPolicy struct {
	Kind          PolicyKind
	RequiredHours *int
}

// EffectiveKind returns the configured kind or flexible
func (p CancellationPolicy) EffectiveKind() PolicyKind {
	if !p.Kind.IsValid() {
		return PolicyFlexible
	}
	return p.Kind
}

// EffectiveRequiredHours returns the configured threshold or the default of 24
func (p CancellationPolicy) EffectiveRequiredHours() int {
	if p.RequiredHours == nil || *p.RequiredHours < 0 {
		return DefaultCancellationRequiredHours
	}
	return *p.RequiredHours
}

// Business is a tenant exposing a booking page
type Business struct {
	ID       int64
	Name     string
	Timezone string // IANA identifier, e.g. "Europe/Moscow"
	Policy   CancellationPolicy

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the business timezone. Empty timezone means UTC.
func (b *Business) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("domain: business %d has invalid timezone %q: %w", b.ID, b.Timezone, err)
	}
	return loc, nil
}

// Service is something a business sells; its duration sizes each slot
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Price           *float64
}

// Duration returns the service length
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
