package domain

import "time"

// SlotsConfig represents the slot generation settings of a business.
// Supports hierarchical configuration:
// 1. Specific service (business_id, service_id)
// 2. Business-wide (business_id, NULL)
type SlotsConfig struct {
	ID                      int64
	BusinessID              int64
	ServiceID               *int64 // NULL = config for all services
	SlotGranularityMinutes  int
	MinBookingNoticeMinutes int
	MaxAdvanceDays          int // 0 = unlimited
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultSlotsConfig returns the settings used when a business has none
func DefaultSlotsConfig(businessID int64) *SlotsConfig {
	return &SlotsConfig{
		BusinessID:              businessID,
		SlotGranularityMinutes:  DefaultSlotGranularityMinutes,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		MaxAdvanceDays:          DefaultMaxAdvanceDays,
	}
}

// Granularity returns the slot step, falling back to the default for non-positive values
func (c *SlotsConfig) Granularity() time.Duration {
	if c.SlotGranularityMinutes <= 0 {
		return time.Duration(DefaultSlotGranularityMinutes) * time.Minute
	}
	return time.Duration(c.SlotGranularityMinutes) * time.Minute
}

// MinNotice returns the minimum lead time for a new booking
func (c *SlotsConfig) MinNotice() time.Duration {
	if c.MinBookingNoticeMinutes < 0 {
		return 0
	}
	return time.Duration(c.MinBookingNoticeMinutes) * time.Minute
}
