package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes    = 30
	DefaultMinBookingNoticeMinutes   = 0
	DefaultMaxAdvanceDays            = 0 // 0 = unlimited
	DefaultCancellationRequiredHours = 24
)

// LegacySlotCap is the fixed number of candidates the old slot walk stopped at.
// Generation is no longer capped; larger results are only reported.
const LegacySlotCap = 20

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// CancelledStatuses statuses that release the booked time
var CancelledStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByBusiness,
}
