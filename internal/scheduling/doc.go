// Package scheduling turns a business's weekly availability, blocked dates and existing
// bookings into bookable slots for one calendar date.
//
// Everything here is pure: inputs are plain values loaded by the caller, the wall clock is
// passed in, and identical inputs always give identical output. Functions are safe for
// concurrent use.
package scheduling
