package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// 2025-06-02, понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func mondayAt(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func nineToFive() []domain.WeeklyAvailabilityRule {
	return []domain.WeeklyAvailabilityRule{
		{ID: 1, BusinessID: 1, DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "17:00"},
	}
}

func baseInput() SlotInput {
	return SlotInput{
		Date:            monday,
		Location:        time.UTC,
		Rules:           nineToFive(),
		ServiceDuration: 30 * time.Minute,
		Granularity:     30 * time.Minute,
		Now:             mondayAt(8, 0),
	}
}

func TestGenerateSlots_FullDayAllAvailable(t *testing.T) {
	res := GenerateSlots(baseInput())

	require.Len(t, res.Slots, 16)
	assert.Equal(t, mondayAt(9, 0), res.Slots[0].Window.Start)
	assert.Equal(t, mondayAt(16, 30), res.Slots[15].Window.Start)
	assert.Equal(t, mondayAt(17, 0), res.Slots[15].Window.End)
	assert.Equal(t, 16, res.AvailableCount())
	assert.Empty(t, res.SkippedRules)
}

func TestGenerateSlots_ConfirmedBookingMarksOnlyItsSlot(t *testing.T) {
	in := baseInput()
	in.Bookings = []*domain.Booking{
		{ID: 7, Status: domain.StatusConfirmed, Window: domain.TimeWindow{Start: mondayAt(10, 0), End: mondayAt(10, 30)}},
	}

	res := GenerateSlots(in)

	require.Len(t, res.Slots, 16)
	for _, s := range res.Slots {
		if s.Window.Start.Equal(mondayAt(10, 0)) {
			assert.False(t, s.Available)
			continue
		}
		assert.True(t, s.Available, "slot %s", s.Window)
	}
}

func TestGenerateSlots_CancelledBookingReleasesTime(t *testing.T) {
	in := baseInput()
	in.Bookings = []*domain.Booking{
		{ID: 7, Status: domain.StatusCancelledByCustomer, Window: domain.TimeWindow{Start: mondayAt(10, 0), End: mondayAt(10, 30)}},
	}

	res := GenerateSlots(in)
	assert.Equal(t, 16, res.AvailableCount())
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	in := baseInput()
	in.Date = monday.AddDate(0, 0, 1) // вторник, правил нет

	res := GenerateSlots(in)
	assert.NotNil(t, res.Slots)
	assert.Empty(t, res.Slots)
}

func TestGenerateSlots_EverySlotHasServiceDuration(t *testing.T) {
	in := baseInput()
	in.ServiceDuration = 45 * time.Minute
	in.Granularity = 15 * time.Minute

	res := GenerateSlots(in)

	require.NotEmpty(t, res.Slots)
	for _, s := range res.Slots {
		assert.Equal(t, 45*time.Minute, s.Window.Duration())
		assert.False(t, s.Window.End.After(mondayAt(17, 0)))
	}
	// Последний старт 16:15 (16:15 + 45m = 17:00)
	assert.Equal(t, mondayAt(16, 15), res.Slots[len(res.Slots)-1].Window.Start)
}

func TestGenerateSlots_NoPartialTrailingSlot(t *testing.T) {
	in := baseInput()
	in.Rules = []domain.WeeklyAvailabilityRule{
		{DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "10:20"},
	}

	res := GenerateSlots(in)

	// 09:00, 09:30; 10:00-10:30 не помещается
	require.Len(t, res.Slots, 2)
	assert.Equal(t, mondayAt(9, 30), res.Slots[1].Window.Start)
}

func TestGenerateSlots_ServiceLongerThanWindow(t *testing.T) {
	in := baseInput()
	in.Rules = []domain.WeeklyAvailabilityRule{
		{DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: time.Monday, StartTime: "13:00", EndTime: "16:00"},
	}
	in.ServiceDuration = 2 * time.Hour

	res := GenerateSlots(in)

	// Окно 09-10 короче услуги, в окне 13-16 старты 13:00, 13:30, 14:00
	require.Len(t, res.Slots, 3)
	assert.Equal(t, mondayAt(13, 0), res.Slots[0].Window.Start)
}

func TestGenerateSlots_SplitShiftsInOrder(t *testing.T) {
	in := baseInput()
	in.Rules = []domain.WeeklyAvailabilityRule{
		{DayOfWeek: time.Monday, StartTime: "14:00", EndTime: "15:00"},
		{DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "10:00"},
	}

	res := GenerateSlots(in)

	require.Len(t, res.Slots, 4)
	assert.Equal(t, mondayAt(9, 0), res.Slots[0].Window.Start)
	assert.Equal(t, mondayAt(14, 30), res.Slots[3].Window.Start)
}

func TestGenerateSlots_PastAndMinNotice(t *testing.T) {
	in := baseInput()
	in.Now = mondayAt(10, 10)
	in.MinNotice = time.Hour

	res := GenerateSlots(in)

	require.Len(t, res.Slots, 16)
	for _, s := range res.Slots {
		// Всё, что раньше 11:10, недоступно; первый доступный 11:30
		want := !s.Window.Start.Before(mondayAt(11, 10))
		assert.Equal(t, want, s.Available, "slot %s", s.Window)
	}
}

func TestGenerateSlots_SlotStartingExactlyNowIsAvailable(t *testing.T) {
	in := baseInput()
	in.Now = mondayAt(9, 0)

	res := GenerateSlots(in)
	assert.True(t, res.Slots[0].Available)
}

func TestGenerateSlots_MaxAdvanceDays(t *testing.T) {
	in := baseInput()
	in.MaxAdvanceDays = 7

	in.Now = mondayAt(8, 0).AddDate(0, 0, -7)
	assert.Equal(t, 16, GenerateSlots(in).AvailableCount())

	in.Now = mondayAt(8, 0).AddDate(0, 0, -8)
	res := GenerateSlots(in)
	assert.Len(t, res.Slots, 16)
	assert.Equal(t, 0, res.AvailableCount())
}

func TestGenerateSlots_FullDayBlock(t *testing.T) {
	in := baseInput()
	in.BlockedDates = []domain.BlockedDate{{BusinessID: 1, Date: monday}}

	assert.Empty(t, GenerateSlots(in).Slots)
}

func TestGenerateSlots_BlockOnOtherDateIgnored(t *testing.T) {
	in := baseInput()
	in.BlockedDates = []domain.BlockedDate{{BusinessID: 1, Date: monday.AddDate(0, 0, 1)}}

	assert.Len(t, GenerateSlots(in).Slots, 16)
}

func TestGenerateSlots_PartialBlockSplitsWindow(t *testing.T) {
	start := types.TimeString("12:00")
	end := types.TimeString("13:00")

	in := baseInput()
	in.BlockedDates = []domain.BlockedDate{{BusinessID: 1, Date: monday, StartTime: &start, EndTime: &end}}

	res := GenerateSlots(in)

	require.Len(t, res.Slots, 14)
	for _, s := range res.Slots {
		assert.False(t, s.Window.Overlaps(domain.TimeWindow{Start: mondayAt(12, 0), End: mondayAt(13, 0)}))
	}
}

func TestGenerateSlots_InvalidRuleSkipped(t *testing.T) {
	in := baseInput()
	in.Rules = append(in.Rules, domain.WeeklyAvailabilityRule{
		ID: 99, DayOfWeek: time.Monday, StartTime: "18:00", EndTime: "18:00",
	})

	res := GenerateSlots(in)

	assert.Len(t, res.Slots, 16)
	require.Len(t, res.SkippedRules, 1)
	assert.Equal(t, int64(99), res.SkippedRules[0].ID)
}

func TestGenerateSlots_UsesBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	in := baseInput()
	in.Location = loc
	in.Now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	res := GenerateSlots(in)

	require.Len(t, res.Slots, 16)
	// 09:00 в Токио = 00:00 UTC
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), res.Slots[0].Window.Start.UTC())
}

func TestGenerateSlots_ZeroDurationService(t *testing.T) {
	in := baseInput()
	in.ServiceDuration = 0

	assert.Empty(t, GenerateSlots(in).Slots)
}

func TestGenerateSlots_NotCappedAtLegacyLimit(t *testing.T) {
	in := baseInput()
	in.Rules = []domain.WeeklyAvailabilityRule{
		{DayOfWeek: time.Monday, StartTime: "00:00", EndTime: "24:00"},
	}
	in.Now = monday.AddDate(0, 0, -1)

	res := GenerateSlots(in)
	assert.Len(t, res.Slots, 48)
	assert.Greater(t, len(res.Slots), domain.LegacySlotCap)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	in := baseInput()
	in.Bookings = []*domain.Booking{
		{Status: domain.StatusConfirmed, Window: domain.TimeWindow{Start: mondayAt(11, 15), End: mondayAt(12, 15)}},
	}

	assert.Equal(t, GenerateSlots(in), GenerateSlots(in))
}

func TestGenerateSlots_AvailableNeverOverlapsBlockingBooking(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		in := baseInput()
		in.ServiceDuration = time.Duration(15*(1+rnd.Intn(8))) * time.Minute
		in.Granularity = time.Duration(5*(1+rnd.Intn(12))) * time.Minute

		for i := 0; i < rnd.Intn(5); i++ {
			start := mondayAt(9, 0).Add(time.Duration(rnd.Intn(8*60)) * time.Minute)
			in.Bookings = append(in.Bookings, &domain.Booking{
				Status: domain.StatusConfirmed,
				Window: domain.TimeWindow{Start: start, End: start.Add(time.Duration(10+rnd.Intn(90)) * time.Minute)},
			})
		}

		for _, s := range GenerateSlots(in).Slots {
			assert.Equal(t, in.ServiceDuration, s.Window.Duration())
			if !s.Available {
				continue
			}
			for _, b := range in.Bookings {
				assert.False(t, s.Window.Overlaps(b.Window), "slot %s overlaps booking %s", s.Window, b.Window)
			}
		}
	}
}

func TestDaysBetween(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-06-02 23:30 в Нью-Йорке = 2025-06-03 03:30 UTC
	from := time.Date(2025, 6, 3, 3, 30, 0, 0, time.UTC)
	to := time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(from, to, loc))
	assert.Equal(t, 0, DaysBetween(from, to, time.UTC))
}
