package check_cancellation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkCancellation "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_cancellation"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type fakeUseCase struct {
	resp *checkCancellation.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context, *checkCancellation.Request) (*checkCancellation.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, bookingID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID+"/cancellation", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Refused(t *testing.T) {
	reason := "cancellation requires at least 24 hours notice, only 10.0 hours remaining"
	uc := &fakeUseCase{resp: &checkCancellation.Response{
		BookingID:         7,
		CanCancel:         false,
		Reason:            ptr.Ptr(reason),
		HoursUntilBooking: 10,
		PolicyDescription: "Cancellations must be made at least 24 hours in advance",
	}}

	rec := doRequest(NewHandler(uc, nopLogger{}), "7")

	require.Equal(t, http.StatusOK, rec.Code)

	var body CancellationCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.CanCancel)
	require.NotNil(t, body.Reason)
	assert.Equal(t, reason, *body.Reason)
	assert.InDelta(t, 10.0, body.HoursUntilBooking, 0.001)
}

func TestHandle_AllowedHasNullReason(t *testing.T) {
	uc := &fakeUseCase{resp: &checkCancellation.Response{BookingID: 7, CanCancel: true, HoursUntilBooking: 30}}

	rec := doRequest(NewHandler(uc, nopLogger{}), "7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":null`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, doRequest(NewHandler(&fakeUseCase{}, nopLogger{}), "x").Code)

	notFound := &fakeUseCase{err: checkCancellation.ErrBookingNotFound}
	assert.Equal(t, http.StatusNotFound, doRequest(NewHandler(notFound, nopLogger{}), "7").Code)

	internal := &fakeUseCase{err: checkCancellation.ErrInternal}
	assert.Equal(t, http.StatusInternalServerError, doRequest(NewHandler(internal, nopLogger{}), "7").Code)
}
