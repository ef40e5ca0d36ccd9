package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

type fakeService struct {
	gotReq *models.CancelBookingRequest
	resp   *models.BookingResponse
	err    error
}

func (f *fakeService) Cancel(_ context.Context, _ int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, bookingID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{ID: 3, Status: "cancelled_by_business"}}

	rec := doRequest(NewHandler(svc, nopLogger{}), "3", `{"cancelledBy":"business","cancellationReason":"closed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, models.CancelledByBusiness, svc.gotReq.CancelledBy)
	require.NotNil(t, svc.gotReq.CancellationReason)
	assert.Equal(t, "closed", *svc.gotReq.CancellationReason)
}

func TestHandle_BlankReasonIsDropped(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{ID: 3, Status: "cancelled_by_customer"}}

	rec := doRequest(NewHandler(svc, nopLogger{}), "3", `{"cancellationReason":"   "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.CancellationReason)
	assert.NotContains(t, rec.Body.String(), "cancellationReason")
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{ID: 3, Status: "cancelled_by_customer"}}

	rec := doRequest(NewHandler(svc, nopLogger{}), "3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq)
	assert.Empty(t, svc.gotReq.CancelledBy)
}

func TestHandle_RefusedByPolicy(t *testing.T) {
	reason := "cancellation requires at least 24 hours notice, only 10.0 hours remaining"
	svc := &fakeService{err: &bookings.CancelRefusedError{Reason: reason}}

	rec := doRequest(NewHandler(svc, nopLogger{}), "3", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, reason, body.Message)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{name: "bad id", id: "x", status: http.StatusBadRequest},
		{name: "malformed body", id: "3", body: `{"cancelledBy":`, status: http.StatusBadRequest},
		{name: "invalid canceller", id: "3", err: bookings.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not found", id: "3", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "invalid transition", id: "3", err: bookings.ErrInvalidTransition, status: http.StatusConflict},
		{name: "concurrent change", id: "3", err: bookings.ErrConflict, status: http.StatusConflict},
		{name: "internal", id: "3", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.id, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
