package update_reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ExcursionBooking/internal/conflicts"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	updateReservation "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/update_reservation"
)

type fakeUseCase struct {
	got  *updateReservation.Request
	resp *updateReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateReservation.Request) (*updateReservation.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"date":"2025-06-22","watercraftTypeId":2,"unitIndex":0,"seatIndex":2,"startTime":"13:00","endTime":"14:00","firstName":"Alice"}`

func put(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reservationId": id})
	req = req.WithContext(middleware.WithIdentity(req.Context(), &domain.Identity{UserID: uuid.New()}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &updateReservation.Response{ID: 7, FirstName: "Alice"}}

	rec := put(NewHandler(uc, nopLogger{}), "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.ID)
	assert.NotNil(t, uc.got.Identity)
	assert.Equal(t, "14:00", uc.got.EndTime.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "bad id", id: "abc", status: http.StatusBadRequest},
		{name: "denied", id: "7", err: updateReservation.ErrAccessDenied, status: http.StatusForbidden},
		{name: "not found", id: "7", err: updateReservation.ErrReservationNotFound, status: http.StatusNotFound},
		{
			name:   "seat conflict",
			id:     "7",
			err:    fmt.Errorf("%w: %w", updateReservation.ErrConflict, &conflicts.SeatConflictError{Existing: &domain.Reservation{}}),
			status: http.StatusConflict,
		},
		{name: "invalid", id: "7", err: updateReservation.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", id: "7", err: updateReservation.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.id)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
