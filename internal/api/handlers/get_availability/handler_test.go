package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/get_availability"
)

type fakeUseCase struct {
	got *getAvailability.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailability.Response{Date: "2025-06-22", Percentage: 95}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/schedules/{date}/watercraft/{watercraftId}/availability", NewHandler(uc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, "/api/v1/schedules/2025-06-22/watercraft/2/availability")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), uc.got.WatercraftTypeID)
	assert.Equal(t, 22, uc.got.Date.Day())
	assert.Contains(t, rec.Body.String(), `"percentage":95`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/schedules/june/watercraft/2/availability").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/schedules/2025-06-22/watercraft/0/availability").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(&fakeUseCase{err: getAvailability.ErrWatercraftNotFound}, "/api/v1/schedules/2025-06-22/watercraft/9/availability").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeUseCase{err: getAvailability.ErrInternal}, "/api/v1/schedules/2025-06-22/watercraft/2/availability").Code)
}
