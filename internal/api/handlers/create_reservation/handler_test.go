package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	createReservation "github.com/m04kA/SMC-LaundryService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
	got  *createReservation.Request
}

func (u *fakeUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateReservationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		Room:        "101",
		Date:        time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC),
		Slot:        domain.SlotMorning,
		Machine:     2,
		Week:        domain.ISOWeek{Year: 2025, Week: 36},
		CurrentWeek: true,
	}}

	rec := doRequest(t, uc, `{"room":"101","date":"2025-09-03","slot":"08-12","machine":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "101", resp.Room)
	assert.Equal(t, "2025-09-03", resp.Date)
	assert.Equal(t, "08-12", resp.Slot)
	assert.Equal(t, 2, resp.Machine)
	assert.Equal(t, "2025-W36", resp.Week)
	assert.True(t, resp.CurrentWeek)

	// The use case received fully parsed values.
	require.NotNil(t, uc.got)
	assert.Equal(t, domain.SlotMorning, uc.got.Slot)
}

func TestHandle_BadBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"unknown field", `{"room":"101","floor":3}`},
		{"bad date", `{"room":"101","date":"03.09.2025","slot":"08-12","machine":1}`},
		{"bad slot", `{"room":"101","date":"2025-09-03","slot":"07-11","machine":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestHandle_RejectionStatusCodes maps every use case rejection to its HTTP
// status: malformed input is 400, contention for scarce slots is 409.
func TestHandle_RejectionStatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{createReservation.ErrInvalidInput, http.StatusBadRequest},
		{createReservation.ErrDateNotOffered, http.StatusBadRequest},
		{createReservation.ErrWeeklyQuotaExceeded, http.StatusConflict},
		{createReservation.ErrSlotMachineLimitExceeded, http.StatusConflict},
		{createReservation.ErrMachineAlreadyBooked, http.StatusConflict},
		{createReservation.ErrSlotFull, http.StatusConflict},
		{createReservation.ErrStoreConflict, http.StatusConflict},
		{createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tc.err},
				`{"room":"101","date":"2025-09-03","slot":"08-12","machine":1}`)

			assert.Equal(t, tc.want, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
