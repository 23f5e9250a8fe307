package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/auth"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "missing credential", err: auth.ErrMissingCredential, wantStatus: 401, wantMsg: "Missing API key"},
		{name: "invalid credential", err: auth.ErrInvalidCredential, wantStatus: 401, wantMsg: "Invalid API key"},
		{name: "configuration", err: fmt.Errorf("%w: bad json", auth.ErrConfiguration), wantStatus: 500, wantMsg: "Server config error"},
		{name: "validation", err: workout.ErrValidation, wantStatus: 400, wantMsg: "Missing required fields"},
		{name: "duplicate", err: fmt.Errorf("%w: run", workout.ErrDuplicate), wantStatus: 400, wantMsg: "Duplicate workout entry"},
		{name: "not found", err: fmt.Errorf("%w: x", workout.ErrNotFound), wantStatus: 404, wantMsg: "Workout not found"},
		{name: "forbidden", err: workout.ErrForbidden, wantStatus: 403, wantMsg: "Unauthorized"},
		{name: "bad request", err: BadRequest(MsgInvalidBody, errors.New("eof")), wantStatus: 400, wantMsg: "Invalid request body"},
		{name: "unknown", err: errors.New("disk full"), wantStatus: 500, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestHTTPError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &HTTPError{StatusCode: 400, Message: "bad", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "bad (status 400): inner", err.Error())
	assert.Equal(t, "bad (status 400)", (&HTTPError{StatusCode: 400, Message: "bad"}).Error())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteError(rec, http.StatusUnauthorized, MsgMissingAPIKey))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Missing API key", body.Error)
}
