package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashakirov/go-fit-keeper/internal/config"
	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/models"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

func newTestRemote(t *testing.T, status int) (RemoteService, *recordedRequest) {
	t.Helper()

	var rec recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	remote, err := NewHTTPRemoteService(config.ClientRemote{
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return remote, &rec
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url kept", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "whitespace trimmed", raw: "  http://api.example.com  ", want: "http://api.example.com"},
		{name: "empty address", raw: "", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpsertWorkoutSendsPutWithBearer(t *testing.T) {
	// Arrange
	remote, rec := newTestRemote(t, http.StatusOK)
	remote.SetToken("  my-token  ")

	workout := models.Workout{Date: "2024-01-15", Title: "Leg Day", DurationMinutes: 60}

	// Act
	err := remote.UpsertWorkout(context.Background(), workout)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/workouts/2024-01-15", rec.path)
	assert.Equal(t, "Bearer my-token", rec.auth)

	var sent models.Workout
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, workout, sent)
}

func TestSetTokenAcceptsAuthorizationHeaderValue(t *testing.T) {
	// Arrange
	remote, rec := newTestRemote(t, http.StatusOK)
	remote.SetToken("Bearer my-token")

	assert.Equal(t, "my-token", remote.Token())

	// Act
	err := remote.DeleteWorkout(context.Background(), "2024-01-15")

	// Assert: scheme is not doubled in the outgoing header
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", rec.auth)

	remote.SetToken("bare-token")
	assert.Equal(t, "bare-token", remote.Token())
}

func TestDeleteExerciseSendsDelete(t *testing.T) {
	remote, rec := newTestRemote(t, http.StatusNoContent)

	err := remote.DeleteExercise(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/exercises/42", rec.path)
}

func TestUpsertWeightLogPath(t *testing.T) {
	remote, rec := newTestRemote(t, http.StatusOK)

	err := remote.UpsertWeightLog(context.Background(), models.WeightLog{MeasuredAt: "2024-01-15", WeightKg: 82.4})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/weight/2024-01-15", rec.path)
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "400 bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "401 unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "403 forbidden", status: http.StatusForbidden, want: ErrUnauthorized},
		{name: "404 not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "409 conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "502 bad gateway", status: http.StatusBadGateway, want: ErrRemoteUnavailable},
		{name: "503 unavailable", status: http.StatusServiceUnavailable, want: ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote, _ := newTestRemote(t, tt.status)

			err := remote.DeleteWorkout(context.Background(), "2024-01-15")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnreachableRemoteReturnsTransportError(t *testing.T) {
	remote, err := NewHTTPRemoteService(config.ClientRemote{
		HTTPAddress:    "http://127.0.0.1:1",
		RequestTimeout: 200 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	err = remote.UpsertWorkout(context.Background(), models.Workout{Date: "2024-01-15"})
	require.Error(t, err)
}

func TestNewHTTPRemoteServiceRejectsEmptyAddress(t *testing.T) {
	_, err := NewHTTPRemoteService(config.ClientRemote{RequestTimeout: time.Second}, logger.Nop())
	require.Error(t, err)
}
