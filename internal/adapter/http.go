package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ashakirov/go-fit-keeper/internal/config"
	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/internal/utils"
	"github.com/ashakirov/go-fit-keeper/models"
)

type httpRemoteService struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPRemoteService constructs an HTTP/REST implementation of
// [RemoteService]. It normalises and validates the base URL from
// remoteCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if remoteCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteService(remoteCfg config.ClientRemote, logger *logger.Logger) (RemoteService, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(remoteCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid remote http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(remoteCfg.RequestTimeout)

	return &httpRemoteService{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteService]. It accepts either a bare token or a
// full "Bearer ..." Authorization header value and stores the token part
// (whitespace-trimmed) for use in all subsequent requests.
func (h *httpRemoteService) SetToken(token string) {
	if bare, err := utils.ParseBearerToken(token); err == nil {
		token = bare
	}
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteService].
func (h *httpRemoteService) Token() string {
	return h.token
}

// UpsertWorkout implements [RemoteService]. It PUTs the workout to
// PUT /api/workouts/{date}. The remote keys workouts by date, so create and
// update share one endpoint.
func (h *httpRemoteService) UpsertWorkout(ctx context.Context, workout models.Workout) error {
	resp, err := h.authedRequest(ctx).
		SetBody(workout).
		Put("/api/workouts/" + url.PathEscape(workout.Date))
	if err != nil {
		return fmt.Errorf("upsert workout request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteWorkout implements [RemoteService]. It sends
// DELETE /api/workouts/{date}.
func (h *httpRemoteService) DeleteWorkout(ctx context.Context, date string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/workouts/" + url.PathEscape(date))
	if err != nil {
		return fmt.Errorf("delete workout request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpsertExercise implements [RemoteService]. It PUTs the exercise to
// PUT /api/exercises/{id}.
func (h *httpRemoteService) UpsertExercise(ctx context.Context, exercise models.Exercise) error {
	resp, err := h.authedRequest(ctx).
		SetBody(exercise).
		Put("/api/exercises/" + strconv.FormatInt(exercise.ID, 10))
	if err != nil {
		return fmt.Errorf("upsert exercise request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteExercise implements [RemoteService]. It sends
// DELETE /api/exercises/{id}.
func (h *httpRemoteService) DeleteExercise(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/exercises/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete exercise request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpsertExerciseSet implements [RemoteService]. It PUTs the set to
// PUT /api/sets/{id}.
func (h *httpRemoteService) UpsertExerciseSet(ctx context.Context, set models.ExerciseSet) error {
	resp, err := h.authedRequest(ctx).
		SetBody(set).
		Put("/api/sets/" + strconv.FormatInt(set.ID, 10))
	if err != nil {
		return fmt.Errorf("upsert exercise set request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteExerciseSet implements [RemoteService]. It sends
// DELETE /api/sets/{id}.
func (h *httpRemoteService) DeleteExerciseSet(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/sets/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete exercise set request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpsertWeightLog implements [RemoteService]. It PUTs the entry to
// PUT /api/weight/{date}.
func (h *httpRemoteService) UpsertWeightLog(ctx context.Context, entry models.WeightLog) error {
	resp, err := h.authedRequest(ctx).
		SetBody(entry).
		Put("/api/weight/" + url.PathEscape(entry.MeasuredAt))
	if err != nil {
		return fmt.Errorf("upsert weight log request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteWeightLog implements [RemoteService]. It sends
// DELETE /api/weight/{date}.
func (h *httpRemoteService) DeleteWeightLog(ctx context.Context, date string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/weight/" + url.PathEscape(date))
	if err != nil {
		return fmt.Errorf("delete weight log request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteService) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
