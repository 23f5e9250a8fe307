package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/auth"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
	httputil "github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/http"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/sentry"
)

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ListParams are the optional GET /api/workouts query parameters.
type ListParams struct {
	Exercise *string
	Date     *string
	Sort     *string
	All      *string
}

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	var in workout.CreateInput
	if err := decodeBody(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	created, err := h.Workouts.Create(r.Context(), caller(r), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, http.StatusCreated, created)
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	params, err := bindListParams(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	q := workout.ListQuery{
		Exercise: deref(params.Exercise),
		Date:     deref(params.Date),
		Sort:     deref(params.Sort),
		All:      deref(params.All) == "true",
	}
	h.respond(w, r, http.StatusOK, h.Workouts.List(r.Context(), caller(r), q))
}

func (h *Handler) updateWorkout(w http.ResponseWriter, r *http.Request) {
	var in workout.UpdateInput
	if err := decodeBody(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	updated, err := h.Workouts.Update(r.Context(), caller(r), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, updated)
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Workouts.Delete(r.Context(), caller(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, DeleteResponse{Message: "Workout deleted", ID: id})
}

func bindListParams(r *http.Request) (ListParams, error) {
	var p ListParams
	query := r.URL.Query()

	for name, dest := range map[string]**string{
		"exercise": &p.Exercise,
		"date":     &p.Date,
		"sort":     &p.Sort,
		"all":      &p.All,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			return p, httputil.BadRequest(httputil.MsgInvalidQuery, err)
		}
	}
	return p, nil
}

// decodeBody decodes a single JSON value into dst. An empty body leaves dst
// zeroed, which the service then rejects or ignores like an empty object.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return httputil.BadRequest(httputil.MsgInvalidBody, err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return httputil.BadRequest(httputil.MsgInvalidBody, errors.New("unexpected data after JSON body"))
	}
	return nil
}

// caller converts the identity set by authenticate.
func caller(r *http.Request) workout.Caller {
	id, _ := auth.FromContext(r.Context())
	return workout.Caller{ID: id.UserID, IsAdmin: id.IsAdmin}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		h.Logger.Warn("Failed to write response", "request_id", middleware.GetReqID(r.Context()), "error", err)
	}
}

// fail writes the error body for err. Server faults are logged and sent to
// Sentry; client errors are logged at info.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	he := httputil.Classify(err)
	logger := h.Logger.With(
		"request_id", middleware.GetReqID(r.Context()),
		"status", he.StatusCode,
		"error", err,
	)

	if he.StatusCode >= http.StatusInternalServerError {
		logger.Error("Request failed")
		sentry.CaptureException(r.Context(), err, logger)
	} else {
		logger.Info("Request rejected", "reason", he.Message)
	}

	if werr := httputil.WriteError(w, he.StatusCode, he.Message); werr != nil {
		logger.Warn("Failed to write error response", "write_error", werr)
	}
}
