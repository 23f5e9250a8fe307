package pubsub

import (
	"context"
	"log/slog"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"

	shared "github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
)

const (
	WorkoutEventSource     = "/api/workouts"
	workoutEventTypePrefix = "com.fitglue.workout."
)

// WorkoutEventType returns the CloudEvent type for a change, e.g.
// "com.fitglue.workout.created".
func WorkoutEventType(change workout.Change) string {
	return workoutEventTypePrefix + string(change)
}

// WorkoutEventData is the CloudEvent payload for a workout change.
type WorkoutEventData struct {
	Change  workout.Change  `json:"change"`
	Workout workout.Workout `json:"workout"`
}

// NewCloudEvent creates a standardized CloudEvent v1.0
func NewCloudEvent(source, eventType string, data interface{}) (cloudevents.Event, error) {
	e := cloudevents.NewEvent()
	e.SetSpecVersion("1.0")
	e.SetID(uuid.NewString())
	e.SetTime(time.Now().UTC())
	e.SetType(eventType)
	e.SetSource(source)

	if err := e.SetData(cloudevents.ApplicationJSON, data); err != nil {
		return e, err
	}

	return e, nil
}

// WorkoutEvents publishes workout changes. Publishing is best effort: a
// failure is logged and never surfaces to the request.
type WorkoutEvents struct {
	Publisher shared.Publisher
	Topic     string
	Logger    *slog.Logger
}

func (p *WorkoutEvents) WorkoutChanged(ctx context.Context, change workout.Change, w workout.Workout) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e, err := NewCloudEvent(WorkoutEventSource, WorkoutEventType(change), WorkoutEventData{
		Change:  change,
		Workout: w,
	})
	if err != nil {
		logger.Warn("Failed to build workout event", "error", err, "workout_id", w.ID)
		return
	}
	e.SetSubject(w.ID)

	msgID, err := p.Publisher.PublishCloudEvent(ctx, p.Topic, e)
	if err != nil {
		logger.Warn("Failed to publish workout event", "error", err, "workout_id", w.ID, "change", change)
		return
	}
	logger.Debug("Published workout event", "message_id", msgID, "workout_id", w.ID, "change", change)
}
