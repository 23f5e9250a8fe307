package workout

import (
	"context"
	"fmt"
	"log/slog"
)

// Service applies ownership rules on top of a Store.
// Every call is a full read-modify-write cycle; concurrent writers race and
// the last SaveAll wins.
type Service struct {
	store  Store
	events EventSink
	logger *slog.Logger
}

// NewService creates a Service. events may be nil.
func NewService(store Store, events EventSink, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		events: events,
		logger: logger.With("component", "workouts"),
	}
}

// Create validates the input and appends a new workout owned by caller.
func (s *Service) Create(ctx context.Context, caller Caller, in CreateInput) (Workout, error) {
	if in.Date == "" || in.Exercise == "" || in.Duration == 0 {
		return Workout{}, ErrValidation
	}

	workouts := s.store.LoadAll(ctx)
	for _, w := range workouts {
		if w.OwnerID == caller.ID && w.Date == in.Date && w.Exercise == in.Exercise {
			return Workout{}, fmt.Errorf("%w: %s on %s", ErrDuplicate, in.Exercise, in.Date)
		}
	}

	created := Workout{
		ID:             s.store.GenerateID(),
		OwnerID:        caller.ID,
		Date:           in.Date,
		Exercise:       in.Exercise,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
	}

	workouts = append(workouts, created)
	if err := s.store.SaveAll(ctx, workouts); err != nil {
		return Workout{}, fmt.Errorf("save workouts: %w", err)
	}

	s.logger.Info("Workout created", "workout_id", created.ID, "user_id", caller.ID)
	s.notify(ctx, ChangeCreated, created)
	return created, nil
}

// List returns the workouts visible to caller after filtering and sorting.
// The result is never nil.
func (s *Service) List(ctx context.Context, caller Caller, q ListQuery) []Workout {
	workouts := s.store.LoadAll(ctx)

	if !caller.IsAdmin || !q.All {
		workouts = filter(workouts, func(w Workout) bool { return w.OwnerID == caller.ID })
	}
	if q.Exercise != "" {
		workouts = filter(workouts, func(w Workout) bool { return w.Exercise == q.Exercise })
	}
	if q.Date != "" {
		workouts = filter(workouts, func(w Workout) bool { return w.Date == q.Date })
	}
	if q.Sort != "" {
		sortWorkouts(workouts, ParseSort(q.Sort))
	}

	return workouts
}

// Update applies the supplied fields to a workout the caller owns.
// Admins get no override here.
func (s *Service) Update(ctx context.Context, caller Caller, id string, in UpdateInput) (Workout, error) {
	workouts := s.store.LoadAll(ctx)
	idx := indexOf(workouts, id)
	if idx == -1 {
		return Workout{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if workouts[idx].OwnerID != caller.ID {
		return Workout{}, fmt.Errorf("%w: %s", ErrForbidden, id)
	}

	w := &workouts[idx]
	if in.Duration != nil {
		w.Duration = *in.Duration
	}
	if in.CaloriesBurned != nil {
		w.CaloriesBurned = *in.CaloriesBurned
	}
	if in.Notes != nil {
		w.Notes = *in.Notes
	}
	if in.Exercise != nil {
		w.Exercise = *in.Exercise
	}

	if err := s.store.SaveAll(ctx, workouts); err != nil {
		return Workout{}, fmt.Errorf("save workouts: %w", err)
	}

	s.logger.Info("Workout updated", "workout_id", id, "user_id", caller.ID)
	s.notify(ctx, ChangeUpdated, *w)
	return *w, nil
}

// Delete removes a workout owned by caller, or any workout when caller is admin.
func (s *Service) Delete(ctx context.Context, caller Caller, id string) error {
	workouts := s.store.LoadAll(ctx)
	idx := indexOf(workouts, id)
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	deleted := workouts[idx]
	if deleted.OwnerID != caller.ID && !caller.IsAdmin {
		return fmt.Errorf("%w: %s", ErrForbidden, id)
	}

	workouts = append(workouts[:idx], workouts[idx+1:]...)
	if err := s.store.SaveAll(ctx, workouts); err != nil {
		return fmt.Errorf("save workouts: %w", err)
	}

	s.logger.Info("Workout deleted", "workout_id", id, "user_id", caller.ID, "owner_id", deleted.OwnerID)
	s.notify(ctx, ChangeDeleted, deleted)
	return nil
}

func (s *Service) notify(ctx context.Context, change Change, w Workout) {
	if s.events == nil {
		return
	}
	s.events.WorkoutChanged(ctx, change, w)
}

func indexOf(workouts []Workout, id string) int {
	for i, w := range workouts {
		if w.ID == id {
			return i
		}
	}
	return -1
}
