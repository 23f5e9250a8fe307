// Package workout holds the workout record, its ownership rules and the
// list query evaluation used by the HTTP handlers.
package workout

import (
	"context"
	"errors"
)

// Workout is a single logged training session.
type Workout struct {
	ID             string  `json:"id"`
	OwnerID        string  `json:"ownerId"`
	Date           string  `json:"date"`
	Exercise       string  `json:"exercise"`
	Duration       float64 `json:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned"`
	Notes          string  `json:"notes"`
}

var (
	ErrValidation = errors.New("missing required fields")
	ErrDuplicate  = errors.New("duplicate workout entry")
	ErrNotFound   = errors.New("workout not found")
	ErrForbidden  = errors.New("caller does not own workout")
)

// Caller is the authenticated identity a request acts as.
type Caller struct {
	ID      string
	IsAdmin bool
}

// Store persists the full workout collection as one unit.
// LoadAll never fails: a missing or unreadable collection is empty.
type Store interface {
	LoadAll(ctx context.Context) []Workout
	SaveAll(ctx context.Context, workouts []Workout) error
	GenerateID() string
}

// Change identifies the kind of mutation reported to an EventSink.
type Change string

const (
	ChangeCreated Change = "created"
	ChangeUpdated Change = "updated"
	ChangeDeleted Change = "deleted"
)

// EventSink is notified after a mutation has been persisted.
type EventSink interface {
	WorkoutChanged(ctx context.Context, change Change, w Workout)
}

// CreateInput carries the client-supplied fields of a new workout.
type CreateInput struct {
	Date           string  `json:"date"`
	Exercise       string  `json:"exercise"`
	Duration       float64 `json:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned"`
	Notes          string  `json:"notes"`
}

// UpdateInput lists the mutable fields. Nil means "leave untouched".
type UpdateInput struct {
	Duration       *float64 `json:"duration"`
	CaloriesBurned *float64 `json:"caloriesBurned"`
	Notes          *string  `json:"notes"`
	Exercise       *string  `json:"exercise"`
}

// ListQuery is the parsed form of GET /api/workouts parameters.
type ListQuery struct {
	Exercise string
	Date     string
	Sort     string
	All      bool
}
