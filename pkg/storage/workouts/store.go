// Package workouts persists the workout collection as a single JSON array.
package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"

	shared "github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
)

// DefaultObject is the object name used when none is configured.
const DefaultObject = "workouts.json"

// JSONStore keeps every workout in one blob and rewrites it on each save.
type JSONStore struct {
	blobs  shared.BlobStore
	object string
	logger *slog.Logger
}

func NewJSONStore(blobs shared.BlobStore, object string, logger *slog.Logger) *JSONStore {
	if object == "" {
		object = DefaultObject
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONStore{
		blobs:  blobs,
		object: object,
		logger: logger.With("component", "workout-store", "object", object),
	}
}

// Init writes an empty collection when the backing object does not exist yet.
func (s *JSONStore) Init(ctx context.Context) error {
	_, err := s.blobs.Read(ctx, s.object)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		// Unreadable stores still serve as empty; do not clobber them.
		s.logger.Warn("Workout store exists but could not be read", "error", err)
		return nil
	}

	s.logger.Info("Creating empty workout store")
	if err := s.blobs.Write(ctx, s.object, []byte("[]")); err != nil {
		return fmt.Errorf("init workout store: %w", err)
	}
	return nil
}

// LoadAll returns the stored workouts. A missing or corrupt object yields an
// empty collection instead of an error.
func (s *JSONStore) LoadAll(ctx context.Context) []workout.Workout {
	data, err := s.blobs.Read(ctx, s.object)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Workout store missing, treating as empty")
		} else {
			s.logger.Warn("Failed to read workout store, treating as empty", "error", err)
		}
		return []workout.Workout{}
	}

	var all []workout.Workout
	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Warn("Workout store is not valid JSON, treating as empty", "error", err)
		return []workout.Workout{}
	}
	if all == nil {
		return []workout.Workout{}
	}
	return all
}

// SaveAll overwrites the whole collection.
func (s *JSONStore) SaveAll(ctx context.Context, all []workout.Workout) error {
	if all == nil {
		all = []workout.Workout{}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode workouts: %w", err)
	}
	if err := s.blobs.Write(ctx, s.object, data); err != nil {
		s.logger.Error("Failed to write workout store", "error", err)
		return fmt.Errorf("write workouts: %w", err)
	}
	return nil
}

// GenerateID returns a random v4 UUID.
func (s *JSONStore) GenerateID() string {
	return uuid.NewString()
}
