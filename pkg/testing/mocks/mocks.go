package mocks

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
)

// --- Mock Storage ---
type MockBlobStore struct {
	WriteFunc func(ctx context.Context, object string, data []byte) error
	ReadFunc  func(ctx context.Context, object string) ([]byte, error)
}

func (m *MockBlobStore) Write(ctx context.Context, object string, data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, object, data)
	}
	return nil
}
func (m *MockBlobStore) Read(ctx context.Context, object string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, object)
	}
	return nil, fmt.Errorf("%s: %w", object, fs.ErrNotExist)
}

// MemBlobStore keeps objects in memory.
type MemBlobStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Writes  int
}

func NewMemBlobStore() *MemBlobStore {
	return &MemBlobStore{Objects: map[string][]byte{}}
}

func (m *MemBlobStore) Write(ctx context.Context, object string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[object] = append([]byte(nil), data...)
	m.Writes++
	return nil
}

func (m *MemBlobStore) Read(ctx context.Context, object string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[object]
	if !ok {
		return nil, fmt.Errorf("%s: %w", object, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

// --- Mock Publisher ---
type MockPublisher struct {
	PublishCloudEventFunc func(ctx context.Context, topic string, e event.Event) (string, error)

	mu        sync.Mutex
	Published []event.Event
}

func (m *MockPublisher) PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error) {
	m.mu.Lock()
	m.Published = append(m.Published, e)
	m.mu.Unlock()

	if m.PublishCloudEventFunc != nil {
		return m.PublishCloudEventFunc(ctx, topic, e)
	}
	return "msg-id", nil
}

// --- Mock Workout Store ---
type MockWorkoutStore struct {
	Workouts []workout.Workout
	SaveErr  error
	Saves    int
	nextID   int
}

func (m *MockWorkoutStore) LoadAll(ctx context.Context) []workout.Workout {
	out := make([]workout.Workout, len(m.Workouts))
	copy(out, m.Workouts)
	return out
}

func (m *MockWorkoutStore) SaveAll(ctx context.Context, all []workout.Workout) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Workouts = append([]workout.Workout(nil), all...)
	m.Saves++
	return nil
}

func (m *MockWorkoutStore) GenerateID() string {
	m.nextID++
	return fmt.Sprintf("w-%d", m.nextID)
}

// --- Mock Event Sink ---
type RecordedChange struct {
	Change  workout.Change
	Workout workout.Workout
}

type MockEventSink struct {
	Changes []RecordedChange
}

func (m *MockEventSink) WorkoutChanged(ctx context.Context, change workout.Change, w workout.Workout) {
	m.Changes = append(m.Changes, RecordedChange{Change: change, Workout: w})
}
