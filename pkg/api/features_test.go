package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cucumber/godog"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
)

// apiWorld is the per-scenario state of the feature suite.
type apiWorld struct {
	server *testServer
	last   *httptest.ResponseRecorder
	lastID string
}

func keyFor(user string) string {
	return "key-" + user
}

func (w *apiWorld) send(user, method, path, body string) {
	key := ""
	if user != "" {
		key = keyFor(user)
	}
	w.last = w.server.serve(method, path, key, body)
}

func (w *apiWorld) createsWorkout(user, date, exercise string, duration int) error {
	w.send(user, http.MethodPost, "/api/workouts",
		fmt.Sprintf(`{"date":%q,"exercise":%q,"duration":%d}`, date, exercise, duration))

	if w.last.Code == http.StatusCreated {
		var created workout.Workout
		if err := json.Unmarshal(w.last.Body.Bytes(), &created); err != nil {
			return err
		}
		w.lastID = created.ID
	}
	return nil
}

func (w *apiWorld) listsWithoutKey() error {
	w.send("", http.MethodGet, "/api/workouts", "")
	return nil
}

func (w *apiWorld) lists(user string) error {
	w.send(user, http.MethodGet, "/api/workouts", "")
	return nil
}

func (w *apiWorld) listsWithQuery(user, query string) error {
	w.send(user, http.MethodGet, "/api/workouts?"+query, "")
	return nil
}

func (w *apiWorld) updatesLast(user string, duration int) error {
	return w.updates(user, w.lastID, duration)
}

func (w *apiWorld) updates(user, id string, duration int) error {
	w.send(user, http.MethodPut, "/api/workouts/"+id, fmt.Sprintf(`{"duration":%d}`, duration))
	return nil
}

func (w *apiWorld) deletesLast(user string) error {
	w.send(user, http.MethodDelete, "/api/workouts/"+w.lastID, "")
	return nil
}

func (w *apiWorld) statusIs(code int) error {
	if w.last.Code != code {
		return fmt.Errorf("expected status %d, got %d: %s", code, w.last.Code, w.last.Body.String())
	}
	return nil
}

func (w *apiWorld) errorIs(msg string) error {
	var body map[string]string
	if err := json.Unmarshal(w.last.Body.Bytes(), &body); err != nil {
		return err
	}
	if body["error"] != msg {
		return fmt.Errorf("expected error %q, got %q", msg, body["error"])
	}
	return nil
}

func (w *apiWorld) ownedBy(user string) error {
	var got workout.Workout
	if err := json.Unmarshal(w.last.Body.Bytes(), &got); err != nil {
		return err
	}
	if got.OwnerID != user {
		return fmt.Errorf("expected owner %q, got %q", user, got.OwnerID)
	}
	return nil
}

func (w *apiWorld) listed() ([]workout.Workout, error) {
	var got []workout.Workout
	if err := json.Unmarshal(w.last.Body.Bytes(), &got); err != nil {
		return nil, err
	}
	return got, nil
}

func (w *apiWorld) listContains(n int) error {
	got, err := w.listed()
	if err != nil {
		return err
	}
	if len(got) != n {
		return fmt.Errorf("expected %d workouts, got %d", n, len(got))
	}
	return nil
}

func (w *apiWorld) everyListedOwnedBy(user string) error {
	got, err := w.listed()
	if err != nil {
		return err
	}
	for _, wk := range got {
		if wk.OwnerID != user {
			return fmt.Errorf("workout %s is owned by %q", wk.ID, wk.OwnerID)
		}
	}
	return nil
}

func (w *apiWorld) firstListedOwnedBy(user string) error {
	got, err := w.listed()
	if err != nil {
		return err
	}
	if len(got) == 0 || got[0].OwnerID != user {
		return fmt.Errorf("expected first workout owned by %q, got %+v", user, got)
	}
	return nil
}

func InitializeScenario(sc *godog.ScenarioContext) {
	w := &apiWorld{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		keys := fmt.Sprintf(`{"alice":%q,"bob":%q,"root":%q}`, keyFor("alice"), keyFor("bob"), keyFor("root"))
		w.server = buildServer(keys)
		w.last = nil
		w.lastID = ""
		return ctx, nil
	})

	sc.Step(`^"([^"]*)" creates a workout on "([^"]*)" for "([^"]*)" lasting (\d+) minutes$`, w.createsWorkout)
	sc.Step(`^a request without an API key lists workouts$`, w.listsWithoutKey)
	sc.Step(`^"([^"]*)" lists workouts$`, w.lists)
	sc.Step(`^"([^"]*)" lists workouts with "([^"]*)"$`, w.listsWithQuery)
	sc.Step(`^"([^"]*)" updates the last workout with duration (\d+)$`, w.updatesLast)
	sc.Step(`^"([^"]*)" updates workout "([^"]*)" with duration (\d+)$`, w.updates)
	sc.Step(`^"([^"]*)" deletes the last workout$`, w.deletesLast)
	sc.Step(`^the response status is (\d+)$`, w.statusIs)
	sc.Step(`^the error is "([^"]*)"$`, w.errorIs)
	sc.Step(`^the workout is owned by "([^"]*)"$`, w.ownedBy)
	sc.Step(`^the list contains (\d+) workouts?$`, w.listContains)
	sc.Step(`^every listed workout is owned by "([^"]*)"$`, w.everyListedOwnedBy)
	sc.Step(`^the first listed workout is owned by "([^"]*)"$`, w.firstListedOwnedBy)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
