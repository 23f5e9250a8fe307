package workoutsapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/api"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/bootstrap"
	httputil "github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/http"
)

var (
	router     http.Handler
	routerOnce sync.Once
	routerErr  error
)

func init() {
	functions.HTTP("WorkoutsAPI", WorkoutsAPI)
}

func initRouter(ctx context.Context) (http.Handler, error) {
	routerOnce.Do(func() {
		cfg := bootstrap.LoadConfig()
		svc, err := bootstrap.NewService(ctx, cfg)
		if err != nil {
			slog.Error("Failed to initialize service", "error", err)
			routerErr = err
			return
		}
		router = api.NewRouter(&api.Handler{
			Auth:     svc.Auth,
			Workouts: svc.Workouts,
			Logger:   svc.Logger.With("component", "http"),
		}, api.Options{CORSAllowedOrigins: cfg.CORSAllowedOrigins})
	})
	return router, routerErr
}

// WorkoutsAPI is the HTTP entry point when deployed as a Cloud Function.
// The service is built on the first request and reused afterwards.
func WorkoutsAPI(w http.ResponseWriter, r *http.Request) {
	// Clients live for the whole instance, not the first request.
	h, err := initRouter(context.Background())
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, httputil.MsgInternal)
		return
	}
	h.ServeHTTP(w, r)
}
