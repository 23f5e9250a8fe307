package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"

	shared "github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/auth"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
	infrapubsub "github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/pubsub"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/sentry"
	infrastorage "github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/storage"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/storage/workouts"
)

// ServiceName tags every log line and Sentry event.
const ServiceName = "workouts-api"

// Service holds initialized dependencies
type Service struct {
	Config   *Config
	Logger   *slog.Logger
	Auth     *auth.Authenticator
	Store    *workouts.JSONStore
	Workouts *workout.Service

	closers []func() error
}

// NewService initializes all standard dependencies
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	logger := NewLogger(ServiceName, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger.Info("Initializing service", "store_backend", cfg.StoreBackend, "publish", cfg.EnablePublish)

	if err := sentry.Init(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		ServerName:  ServiceName,
	}, logger); err != nil {
		return nil, err
	}

	svc := &Service{Config: cfg, Logger: logger}

	blobs, object, err := svc.initBlobStore(ctx)
	if err != nil {
		svc.Close()
		return nil, err
	}

	pub, err := svc.initPublisher(ctx)
	if err != nil {
		svc.Close()
		return nil, err
	}

	svc.Store = workouts.NewJSONStore(blobs, object, logger)
	if err := svc.Store.Init(ctx); err != nil {
		svc.Close()
		return nil, err
	}

	creds := auth.LoadCredentials(cfg.APIKeys, cfg.AdminUsers, logger)
	svc.Auth = auth.NewAuthenticator(creds)

	events := &infrapubsub.WorkoutEvents{
		Publisher: pub,
		Topic:     cfg.EventsTopic,
		Logger:    logger.With("component", "events"),
	}
	svc.Workouts = workout.NewService(svc.Store, events, logger)

	return svc, nil
}

func (s *Service) initBlobStore(ctx context.Context) (shared.BlobStore, string, error) {
	switch s.Config.StoreBackend {
	case BackendGCS:
		gcsClient, err := storage.NewClient(ctx)
		if err != nil {
			s.Logger.Error("Storage init failed", "error", err)
			return nil, "", fmt.Errorf("storage init: %w", err)
		}
		s.closers = append(s.closers, gcsClient.Close)
		s.Logger.Info("Workout store: GCS", "bucket", s.Config.GCSBucket, "object", s.Config.GCSObject)
		return &infrastorage.StorageAdapter{Client: gcsClient, Bucket: s.Config.GCSBucket}, s.Config.GCSObject, nil
	default:
		files, err := infrastorage.NewFileAdapter(filepath.Dir(s.Config.DataFile))
		if err != nil {
			s.Logger.Error("Data dir init failed", "error", err)
			return nil, "", err
		}
		s.Logger.Info("Workout store: file", "path", s.Config.DataFile)
		return files, filepath.Base(s.Config.DataFile), nil
	}
}

func (s *Service) initPublisher(ctx context.Context) (shared.Publisher, error) {
	if !s.Config.EnablePublish {
		s.Logger.Info("Pub/Sub: MOCK (LogPublisher)")
		return &infrapubsub.LogPublisher{Logger: s.Logger.With("component", "events")}, nil
	}

	psClient, err := pubsub.NewClient(ctx, s.Config.ProjectID)
	if err != nil {
		s.Logger.Error("PubSub init failed", "error", err)
		return nil, fmt.Errorf("pubsub init: %w", err)
	}
	s.closers = append(s.closers, psClient.Close)
	s.Logger.Info("Pub/Sub: REAL (ENABLE_PUBLISH=true)", "topic", s.Config.EventsTopic)
	return &infrapubsub.PubSubAdapter{Client: psClient}, nil
}

// Close releases cloud clients in reverse order of creation.
func (s *Service) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
