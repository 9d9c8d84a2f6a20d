// Package app assembles the client's dependency graph: config, logger,
// credential store, API client, session manager, and the application
// services the commands call.
package app

import (
	"net/http"

	"github.com/flicksy/flicksy-cli/internal/flicksy/api"
	"github.com/flicksy/flicksy-cli/internal/flicksy/config"
	"github.com/flicksy/flicksy-cli/internal/flicksy/credstore"
	"github.com/flicksy/flicksy-cli/internal/flicksy/services"
	"github.com/flicksy/flicksy-cli/internal/flicksy/session"
	"github.com/flicksy/flicksy-cli/internal/logging"
)

// App bundles everything a command needs.
type App struct {
	Config   *config.Config
	Log      logging.Logger
	API      api.Client
	Sessions *session.Manager

	Auth         *services.AuthService
	Feed         *services.FeedService
	Discovery    *services.DiscoveryService
	Verification *services.VerificationService
	Admin        *services.AdminService
}

// sessionSource defers credential lookups to the manager once it exists.
// It breaks the construction cycle between the API client (which needs a
// credential source) and the session manager (which needs the client as
// its resolver).
type sessionSource struct {
	m *session.Manager
}

func (s *sessionSource) Credential() string {
	if s.m == nil {
		return ""
	}
	return s.m.Credential()
}

// New constructs the graph from cfg.
func New(cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}

	store, err := credstore.NewFileStore(cfg.HomeDir)
	if err != nil {
		return nil, err
	}

	src := &sessionSource{}
	client := api.NewHTTPClient(cfg.ServerURL, &http.Client{Timeout: cfg.RequestTimeout}, src)
	sessions := session.NewManager(client, store, log.With("component", "session"))
	src.m = sessions

	return &App{
		Config:       cfg,
		Log:          log,
		API:          client,
		Sessions:     sessions,
		Auth:         services.NewAuthService(client, sessions),
		Feed:         services.NewFeedService(client),
		Discovery:    services.NewDiscoveryService(client),
		Verification: services.NewVerificationService(client),
		Admin:        services.NewAdminService(client),
	}, nil
}
