// Package devserver is a self-contained Flicksy backend for local
// development and tests. All state is in memory; trending lives in an
// embedded miniredis unless REDIS_ADDR points at a real instance.
package devserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/flicksy/flicksy-cli/internal/flicksy/models"
)

// Server bundles the Fiber app with its backing stores.
type Server struct {
	app  *fiber.App
	cfg  *Config
	rdb  *redis.Client
	mini *miniredis.Miniredis
	log  *zap.Logger
}

// New builds the server: store, seeded admin account, redis-backed
// trending and the route table.
func New(cfg *Config, log *zap.Logger) (*Server, error) {
	store := NewStore()

	adminHash, err := hashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := store.CreateUser(cfg.AdminUsername, "admin@flicksy.local", "Flicksy Admin", "", adminHash, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("seed admin account: %w", err)
	}

	var mini *miniredis.Miniredis
	redisAddr := cfg.RedisAddr
	if redisAddr == "" {
		mini, err = miniredis.Run()
		if err != nil {
			return nil, fmt.Errorf("start embedded redis: %w", err)
		}
		redisAddr = mini.Addr()
		log.Info("using embedded redis", zap.String("addr", redisAddr))
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	tokens := NewTokenManager(cfg.JWTSecret, cfg.TokenTTLHours)
	handlers := NewHandlers(store, tokens, NewTrending(rdb), cfg, log)

	app := fiber.New(fiber.Config{
		AppName:      "flicksyd",
		ErrorHandler: errorHandler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	setupRoutes(app, handlers)

	return &Server{app: app, cfg: cfg, rdb: rdb, mini: mini, log: log}, nil
}

// App exposes the Fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the configured address.
func (s *Server) Listen() error {
	s.log.Info("listening", zap.String("addr", s.cfg.Addr()))
	return s.app.Listen(s.cfg.Addr())
}

// Shutdown stops the server and releases the redis resources.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.app.ShutdownWithContext(ctx)
	if cerr := s.rdb.Close(); err == nil {
		err = cerr
	}
	if s.mini != nil {
		s.mini.Close()
	}
	return err
}

// NewLogger builds the structured zap logger for the dev backend.
func NewLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: true,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			LevelKey:   "level",
			TimeKey:    "ts",
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(l.String())
			},
			EncodeTime: zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}
