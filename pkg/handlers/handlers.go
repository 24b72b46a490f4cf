package handlers

import (
	"context"

	"github.com/genads/genads-api/pkg/config"
	"github.com/genads/genads-api/pkg/services"
	"github.com/genads/genads-api/pkg/store"
)

// UserStore is the slice of the persistence layer the auth handlers need.
type UserStore interface {
	InsertUser(ctx context.Context, u *store.User) (string, error)
	FindUserByEmail(ctx context.Context, email string) (*store.User, error)
}

// VideoJobStore is the slice of the persistence layer the video and
// dashboard handlers need.
type VideoJobStore interface {
	InsertVideoJob(ctx context.Context, job *store.VideoJob) (string, error)
	FindVideoJobByID(ctx context.Context, id string) (*store.VideoJob, error)
	FinalizeVideoJob(ctx context.Context, id string) error
	CountVideoJobs(ctx context.Context, ownerEmail string, statuses ...string) (int64, error)
	RecentVideoJobs(ctx context.Context, ownerEmail string, limit int64) ([]store.VideoJob, error)
}

// Diagnoser is what the /test endpoint introspects.
type Diagnoser interface {
	Collections(ctx context.Context) ([]string, error)
}

// Deps carries the handlers' dependencies. The store fields stay nil when
// the service runs without a record store; each handler checks for that and
// answers "Database not available".
type Deps struct {
	Users     UserStore
	Videos    VideoJobStore
	Diag      Diagnoser
	Tokens    *services.TokenService
	Passwords *services.PasswordService
}

// Handlers holds all HTTP handlers and their dependencies.
type Handlers struct {
	cfg       *config.Config
	users     UserStore
	videos    VideoJobStore
	diag      Diagnoser
	tokens    *services.TokenService
	passwords *services.PasswordService
}

// New creates a new instance of Handlers.
func New(cfg *config.Config, deps Deps) *Handlers {
	return &Handlers{
		cfg:       cfg,
		users:     deps.Users,
		videos:    deps.Videos,
		diag:      deps.Diag,
		tokens:    deps.Tokens,
		passwords: deps.Passwords,
	}
}
