package store

import (
	"context"

	"github.com/teapotframework/teabrew/pkg/model"
)

// Store defines the interface for fixture data operations. Get methods
// return a nil entity without an error when nothing matches, and list
// methods return the total match count alongside the requested page.
type Store interface {
	// Lifecycle.
	Start(ctx context.Context) error
	Stop() error
	Ping(ctx context.Context) error

	// Teapots.
	CreateTeapot(ctx context.Context, teapot model.Teapot) error
	GetTeapot(ctx context.Context, id string) (*model.Teapot, error)
	ListTeapots(ctx context.Context, query model.TeapotQuery) ([]model.Teapot, int, error)
	UpdateTeapot(ctx context.Context, teapot model.Teapot) error
	DeleteTeapot(ctx context.Context, id string) (bool, error)

	// Teas.
	CreateTea(ctx context.Context, tea model.Tea) error
	GetTea(ctx context.Context, id string) (*model.Tea, error)
	ListTeas(ctx context.Context, query model.TeaQuery) ([]model.Tea, int, error)
	UpdateTea(ctx context.Context, tea model.Tea) error
	DeleteTea(ctx context.Context, id string) (bool, error)

	// Brews.
	CreateBrew(ctx context.Context, brew model.Brew) error
	GetBrew(ctx context.Context, id string) (*model.Brew, error)
	ListBrews(ctx context.Context, query model.BrewQuery) ([]model.Brew, int, error)
	ListBrewsByTeapot(ctx context.Context, teapotID string, page model.PageQuery) ([]model.Brew, int, error)
	UpdateBrew(ctx context.Context, brew model.Brew) error
	DeleteBrew(ctx context.Context, id string) (bool, error)

	// Steeps.
	CreateSteep(ctx context.Context, steep model.Steep) (model.Steep, error)
	ListSteepsByBrew(ctx context.Context, brewID string, page model.PageQuery) ([]model.Steep, int, error)
}
