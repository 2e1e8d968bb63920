package client

import (
	"context"

	"github.com/dmitrijs2005/wanttogo/internal/api"
)

// Client is the API surface the CLI uses.
type Client interface {
	Close() error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	IsLoggedIn() bool
	UserName() string
	ViewDestination(ctx context.Context, name string) (*api.Destination, error)
	AddToList(ctx context.Context, destinationName string) (*api.AddToListResponse, error)
	ViewList(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
