// Package users is the account half of the account store: user records
// keyed by a unique username.
package users

import (
	"context"

	"github.com/dmitrijs2005/wanttogo/internal/server/models"
)

// Repository persists user records.
//
// Create returns common.ErrorUsernameTaken when the username already exists.
// Lookups return common.ErrorNotFound when no record matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
