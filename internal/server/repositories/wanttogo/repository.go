// Package wanttogo stores each user's want-to-go list: a set of destination
// names kept in insertion order.
package wanttogo

import "context"

// Repository persists want-to-go lists.
//
// Add is an atomic add-if-absent: it reports false without error when the
// destination is already on the user's list.
type Repository interface {
	List(ctx context.Context, userID string) ([]string, error)
	Contains(ctx context.Context, userID, destination string) (bool, error)
	Add(ctx context.Context, userID, destination string) (bool, error)
}
