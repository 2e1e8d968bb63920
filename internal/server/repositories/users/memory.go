package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. The mutex is held across
// the existence check and the insert, so usernames stay unique under
// concurrent registration.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*models.User
	byUserName map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[string]*models.User),
		byUserName: make(map[string]*models.User),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUserName[user.UserName]; ok {
		return nil, common.ErrorUsernameTaken
	}

	stored := &models.User{
		ID:         uuid.NewString(),
		UserName:   user.UserName,
		Credential: append([]byte(nil), user.Credential...),
		CreatedAt:  time.Now().UTC(),
	}
	r.byID[stored.ID] = stored
	r.byUserName[stored.UserName] = stored

	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt
	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyUser(r.byUserName[userName])
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyUser(r.byID[id])
}

func copyUser(u *models.User) (*models.User, error) {
	if u == nil {
		return nil, common.ErrorNotFound
	}
	c := *u
	c.Credential = append([]byte(nil), u.Credential...)
	return &c, nil
}
