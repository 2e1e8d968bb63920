package users

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{UserName: "alice", Credential: []byte("pw1")})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	byLogin, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byLogin.ID)
	assert.Equal(t, []byte("pw1"), byLogin.Credential)

	byID, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.UserName)

	_, err = repo.GetUserByLogin(ctx, "Alice")
	assert.ErrorIs(t, err, common.ErrorNotFound, "usernames are case-sensitive")
}

func TestMemoryRepository_DuplicateUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{UserName: "alice", Credential: []byte("pw1")})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{UserName: "alice", Credential: []byte("pw2")})
	assert.ErrorIs(t, err, common.ErrorUsernameTaken)

	stored, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("pw1"), stored.Credential, "losing registration must not overwrite")
}

func TestMemoryRepository_ConcurrentCreateSingleWinner(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.User{UserName: "bob", Credential: []byte("x")})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case err == common.ErrorUsernameTaken:
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, n-1, taken)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{UserName: "carol", Credential: []byte("abc")})
	require.NoError(t, err)

	u, err := repo.GetUserByLogin(ctx, "carol")
	require.NoError(t, err)
	u.Credential[0] = 'z'

	again, err := repo.GetUserByLogin(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again.Credential)
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, &models.User{UserName: "dave"})
	assert.ErrorIs(t, err, context.Canceled)
}
