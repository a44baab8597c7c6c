package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(now time.Time) *dashboardSessionRepository {
	return &dashboardSessionRepository{
		sessions: make(map[string]*domain.DashboardSession),
		now:      func() time.Time { return now },
	}
}

func TestDashboardSessionRepository_SaveAndGet(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := newTestRepository(now)

	session := &domain.DashboardSession{ID: "abc", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Save(session))

	found, err := repo.GetByID("abc")
	require.NoError(t, err)
	assert.Same(t, session, found)
	assert.Equal(t, 1, repo.Count())

	_, err = repo.GetByID("outra")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDashboardSessionRepository_SaveRequiresID(t *testing.T) {
	repo := newTestRepository(time.Now())

	assert.Error(t, repo.Save(nil))
	assert.Error(t, repo.Save(&domain.DashboardSession{}))
	assert.Equal(t, 0, repo.Count())
}

func TestDashboardSessionRepository_ExpiredSessionIsHidden(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := newTestRepository(now)

	require.NoError(t, repo.Save(&domain.DashboardSession{ID: "velha", ExpiresAt: now}))

	_, err := repo.GetByID("velha")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 1, repo.Count())
}

func TestDashboardSessionRepository_DeleteExpired(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := newTestRepository(now)

	require.NoError(t, repo.Save(&domain.DashboardSession{ID: "a", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Save(&domain.DashboardSession{ID: "b", ExpiresAt: now}))
	require.NoError(t, repo.Save(&domain.DashboardSession{ID: "c", ExpiresAt: now.Add(time.Minute)}))

	removed, err := repo.DeleteExpired(now)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, repo.Count())

	_, err = repo.GetByID("c")
	assert.NoError(t, err)
}

func TestDashboardSessionRepository_Delete(t *testing.T) {
	repo := newTestRepository(time.Now())
	require.NoError(t, repo.Save(&domain.DashboardSession{ID: "a", ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, repo.Delete("a"))
	assert.ErrorIs(t, repo.Delete("a"), ErrSessionNotFound)
	assert.Equal(t, 0, repo.Count())
}

func TestDashboardSessionRepository_ConcurrentAccess(t *testing.T) {
	repo := NewDashboardSessionRepository()
	expiresAt := time.Now().Add(time.Hour)

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := string(rune('A' + i))
		go func() {
			defer wg.Done()
			_ = repo.Save(&domain.DashboardSession{ID: id, ExpiresAt: expiresAt})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.GetByID(id)
			_ = repo.Count()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Count())
}
