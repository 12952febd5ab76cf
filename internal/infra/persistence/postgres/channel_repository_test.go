package postgres

import (
	"context"
	"testing"
	"time"

	"farmlink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChannel(token, uid string, at time.Time) *entity.NotificationChannel {
	return &entity.NotificationChannel{
		Token:     token,
		UID:       uid,
		Email:     uid + "@example.com",
		Platform:  entity.DefaultPlatform,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestChannelRepository_UpsertTransfersOwnership(t *testing.T) {
	repo := NewChannelRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newChannel("token-aaaaaaaa", "user-a", repoTestNow)))
	require.NoError(t, repo.IncrementFailures(ctx, []string{"token-aaaaaaaa"}, repoTestNow))

	later := repoTestNow.Add(time.Hour)
	require.NoError(t, repo.Upsert(ctx, newChannel("token-aaaaaaaa", "user-b", later)))

	previous, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	assert.Empty(t, previous)

	current, err := repo.ListByUser(ctx, "user-b")
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "user-b@example.com", current[0].Email)
	assert.True(t, current[0].CreatedAt.Equal(repoTestNow), "created_at is kept")
	assert.True(t, current[0].UpdatedAt.Equal(later))
	assert.Zero(t, current[0].FailureCount)
	assert.Nil(t, current[0].LastFailureAt)
}

func TestChannelRepository_DeleteOwned(t *testing.T) {
	repo := NewChannelRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newChannel("token-owned-1", "user-a", repoTestNow)))

	removed, err := repo.DeleteOwned(ctx, "user-b", "token-owned-1")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = repo.DeleteOwned(ctx, "user-a", "token-unknown")
	require.NoError(t, err)
	assert.False(t, removed)

	channels, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, channels, 1)

	removed, err = repo.DeleteOwned(ctx, "user-a", "token-owned-1")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestChannelRepository_FailureTracking(t *testing.T) {
	repo := NewChannelRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newChannel("token-flaky-1", "user-a", repoTestNow)))
	require.NoError(t, repo.Upsert(ctx, newChannel("token-flaky-2", "user-a", repoTestNow)))

	tokens := []string{"token-flaky-1", "token-flaky-2"}
	require.NoError(t, repo.IncrementFailures(ctx, tokens, repoTestNow.Add(time.Minute)))
	require.NoError(t, repo.IncrementFailures(ctx, []string{"token-flaky-1"}, repoTestNow.Add(2*time.Minute)))
	require.NoError(t, repo.ResetFailures(ctx, []string{"token-flaky-2"}))

	channels, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	byToken := map[string]*entity.NotificationChannel{}
	for _, ch := range channels {
		byToken[ch.Token] = ch
	}
	assert.Equal(t, 2, byToken["token-flaky-1"].FailureCount)
	assert.True(t, byToken["token-flaky-1"].UpdatedAt.Equal(repoTestNow), "failures do not refresh updated_at")
	assert.Equal(t, 0, byToken["token-flaky-2"].FailureCount)

	removed, err := repo.DeleteFailing(ctx, tokens, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.DeleteFailing(ctx, tokens, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestChannelRepository_DeleteByTokensAndStale(t *testing.T) {
	repo := NewChannelRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, newChannel("token-old-001", "user-a", repoTestNow.Add(-90*24*time.Hour))))
	require.NoError(t, repo.Upsert(ctx, newChannel("token-new-001", "user-a", repoTestNow)))
	require.NoError(t, repo.Upsert(ctx, newChannel("token-bad-001", "user-b", repoTestNow)))

	removed, err := repo.DeleteByTokens(ctx, []string{"token-bad-001", "token-missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.DeleteStale(ctx, repoTestNow.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	channels, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "token-new-001", channels[0].Token)
}
