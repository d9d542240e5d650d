package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefsOf(u User) Preferences {
	return Preferences{
		MotherTongue: u.MotherTongue,
		EnglishLevel: u.EnglishLevel,
		LearningGoal: u.LearningGoal,
		Interests:    u.Interests,
		Focus:        u.Focus,
		Voice:        u.Voice,
	}
}

func storedCount(r *InMemoryRepository) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func TestInMemoryUpsert_UpdateBranchAppliesOnlySuppliedPreferences(t *testing.T) {
	repo := NewInMemoryRepository([]User{{ID: "u-1", Email: "a@x.com", Name: "orig", MotherTongue: strPtr("es")}})
	ctx := context.Background()

	u, inserted, err := repo.Upsert(ctx, User{Email: "a@x.com", Name: "other", Voice: strPtr("male")}, Preferences{EnglishLevel: strPtr("b1")})
	require.NoError(t, err)

	assert.False(t, inserted)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "orig", u.Name)
	require.NotNil(t, u.MotherTongue)
	assert.Equal(t, "es", *u.MotherTongue)
	require.NotNil(t, u.EnglishLevel)
	assert.Equal(t, "b1", *u.EnglishLevel)
	assert.Nil(t, u.Voice, "create fields must not leak into the update branch")

	stored, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u, stored)
	assert.Equal(t, 1, storedCount(repo))
}

func TestInMemoryRepository_CallerCannotMutateStoredUser(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	ctx := context.Background()

	mother := "es"
	res, err := svc.Resolve(ctx, "a@x.com", Preferences{MotherTongue: &mother})
	require.NoError(t, err)
	require.True(t, res.Created)

	mother = "fr"
	*res.User.MotherTongue = "de"

	stored, err := svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored.MotherTongue)
	assert.Equal(t, "es", *stored.MotherTongue)

	*stored.MotherTongue = "it"
	again, err := svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "es", *again.MotherTongue)
}

func TestInMemoryRepository_SeedIsCopied(t *testing.T) {
	focus := "speaking"
	seed := []User{{Email: "s@x.com", Name: "s", Focus: &focus}}
	repo := NewInMemoryRepository(seed)

	focus = "listening"

	u, err := repo.GetByEmail(context.Background(), "s@x.com")
	require.NoError(t, err)
	require.NotNil(t, u.Focus)
	assert.Equal(t, "speaking", *u.Focus)
	assert.NotEmpty(t, u.ID)
}
