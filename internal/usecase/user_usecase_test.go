package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUseCase_Create(t *testing.T) {
	uc := NewUserUC(newFakeUserRepo(), testLogger())

	user, err := uc.CreateUser(context.Background(), NewCreateUserReq(ptr("Alice"), ptr("alice@example.com")))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserUseCase_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUC(repo, testLogger())
	ctx := context.Background()

	_, err := uc.CreateUser(ctx, NewCreateUserReq(ptr("Alice"), ptr("alice@example.com")))
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, NewCreateUserReq(ptr("Alice 2"), ptr("alice@example.com")))
	assert.ErrorIs(t, err, e.ErrEmailTaken)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserUseCase_MissingFields(t *testing.T) {
	uc := NewUserUC(newFakeUserRepo(), testLogger())

	_, err := uc.CreateUser(context.Background(), NewCreateUserReq(ptr("Alice"), nil))
	assert.ErrorIs(t, err, e.ErrMissingFields)
}
