package impl

import (
	"context"
	"testing"

	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	mockRepo "zapshift/internal/mocks/repository"
	"zapshift/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo
}

func TestUserService_RegisterUser_NewAccount(t *testing.T) {
	svc, userRepo := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:  "Nadia",
		Email: "new@example.com",
	})
	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestUserService_RegisterUser_ExistingAccountUnchanged(t *testing.T) {
	svc, userRepo := newUserService(t)

	ctx := context.Background()
	// The account was elevated to rider after signup; re-registration
	// must not reset the role.
	existing := &entity.User{
		ID:    uuid.New(),
		Email: "rider@example.com",
		Role:  entity.RoleRider,
	}

	userRepo.EXPECT().FindByEmail(ctx, "rider@example.com").Return(existing, nil)

	output, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:  "Arif",
		Email: "rider@example.com",
	})
	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, existing, output.User)
	assert.Equal(t, entity.RoleRider, output.User.Role)
}

func TestUserService_RegisterUser_ConcurrentSignupReturnsWinner(t *testing.T) {
	svc, userRepo := newUserService(t)

	ctx := context.Background()
	winner := &entity.User{
		ID:    uuid.New(),
		Email: "race@example.com",
		Role:  entity.RoleUser,
	}

	userRepo.EXPECT().
		FindByEmail(ctx, "race@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrConflict.WrapMessage("user with this email already exists"))
	userRepo.EXPECT().
		FindByEmail(ctx, "race@example.com").
		Return(winner, nil).Once()

	output, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:  "Nadia",
		Email: "race@example.com",
	})
	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, winner, output.User)
}

func TestUserService_GetUserByEmail_NotFound(t *testing.T) {
	svc, userRepo := newUserService(t)

	ctx := context.Background()
	userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUserByEmail(ctx, "ghost@example.com")
	require.Error(t, err)
	assert.Nil(t, user)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, userRepo := newUserService(t)

	ctx := context.Background()
	expected := []*entity.User{{ID: uuid.New(), Email: "a@example.com"}}

	userRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}
