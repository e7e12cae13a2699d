package impl

import (
	"context"
	"log/slog"

	deliverycontext "zapshift/internal/delivery/context"
	"zapshift/internal/domain/entity"
	domainerrors "zapshift/internal/domain/errors"
	"zapshift/internal/domain/repository"
	"zapshift/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser registers an account keyed by email. Registration is
// idempotent: an existing account is returned unchanged, its role
// untouched even if it was elevated since signup.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Debug("User already registered", slog.Any("userID", existing.ID))

		return &usecase.RegisterOutput{User: existing, Created: false}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing user")
	}

	newUser := &entity.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent signup may have won the unique email constraint;
		// the stored account is the answer either way.
		if errors.Is(err, domainerrors.ErrConflict) {
			winner, findErr := srv.userRepo.FindByEmail(ctx, input.Email)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load user after concurrent signup")
			}

			return &usecase.RegisterOutput{User: winner, Created: false}, nil
		}

		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID), slog.String("email", newUser.Email))

	return &usecase.RegisterOutput{User: newUser, Created: true}, nil
}

// GetUserByEmail retrieves a single user account.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup references unknown user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsers returns all user accounts.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
