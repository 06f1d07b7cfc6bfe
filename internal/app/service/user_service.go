package service

import (
	"context"
	"errors"
	"time"

	"productivity/internal/auth"
	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
)

// UserService implements registration, authentication and self-service
// account management.
type UserService struct {
	userRepository ports.UserRepository
	tokens         *auth.TokenService
	loginTokenTTL  time.Duration
	defaultAvatar  []byte
}

func NewUserService(userRepository ports.UserRepository, tokens *auth.TokenService, loginTokenTTL time.Duration, defaultAvatar []byte) *UserService {
	return &UserService{
		userRepository: userRepository,
		tokens:         tokens,
		loginTokenTTL:  loginTokenTTL,
		defaultAvatar:  defaultAvatar,
	}
}

func (s *UserService) Register(ctx context.Context, in domain.RegisterUserInput) error {
	exists, err := s.userRepository.ExistsByLogin(ctx, in.Login)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrLoginTaken
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return err
	}

	_, err = s.userRepository.Insert(ctx, domain.User{
		Name:     in.Name,
		Login:    in.Login,
		Password: hashed,
		Image:    s.defaultAvatar,
		RoleID:   domain.DefaultRoleID,
	})
	return err
}

func (s *UserService) Login(ctx context.Context, login, password string) (string, error) {
	user, err := s.userRepository.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Login, s.loginTokenTTL)
}

func (s *UserService) Profile(ctx context.Context, login string) (domain.User, error) {
	return s.userRepository.FindByLogin(ctx, login)
}

// Update applies the supplied fields to the authenticated user. When
// the login changes, the old token's subject no longer matches, so a
// fresh token for the new login is issued and returned.
func (s *UserService) Update(ctx context.Context, login string, in domain.UpdateUserInput) (string, error) {
	user, err := s.userRepository.FindByLogin(ctx, login)
	if err != nil {
		return "", err
	}

	if in.Password != "" {
		hashed, err := auth.HashPassword(in.Password)
		if err != nil {
			return "", err
		}
		in.Password = hashed
	}

	if err := s.userRepository.Update(ctx, user.ID, in); err != nil {
		return "", err
	}

	if in.Login != "" && in.Login != user.Login {
		return s.tokens.Issue(in.Login, 0)
	}

	return "", nil
}

func (s *UserService) Delete(ctx context.Context, login string) error {
	user, err := s.userRepository.FindByLogin(ctx, login)
	if err != nil {
		return err
	}

	return s.userRepository.Delete(ctx, user.ID)
}

var _ ports.UserService = (*UserService)(nil)
