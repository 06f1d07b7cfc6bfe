package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"productivity/internal/auth"
	"productivity/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	args := m.Called(ctx, login)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}

func (m *userRepositoryMock) Insert(ctx context.Context, user domain.User) (uint64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, id uint64, in domain.UpdateUserInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newUserService(repo *userRepositoryMock) (*UserService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", 15*time.Minute)
	return NewUserService(repo, tokens, 30*time.Minute, []byte("default-avatar")), tokens
}

func TestUserService_Register_DefaultsRoleAndAvatar(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("ExistsByLogin", mock.Anything, "alice").Return(false, nil).Once()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == "Alice" &&
			user.Login == "alice" &&
			user.RoleID == domain.DefaultRoleID &&
			string(user.Image) == "default-avatar" &&
			user.Password != "s3cret" &&
			auth.CheckPassword("s3cret", user.Password)
	})).Return(uint64(7), nil).Once()

	svc, _ := newUserService(repo)

	err := svc.Register(context.Background(), domain.RegisterUserInput{
		Name:     "Alice",
		Login:    "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserService_Register_LoginTaken(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("ExistsByLogin", mock.Anything, "alice").Return(true, nil).Once()

	svc, _ := newUserService(repo)

	err := svc.Register(context.Background(), domain.RegisterUserInput{
		Name:     "Alice",
		Login:    "alice",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, domain.ErrLoginTaken)
	repo.AssertNotCalled(t, "Insert")
}

func TestUserService_Login_IssuesTokenForLogin(t *testing.T) {
	digest, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(
		domain.User{ID: 7, Login: "alice", Password: digest}, nil,
	).Once()

	svc, tokens := newUserService(repo)

	token, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	subject, err := tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
	repo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	digest, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(
		domain.User{ID: 7, Login: "alice", Password: digest}, nil,
	).Once()

	svc, _ := newUserService(repo)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownLogin(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()

	svc, _ := newUserService(repo)

	_, err := svc.Login(context.Background(), "ghost", "s3cret")
	// Unknown logins are indistinguishable from bad passwords.
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Update_LoginChangeReissuesToken(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(
		domain.User{ID: 7, Login: "alice"}, nil,
	).Once()
	repo.On("Update", mock.Anything, uint64(7), domain.UpdateUserInput{Login: "alice2"}).Return(nil).Once()

	svc, tokens := newUserService(repo)

	token, err := svc.Update(context.Background(), "alice", domain.UpdateUserInput{Login: "alice2"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "alice2", subject)
	repo.AssertExpectations(t)
}

func TestUserService_Update_SameLoginKeepsToken(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(
		domain.User{ID: 7, Login: "alice"}, nil,
	).Once()
	repo.On("Update", mock.Anything, uint64(7), domain.UpdateUserInput{Name: "Alicia"}).Return(nil).Once()

	svc, _ := newUserService(repo)

	token, err := svc.Update(context.Background(), "alice", domain.UpdateUserInput{Name: "Alicia"})
	require.NoError(t, err)
	require.Empty(t, token)
	repo.AssertExpectations(t)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(
		domain.User{ID: 7, Login: "alice"}, nil,
	).Once()
	repo.On("Update", mock.Anything, uint64(7), mock.MatchedBy(func(in domain.UpdateUserInput) bool {
		return in.Password != "new-secret" && auth.CheckPassword("new-secret", in.Password)
	})).Return(nil).Once()

	svc, _ := newUserService(repo)

	_, err := svc.Update(context.Background(), "alice", domain.UpdateUserInput{Password: "new-secret"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserService_Update_UserMissing(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()

	svc, _ := newUserService(repo)

	_, err := svc.Update(context.Background(), "ghost", domain.UpdateUserInput{Name: "Ghost"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	repo.AssertNotCalled(t, "Update")
}

func TestUserService_Delete_ResolvesLoginToID(t *testing.T) {
	repo := new(userRepositoryMock)
	repo.On("FindByLogin", mock.Anything, "alice").Return(
		domain.User{ID: 7, Login: "alice"}, nil,
	).Once()
	repo.On("Delete", mock.Anything, uint64(7)).Return(nil).Once()

	svc, _ := newUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), "alice"))
	repo.AssertExpectations(t)
}
