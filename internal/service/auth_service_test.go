package service

import (
	"testing"

	"go-invsys/internal/model"
	"go-invsys/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, env *testEnv, username, password, role string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Role: role}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func TestLoginRotatesTokenVersion(t *testing.T) {
	env := newTestEnv(t)
	userRepo := repository.NewUserRepo(env.db)
	auth := NewAuthService(userRepo)
	seedUser(t, env, "admin", "password", model.RoleAdmin)

	first, err := auth.Login("admin", "password")
	require.NoError(t, err)
	assert.NotEmpty(t, first.Token)
	assert.Equal(t, "admin", first.User.Username)

	// A second login invalidates the first session's version
	stored, err := userRepo.FindByUsername("admin")
	require.NoError(t, err)
	firstVersion := stored.TokenVersion

	_, err = auth.Login("admin", "password")
	require.NoError(t, err)
	stored, err = userRepo.FindByUsername("admin")
	require.NoError(t, err)
	assert.NotEqual(t, firstVersion, stored.TokenVersion)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	auth := NewAuthService(repository.NewUserRepo(env.db))
	seedUser(t, env, "admin", "password", model.RoleAdmin)

	_, err := auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	userRepo := repository.NewUserRepo(env.db)
	auth := NewAuthService(userRepo)
	user := seedUser(t, env, "admin", "password", model.RoleAdmin)

	_, err := auth.Login("admin", "password")
	require.NoError(t, err)
	stored, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	loginVersion := stored.TokenVersion

	require.NoError(t, auth.Logout(user.ID))
	stored, err = userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, loginVersion, stored.TokenVersion)
}

func TestResetPassword(t *testing.T) {
	env := newTestEnv(t)
	userRepo := repository.NewUserRepo(env.db)
	auth := NewAuthService(userRepo)
	seedUser(t, env, "admin", "password", model.RoleAdmin)

	require.NoError(t, auth.ResetPassword("admin", "password", "newsecret"))

	_, err := auth.Login("admin", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login("admin", "newsecret")
	assert.NoError(t, err)

	assert.ErrorIs(t, auth.ResetPassword("admin", "wrong", "x"), ErrWrongPassword)
	assert.ErrorIs(t, auth.ResetPassword("ghost", "password", "x"), ErrUserNotFound)
}

func TestCreateUserRejectsDuplicateAndBadRole(t *testing.T) {
	env := newTestEnv(t)
	users := NewUserService(repository.NewUserRepo(env.db))

	created, err := users.CreateUser(&CreateUserRequest{Username: "clerk", Password: "secret1", Role: model.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, created.Role)

	_, err = users.CreateUser(&CreateUserRequest{Username: "clerk", Password: "secret1", Role: model.RoleUser})
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = users.CreateUser(&CreateUserRequest{Username: "boss", Password: "secret1", Role: "superuser"})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
