package service

import (
	"testing"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/repository"
	"go-restaurant-orders/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	user, err := svc.Register("alice", "alice@example.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.RoleUser, user.Role)

	// Password stored hashed, not in plain text
	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, stored.CheckPassword("secret123"))
}

func TestRegister_AdminRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	user, err := svc.Register("boss", "boss@example.com", "secret123", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "alice")

	svc := NewAuthService(repository.NewUserRepo(db))
	_, err := svc.Register("alice", "other@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "alice")

	svc := NewAuthService(repository.NewUserRepo(db))
	_, err := svc.Register("alice2", "alice@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_InvalidEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register("alice", "not-an-email", "secret123", "")
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice")

	svc := NewAuthService(repository.NewUserRepo(db))
	resp, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "alice")

	svc := NewAuthService(repository.NewUserRepo(db))
	_, err := svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	db := setupTestDB(t)

	svc := NewAuthService(repository.NewUserRepo(db))
	_, err := svc.Login("ghost", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
