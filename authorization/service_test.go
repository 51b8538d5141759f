package authorization

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()

	// A named shared-cache memory database so gorm's connection pool sees
	// one database instead of one per connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	return &AuthService{users: &UserStore{db: db}}
}

func userCount(t *testing.T, s *AuthService) int64 {
	t.Helper()
	var count int64
	require.NoError(t, s.users.db.Model(&User{}).Count(&count).Error)
	return count
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"empty username", "", "secret1", ErrUsernameRequired},
		{"whitespace username", "   ", "secret1", ErrUsernameRequired},
		{"username too short", "ab", "secret1", ErrUsernameTooShort},
		{"username too short after trim", "  ab  ", "secret1", ErrUsernameTooShort},
		{"username too long", strings.Repeat("x", 51), "secret1", ErrUsernameTooLong},
		{"password too short", "alice", "12345", ErrPasswordTooShort},
		{"password too long", "alice", strings.Repeat("p", 101), ErrPasswordTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(t)

			_, err := svc.Register(context.Background(), tc.username, tc.password)
			require.ErrorIs(t, err, tc.wantErr)
			assert.EqualValues(t, 0, userCount(t, svc), "failed registration must not insert a row")
		})
	}
}

func TestRegisterTrimsUsernameAndHashesPassword(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register(context.Background(), "  alice  ", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), " alice ", "different2")
	require.ErrorIs(t, err, ErrUsernameTaken)
	assert.EqualValues(t, 1, userCount(t, svc))

	// Uniqueness is case-sensitive: a differently-cased name is a new account.
	_, err = svc.Register(context.Background(), "Alice", "different2")
	require.NoError(t, err)
	assert.EqualValues(t, 2, userCount(t, svc))
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)

	registered, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "alice", user.Username)

	_, wrongPassErr := svc.Authenticate(context.Background(), "alice", "wrong")
	require.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)

	_, unknownUserErr := svc.Authenticate(context.Background(), "nobody", "secret1")
	require.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)

	// Unknown user and wrong password must be indistinguishable.
	assert.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
}

func TestAuthenticateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "   ", "secret1")
	require.ErrorIs(t, err, ErrUsernameRequired)

	_, err = svc.Authenticate(context.Background(), "alice", "")
	require.ErrorIs(t, err, ErrPasswordRequired)
}
