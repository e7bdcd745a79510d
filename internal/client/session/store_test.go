package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveLoadDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	s := NewFileStore(path)
	assert.Equal(t, path, s.Path())

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.Save("tok-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	tok, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, s.Save("tok-2"))
	tok, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)

	require.NoError(t, s.Delete())
	_, err = s.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.Delete())
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_SaveIntoFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := NewFileStore(filepath.Join(blocker, "token")).Save("x")
	assert.ErrorContains(t, err, "save session")
}

func sign(t *testing.T, exp time.Time) string {
	t.Helper()
	c := claims{
		Email:            "ada@x.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a-1", ExpiresAt: jwt.NewNumericDate(exp)},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("other-key"))
	require.NoError(t, err)
	return tok
}

func TestParsePayload(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := ParsePayload(sign(t, exp))
	require.NoError(t, err)
	assert.Equal(t, "a-1", p.Subject)
	assert.Equal(t, "ada@x.com", p.Email)
	assert.True(t, exp.Equal(p.ExpiresAt))

	_, err = ParsePayload("not-a-token")
	assert.Error(t, err)
}

func TestIsLoggedIn(t *testing.T) {
	now := time.Date(2029, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"garbage", "abc.def", false},
		{"valid", sign(t, now.Add(time.Hour)), true},
		{"expired", sign(t, now.Add(-time.Second)), false},
		{"expires now", sign(t, now), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLoggedIn(tt.token, now))
		})
	}
}
