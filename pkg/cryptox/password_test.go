package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	h := cryptox.NewHasher("test-pepper")

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "m=19456,t=2,p=1", parts[3])
			require.NotEmpty(t, parts[4])
			require.NotEmpty(t, parts[5])

			require.NoError(t, h.VerifyPassword(tt.password, hash))
			require.ErrorIs(t, h.VerifyPassword(tt.password+"x", hash), cryptox.ErrMismatch)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h := cryptox.NewHasher("test-pepper")

	hash1, err := h.HashPassword("samepassword")
	require.NoError(t, err)
	hash2, err := h.HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
}

func TestVerifyPassword_PepperMatters(t *testing.T) {
	hash, err := cryptox.NewHasher("pepper-a").HashPassword("secret")
	require.NoError(t, err)

	require.ErrorIs(t, cryptox.NewHasher("pepper-b").VerifyPassword("secret", hash), cryptox.ErrMismatch)
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	h := cryptox.NewHasher("")

	for _, bad := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	} {
		require.ErrorIs(t, h.VerifyPassword("secret", bad), cryptox.ErrInvalidHash, bad)
	}
}

func TestVerifyPassword_LegacyBcrypt(t *testing.T) {
	h := cryptox.NewHasher("ignored-for-bcrypt")

	legacy, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	require.True(t, cryptox.IsBcrypt(string(legacy)))
	require.True(t, h.NeedsRehash(string(legacy)))
	require.NoError(t, h.VerifyPassword("secret", string(legacy)))
	require.ErrorIs(t, h.VerifyPassword("wrong", string(legacy)), cryptox.ErrMismatch)
}

func TestLoadOrCreatePepper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := cryptox.LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	second, err := cryptox.LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLoadOrCreatePepper_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))

	_, err := cryptox.LoadOrCreatePepper(path)
	require.Error(t, err)
}
