package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

var login = models.Warehouse{Driver: "mysql", Host: "db.internal", Username: "loader"}

func TestAccountKey(t *testing.T) {
	assert.Equal(t, "mysql:loader@db.internal", AccountKey(login))

	snow := models.Warehouse{Driver: "snowflake", Account: "xy12345", Host: "ignored", Username: "LOADER"}
	assert.Equal(t, "snowflake:LOADER@xy12345", AccountKey(snow))
}

func TestCredentialStore(t *testing.T) {
	keyring.MockInit()
	store := NewCredentialStore()

	t.Run("missing password", func(t *testing.T) {
		_, err := store.Password(login)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeCredentialsMissing, errors.GetErrorCode(err))
	})

	t.Run("store and read", func(t *testing.T) {
		require.NoError(t, store.StorePassword(login, "s3cret"))
		secret, err := store.Password(login)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", secret)
	})

	t.Run("resolve keeps explicit password", func(t *testing.T) {
		w := login
		w.Password = "from-config"
		resolved, err := store.ResolvePassword(w)
		require.NoError(t, err)
		assert.Equal(t, "from-config", resolved.Password)
	})

	t.Run("resolve falls back to keyring", func(t *testing.T) {
		resolved, err := store.ResolvePassword(login)
		require.NoError(t, err)
		assert.Equal(t, "s3cret", resolved.Password)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeletePassword(login))
		require.NoError(t, store.DeletePassword(login))
		_, err := store.Password(login)
		assert.Error(t, err)
	})
}
