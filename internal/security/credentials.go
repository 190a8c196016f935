// Package security stores warehouse passwords in the operating system
// keyring so they never have to be written to the config file.
package security

import (
	stderrors "errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"perfgen/internal/config"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

const keyringService = "perfgen"

// CredentialStore reads and writes passwords under one keyring service
type CredentialStore struct {
	service string
}

// NewCredentialStore returns a store using the perfgen keyring service
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{service: keyringService}
}

// AccountKey identifies the keyring entry for a warehouse login
func AccountKey(w models.Warehouse) string {
	target := w.Host
	if w.Driver == config.DriverSnowflake {
		target = w.Account
	}
	return fmt.Sprintf("%s:%s@%s", w.Driver, w.Username, target)
}

// StorePassword saves the password for w
func (s *CredentialStore) StorePassword(w models.Warehouse, password string) error {
	if err := keyring.Set(s.service, AccountKey(w), password); err != nil {
		return errors.Wrap(err, errors.ErrCodeCredentialsMissing, "failed to store password in keyring").
			WithContext("account", AccountKey(w))
	}
	return nil
}

// Password returns the stored password for w
func (s *CredentialStore) Password(w models.Warehouse) (string, error) {
	secret, err := keyring.Get(s.service, AccountKey(w))
	if err != nil {
		if stderrors.Is(err, keyring.ErrNotFound) {
			return "", errors.New(errors.ErrCodeCredentialsMissing, "no password stored for warehouse login").
				WithContext("account", AccountKey(w)).
				WithSuggestions("Set warehouse.password, export PERFGEN_WAREHOUSE_PASSWORD, or run 'perfgen init'")
		}
		return "", errors.Wrap(err, errors.ErrCodeCredentialsMissing, "failed to read password from keyring")
	}
	return secret, nil
}

// DeletePassword removes the stored password for w. Deleting a missing
// entry is not an error.
func (s *CredentialStore) DeletePassword(w models.Warehouse) error {
	err := keyring.Delete(s.service, AccountKey(w))
	if err != nil && !stderrors.Is(err, keyring.ErrNotFound) {
		return errors.Wrap(err, errors.ErrCodeCredentialsMissing, "failed to delete password from keyring")
	}
	return nil
}

// ResolvePassword fills in w.Password from the keyring when the
// configuration and environment left it empty.
func (s *CredentialStore) ResolvePassword(w models.Warehouse) (models.Warehouse, error) {
	if w.Password != "" {
		return w, nil
	}
	secret, err := s.Password(w)
	if err != nil {
		return w, err
	}
	w.Password = secret
	return w, nil
}
