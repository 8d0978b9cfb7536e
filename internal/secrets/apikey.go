package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "dealhunt"

// TequilaAPIKey returns the Kiwi Tequila credential, keyring first, then the
// TEQUILA_API_KEY environment variable. An empty result is not an error:
// without a credential the priced source simply contributes nothing.
func TequilaAPIKey(keyringAccount string) string {
	if strings.TrimSpace(keyringAccount) != "" {
		if k, err := keyring.Get(KeyringService, keyringAccount); err == nil && strings.TrimSpace(k) != "" {
			return strings.TrimSpace(k)
		}
	}
	return strings.TrimSpace(os.Getenv("TEQUILA_API_KEY"))
}

func SetTequilaAPIKey(keyringAccount string, key string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, key)
}

func DeleteTequilaAPIKey(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}
