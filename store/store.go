package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const maxRecentEmails = 5

// Preferences are small user conveniences persisted between runs: recently
// used email addresses and the last chosen payment method. Bookings
// themselves are never persisted.
type Preferences struct {
	Emails          []string `json:"emails"`
	PaymentMethodID string   `json:"payment_method_id"`
}

// LoadPreferences reads the stored preferences; a missing file yields the
// zero value.
func LoadPreferences() (Preferences, error) {
	path, err := configPath("preferences.json")
	if err != nil {
		return Preferences{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Preferences{}, nil
		}
		return Preferences{}, err
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, errors.New("invalid preferences format")
	}
	return prefs, nil
}

// RememberEmail moves the email to the front of the recent list, dropping
// duplicates and keeping at most maxRecentEmails entries.
func RememberEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}

	prefs, _ := LoadPreferences()
	next := []string{email}
	for _, existing := range prefs.Emails {
		if strings.EqualFold(existing, email) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentEmails {
			break
		}
	}
	prefs.Emails = next
	return savePreferences(prefs)
}

// RememberPaymentMethod records the last chosen payment method id.
func RememberPaymentMethod(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("payment method id is required")
	}

	prefs, _ := LoadPreferences()
	prefs.PaymentMethodID = id
	return savePreferences(prefs)
}

// RecentEmail returns the most recently used email, if any.
func RecentEmail() (string, bool) {
	prefs, err := LoadPreferences()
	if err != nil || len(prefs.Emails) == 0 {
		return "", false
	}
	return prefs.Emails[0], true
}

func savePreferences(prefs Preferences) error {
	path, err := configPath("preferences.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cinemabook-cli", name), nil
}
