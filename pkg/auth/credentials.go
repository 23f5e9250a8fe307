// Package auth resolves callers from static API keys.
package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
)

// CredentialStore is the parsed form of the API_KEYS and ADMIN_USERS settings.
// It is built once at startup and only read afterwards.
type CredentialStore struct {
	byKey  map[string]string
	admins map[string]struct{}

	// keysErr is set when API_KEYS was malformed. Every authentication
	// attempt then fails with ErrConfiguration.
	keysErr error
}

// LoadCredentials parses apiKeysJSON (identifier -> key object) and
// adminUsersJSON (identifier array). Empty strings mean "no entries".
// A malformed admin list degrades to no admins.
func LoadCredentials(apiKeysJSON, adminUsersJSON string, logger *slog.Logger) *CredentialStore {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "auth")

	s := &CredentialStore{
		byKey:  map[string]string{},
		admins: map[string]struct{}{},
	}

	if apiKeysJSON == "" {
		apiKeysJSON = "{}"
	}
	// Non-string values can never match a header, so they are skipped
	// rather than failing the whole map.
	var keys map[string]any
	if err := json.Unmarshal([]byte(apiKeysJSON), &keys); err != nil {
		logger.Error("Failed to parse API_KEYS", "error", err)
		s.keysErr = fmt.Errorf("parse API_KEYS: %w", err)
	} else {
		s.indexKeys(keys, logger)
	}

	if adminUsersJSON == "" {
		adminUsersJSON = "[]"
	}
	var admins []string
	if err := json.Unmarshal([]byte(adminUsersJSON), &admins); err != nil {
		logger.Warn("Failed to parse ADMIN_USERS, no admins configured", "error", err)
		// Unmarshal may have filled part of the slice before failing
		admins = nil
	}
	for _, id := range admins {
		s.admins[id] = struct{}{}
	}

	logger.Info("Credentials loaded", "users", len(s.byKey), "admins", len(s.admins))
	return s
}

// indexKeys builds the key -> identifier lookup. When two identifiers share a
// key the lexicographically smallest identifier wins.
func (s *CredentialStore) indexKeys(keys map[string]any, logger *slog.Logger) {
	ids := make([]string, 0, len(keys))
	for id := range keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		key, ok := keys[id].(string)
		if !ok {
			logger.Warn("Ignoring non-string API key", "user", id)
			continue
		}
		if key == "" {
			continue
		}
		if owner, dup := s.byKey[key]; dup {
			logger.Warn("API key shared by several users", "kept", owner, "ignored", id)
			continue
		}
		s.byKey[key] = id
	}
}

// Err reports the API_KEYS parse failure, if any.
func (s *CredentialStore) Err() error {
	return s.keysErr
}

func (s *CredentialStore) lookup(key string) (string, bool) {
	id, ok := s.byKey[key]
	return id, ok
}

func (s *CredentialStore) isAdmin(id string) bool {
	_, ok := s.admins[id]
	return ok
}
