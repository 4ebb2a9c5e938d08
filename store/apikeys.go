package store

import "github.com/google/uuid"

// ValidateAPIKey reports whether key matches an active API key.
func (s *Store) ValidateAPIKey(key string) (bool, error) {
	var ok bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM api_keys WHERE key = ? AND is_active = 1)", key).Scan(&ok)
	return ok, err
}

// EnsureAPIKey mints an API key under the given name when no active key
// exists yet. Returns the new key and true, or "" and false when a key
// was already present.
func (s *Store) EnsureAPIKey(name string) (string, bool, error) {
	var exists bool
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM api_keys WHERE is_active = 1)").Scan(&exists); err != nil {
		return "", false, err
	}
	if exists {
		return "", false, nil
	}

	key := uuid.NewString()
	if _, err := s.db.Exec("INSERT INTO api_keys (key, name) VALUES (?, ?)", key, name); err != nil {
		return "", false, err
	}
	return key, true, nil
}
