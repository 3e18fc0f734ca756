package settings

import (
	"encoding/json"
	"fmt"

	"rebar-check/feature/schedule/ifc"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// mappingKey is the session key holding the JSON encoded mapping.
const mappingKey = "ifc_mapping"

// Store keeps the IFC mapping of each browser session.
type Store struct {
	sessions *session.Store
	defaults ifc.Mapping
}

// NewStore wraps a session store. Sessions without a saved mapping use
// defaults; a zero defaults value means the Tekla preset.
func NewStore(sessions *session.Store, defaults ifc.Mapping) *Store {
	if defaults.IsZero() {
		defaults = ifc.DefaultMapping()
	}
	return &Store{sessions: sessions, defaults: defaults}
}

// Defaults returns the mapping a reset session gets.
func (s *Store) Defaults() ifc.Mapping {
	return s.defaults
}

// Mapping returns the session's mapping.
func (s *Store) Mapping(c *fiber.Ctx) (ifc.Mapping, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return ifc.Mapping{}, fmt.Errorf("failed to load session: %w", err)
	}

	raw, ok := sess.Get(mappingKey).(string)
	if !ok || raw == "" {
		return s.defaults, nil
	}

	var m ifc.Mapping
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return ifc.Mapping{}, fmt.Errorf("failed to decode session mapping: %w", err)
	}
	return m, nil
}

// Save validates m and stores it in the session.
func (s *Store) Save(c *fiber.Ctx, m ifc.Mapping) error {
	if err := m.Validate(); err != nil {
		return &ValidationError{Err: err}
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	sess.Set(mappingKey, string(raw))
	return sess.Save()
}

// Reset drops the saved mapping and returns the defaults.
func (s *Store) Reset(c *fiber.Ctx) (ifc.Mapping, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return ifc.Mapping{}, fmt.Errorf("failed to load session: %w", err)
	}
	sess.Delete(mappingKey)
	if err := sess.Save(); err != nil {
		return ifc.Mapping{}, err
	}
	return s.defaults, nil
}

// ValidationError reports a mapping with a malformed path.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid mapping: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
