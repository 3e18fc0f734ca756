package loader_test

import (
	"errors"
	"testing"

	"rebar-check/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "compare", enabled: true}
		off := &stubFeature{name: "settings"}

		mgr := loader.NewManager()
		mgr.Register(on)
		mgr.Register(off)

		require.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		boom := errors.New("boom")
		failing := &stubFeature{name: "compare", enabled: true, err: boom}
		next := &stubFeature{name: "settings", enabled: true}

		mgr := loader.NewManager()
		mgr.Register(failing)
		mgr.Register(next)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "compare")
		assert.False(t, next.loaded)
	})
}
