package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rebar-check/feature/schedule/ifc"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *Store) {
	t.Helper()
	app := fiber.New()
	store := NewStore(session.New(), ifc.Mapping{})
	require.NoError(t, NewFeature(store, zap.NewNop()).Load(app))

	// Exposes the store's view of the session to the tests.
	app.Get("/probe", func(c *fiber.Ctx) error {
		m, err := store.Mapping(c)
		if err != nil {
			return err
		}
		return c.JSON(m)
	})
	return app, store
}

// do sends a request with the given session cookies and returns the response
// and the cookies to use next.
func do(t *testing.T, app *fiber.App, method, target, body string, cookies []*http.Cookie) (*http.Response, []*http.Cookie) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	if next := resp.Cookies(); len(next) > 0 {
		cookies = next
	}
	return resp, cookies
}

func decodeMapping(t *testing.T, resp *http.Response) MappingResponse {
	t.Helper()
	var out MappingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSettings_DefaultMapping(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := do(t, app, "GET", "/settings/ifc", "", nil)
	assert.Equal(t, 200, resp.StatusCode)

	got := decodeMapping(t, resp)
	assert.Equal(t, ifc.DefaultMapping(), got.Mapping)
	assert.True(t, got.Default)
	assert.Equal(t, ifc.VendorRevit.Preset(), got.Presets["revit"])
}

func TestSettings_SaveAndReset(t *testing.T) {
	app, _ := setupTestApp(t)

	custom := ifc.VendorRevit.Preset()
	custom.Mark = "Pset_Custom / Mark"
	payload, err := json.Marshal(custom)
	require.NoError(t, err)

	resp, cookies := do(t, app, "PUT", "/settings/ifc", string(payload), nil)
	require.Equal(t, 200, resp.StatusCode)
	require.NotEmpty(t, cookies)
	assert.False(t, decodeMapping(t, resp).Default)

	t.Run("PersistsInSession", func(t *testing.T) {
		resp, _ := do(t, app, "GET", "/settings/ifc", "", cookies)
		assert.Equal(t, custom, decodeMapping(t, resp).Mapping)

		resp, _ = do(t, app, "GET", "/probe", "", cookies)
		var m ifc.Mapping
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
		assert.Equal(t, custom, m)
	})

	t.Run("OtherSessionsUnaffected", func(t *testing.T) {
		resp, _ := do(t, app, "GET", "/settings/ifc", "", nil)
		assert.Equal(t, ifc.DefaultMapping(), decodeMapping(t, resp).Mapping)
	})

	t.Run("Reset", func(t *testing.T) {
		resp, next := do(t, app, "DELETE", "/settings/ifc", "", cookies)
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, decodeMapping(t, resp).Default)

		resp, _ = do(t, app, "GET", "/settings/ifc", "", next)
		assert.Equal(t, ifc.DefaultMapping(), decodeMapping(t, resp).Mapping)
	})
}

func TestSettings_SaveInvalid(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"MalformedJSON", `{"mark":`},
		{"MissingSeparator", `{"quantity":"A / B","diameter":"A / C","shape":"A / D","mark":"no separator","material":"A / E"}`},
		{"Empty", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, app, "PUT", "/settings/ifc", tt.body, nil)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestNewStore_ConfiguredDefaults(t *testing.T) {
	defaults := ifc.VendorRevit.Preset()
	store := NewStore(session.New(), defaults)
	assert.Equal(t, defaults, store.Defaults())

	assert.Equal(t, ifc.DefaultMapping(), NewStore(session.New(), ifc.Mapping{}).Defaults())
}
