package settings

import (
	"errors"

	"rebar-check/core/logger"
	"rebar-check/feature/schedule/ifc"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MappingResponse is the mapping of the session with the presets it can be reset to.
type MappingResponse struct {
	Mapping ifc.Mapping `json:"mapping"`
	// Default is set when the session uses the default mapping, which lets the
	// resolver pick the preset of the detected vendor.
	Default bool                   `json:"default"`
	Presets map[string]ifc.Mapping `json:"presets"`
}

// Handler handles HTTP requests for session settings.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the settings routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/settings")
	group.Get("/ifc", h.HandleGetMapping)
	group.Put("/ifc", h.HandleSaveMapping)
	group.Delete("/ifc", h.HandleResetMapping)
}

// HandleGetMapping returns the session's IFC mapping.
// @Summary Get IFC Mapping
// @Description Returns the property paths used to read IFC files in this session.
// @Tags settings
// @Produce json
// @Success 200 {object} MappingResponse "Mapping"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings/ifc [get]
func (h *Handler) HandleGetMapping(c *fiber.Ctx) error {
	m, err := h.store.Mapping(c)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to load mapping", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.response(m))
}

// HandleSaveMapping saves the session's IFC mapping.
// @Summary Save IFC Mapping
// @Description Stores the five property paths ("pset / property") for this session.
// @Tags settings
// @Accept json
// @Produce json
// @Param mapping body ifc.Mapping true "Mapping"
// @Success 200 {object} MappingResponse "Saved mapping"
// @Failure 400 {object} map[string]string "Invalid mapping"
// @Router /settings/ifc [put]
func (h *Handler) HandleSaveMapping(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var m ifc.Mapping
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.store.Save(c, m); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to save mapping", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("IFC mapping saved", zap.Bool("default", m.IsDefault()))
	return c.JSON(h.response(m))
}

// HandleResetMapping restores the default IFC mapping.
// @Summary Reset IFC Mapping
// @Description Drops the session's mapping so the default preset applies again.
// @Tags settings
// @Produce json
// @Success 200 {object} MappingResponse "Default mapping"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /settings/ifc [delete]
func (h *Handler) HandleResetMapping(c *fiber.Ctx) error {
	m, err := h.store.Reset(c)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to reset mapping", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.response(m))
}

func (h *Handler) response(m ifc.Mapping) MappingResponse {
	return MappingResponse{
		Mapping: m,
		Default: m.IsDefault(),
		Presets: map[string]ifc.Mapping{
			ifc.VendorTekla.String(): ifc.VendorTekla.Preset(),
			ifc.VendorRevit.String(): ifc.VendorRevit.Preset(),
		},
	}
}
