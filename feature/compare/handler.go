package compare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"rebar-check/core/logger"
	"rebar-check/core/reconcile"
	"rebar-check/core/storage"
	"rebar-check/feature/schedule"
	"rebar-check/feature/schedule/ifc"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Form fields of a comparison upload.
const (
	FieldLeft  = "left"
	FieldRight = "right"
)

// ExportFilename is the attachment name of a CSV download.
const ExportFilename = "rebar-check.csv"

// MappingProvider returns the IFC mapping of the requesting session.
type MappingProvider interface {
	Mapping(c *fiber.Ctx) (ifc.Mapping, error)
}

// ObjectsRequest names two stored schedules to compare.
type ObjectsRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service  *Service
	mappings MappingProvider
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, mappings MappingProvider) *Handler {
	return &Handler{service: service, mappings: mappings}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/compare", h.HandleCompare)
	app.Post("/compare/objects", h.HandleCompareObjects)
	app.Get("/schedules", h.HandleListSchedules)
}

// HandleCompare compares uploaded schedules.
// @Summary Compare Schedules
// @Description Parses up to two uploaded schedules (CSV, XML or IFC) and reconciles their bar quantities per mark. IFC files are read with the session's property mapping.
// @Tags compare
// @Accept multipart/form-data
// @Produce json,text/csv
// @Param left formData file false "Left schedule"
// @Param right formData file false "Right schedule"
// @Param format query string false "Set to csv to download the result"
// @Success 200 {object} Report "Comparison Report"
// @Failure 400 {object} map[string]string "No files"
// @Failure 409 {object} map[string]interface{} "IFC mark conflict"
// @Failure 415 {object} map[string]string "Unsupported file type"
// @Failure 422 {object} map[string]interface{} "Parse error"
// @Router /compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var uploads []Upload
	for _, field := range []string{FieldLeft, FieldRight} {
		fh, err := c.FormFile(field)
		if err != nil {
			continue
		}
		u, err := readUpload(fh)
		if err != nil {
			l.Error("Failed to read upload", zap.String("field", field), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		uploads = append(uploads, u)
	}

	mapping, err := h.mappings.Mapping(c)
	if err != nil {
		l.Error("Failed to load session mapping", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.Compare(mapping, uploads...)
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.respond(c, report)
}

// HandleCompareObjects compares schedules kept in object storage.
// @Summary Compare Stored Schedules
// @Description Reconciles two schedules from the storage bucket by object key. Either key may be empty.
// @Tags compare
// @Accept json
// @Produce json,text/csv
// @Param request body ObjectsRequest true "Object keys"
// @Param format query string false "Set to csv to download the result"
// @Success 200 {object} Report "Comparison Report"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 422 {object} map[string]interface{} "Parse error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /compare/objects [post]
func (h *Handler) HandleCompareObjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ObjectsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	var keys []string
	for _, key := range []string{req.Left, req.Right} {
		if key != "" {
			keys = append(keys, key)
		}
	}

	mapping, err := h.mappings.Mapping(c)
	if err != nil {
		l.Error("Failed to load session mapping", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.CompareObjects(c.Context(), mapping, keys...)
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.respond(c, report)
}

// HandleListSchedules lists stored schedules.
// @Summary List Stored Schedules
// @Description Lists the CSV, XML and IFC objects under the configured storage prefix.
// @Tags compare
// @Produce json
// @Success 200 {array} Schedule "Schedules"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /schedules [get]
func (h *Handler) HandleListSchedules(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	schedules, err := h.service.ListSchedules(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(schedules)
}

func (h *Handler) respond(c *fiber.Ctx, report *Report) error {
	if c.Query("format") != "csv" {
		return c.JSON(report)
	}

	var buf bytes.Buffer
	if err := reconcile.WriteCSV(&buf, report.Result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Attachment(ExportFilename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	var (
		perr *schedule.ParseError
		cerr *ifc.ConflictError
	)

	switch {
	case errors.As(err, &perr):
		l.Warn("Schedule could not be parsed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  err.Error(),
			"source": perr.Source,
			"parser": perr.Parser,
			"line":   perr.Line,
		})
	case errors.As(err, &cerr):
		l.Warn("Conflicting IFC marks", zap.Error(err))
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":    err.Error(),
			"source":   cerr.Source,
			"conflict": cerr.Conflict,
		})
	case errors.Is(err, schedule.ErrUnsupportedFormat):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNoFiles), errors.Is(err, reconcile.ErrNoSources), errors.Is(err, reconcile.ErrTooManySources):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrObjectNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, storage.ErrObjectTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func readUpload(fh *multipart.FileHeader) (Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Upload{}, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	return Upload{Name: fh.Filename, Data: data}, nil
}
