package http

import (
	"log/slog"
	"strings"

	"resume-builder/internal/document"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	processor *usecase.Processor
	logger    *slog.Logger
}

func NewHandler(p *usecase.Processor, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{processor: p, logger: logger}
}

// Generate builds a document from a submitted form. PDF output is sent as a
// download; ?format=html returns the assembled page instead.
func (h *Handler) Generate(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.generate(c, form)
}

// Preview returns the on-screen preview fragment for a submitted form.
func (h *Handler) Preview(c *fiber.Ctx) error {
	form, err := formValues(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.preview(c, form)
}

// GenerateJSON is Generate for a JSON object keyed like the form.
func (h *Handler) GenerateJSON(c *fiber.Ctx) error {
	form, err := h.jsonValues(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.generate(c, form)
}

// PreviewJSON is Preview for a JSON object keyed like the form.
func (h *Handler) PreviewJSON(c *fiber.Ctx) error {
	form, err := h.jsonValues(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.preview(c, form)
}

func (h *Handler) Layouts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"default": document.DefaultLayout.String(),
		"layouts": h.processor.Layouts(),
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) generate(c *fiber.Ctx, form usecase.Form) error {
	format := usecase.ParseFormat(c.Query("format"))
	doc, err := h.processor.Generate(c.UserContext(), form, format)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error generating PDF: " + err.Error()})
	}

	c.Set("X-Document-Id", doc.ID.String())
	if doc.ContentType == domain.ContentTypePDF {
		c.Attachment(doc.FileName)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Send(doc.Content)
}

func (h *Handler) preview(c *fiber.Ctx, form usecase.Form) error {
	html, err := h.processor.Preview(form)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error generating preview: " + err.Error()})
	}
	return c.JSON(fiber.Map{"html": string(html)})
}

// jsonValues decodes a JSON object body. Schema violations are only logged:
// values of the wrong shape degrade to empty fields.
func (h *Handler) jsonValues(c *fiber.Ctx) (usecase.Values, error) {
	var m map[string]interface{}
	if err := c.BodyParser(&m); err != nil {
		return nil, err
	}
	if err := model.ValidateMap(m); err != nil {
		h.logger.Warn("input does not match schema", "error", err, "request_id", c.GetRespHeader(fiber.HeaderXRequestID))
	}
	return usecase.ValuesFromMap(m), nil
}

// formValues collects the multi-value form of a multipart or urlencoded body.
func formValues(c *fiber.Ctx) (usecase.Values, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return usecase.Values(mf.Value), nil
	}

	values := usecase.Values{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		key := string(k)
		values[key] = append(values[key], string(v))
	})
	return values, nil
}
