package server

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/imagine-ke/imagine-api/internal/models"
	"github.com/imagine-ke/imagine-api/internal/repo"
	"github.com/imagine-ke/imagine-api/internal/usecase"
)

type Controller interface {
	Root(c echo.Context) error
	Seed(c echo.Context) error
	ListQuestions(c echo.Context) error
	CreateQuestion(c echo.Context) error
	CreateAnswer(c echo.Context) error
	ListAnswers(c echo.Context) error
	ListModes(c echo.Context) error
	ListPricing(c echo.Context) error
	ListBlog(c echo.Context) error
	CreateBlog(c echo.Context) error
	Contact(c echo.Context) error
	SendChat(c echo.Context) error
	ListChat(c echo.Context) error
	Diagnostics(c echo.Context) error
}

type controller struct {
	content usecase.ContentUsecase
	seed    usecase.SeedUsecase
	store   repo.Store
}

func NewController(content usecase.ContentUsecase, seed usecase.SeedUsecase, store repo.Store) Controller {
	return &controller{
		content: content,
		seed:    seed,
		store:   store,
	}
}

func (h *controller) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "IMAGINE API running",
	})
}

func (h *controller) Seed(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.seed.SeedContent(ctx); err != nil {
		if errors.Is(err, models.ErrStorageUnavailable) {
			return echo.NewHTTPError(http.StatusInternalServerError, "database not configured")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "seeded",
	})
}

func (h *controller) ListQuestions(c echo.Context) error {
	ctx := c.Request().Context()
	questions, err := h.content.ListQuestions(ctx, c.QueryParam("mode"), queryLimit(c, 50))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, questions)
}

type CreateQuestionRequest struct {
	Mode   string   `json:"mode" validate:"required"`
	Text   string   `json:"text" validate:"required"`
	Tags   []string `json:"tags"`
	Locale string   `json:"locale"`
}

func (h *controller) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	id, err := h.content.CreateQuestion(ctx, models.Question{
		Mode:   req.Mode,
		Text:   req.Text,
		Tags:   req.Tags,
		Locale: req.Locale,
	})
	if errors.Is(err, models.ErrInvalidMode) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid mode")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (h *controller) CreateAnswer(c echo.Context) error {
	var answer models.Answer
	if err := c.Bind(&answer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(answer); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	id, err := h.content.CreateAnswer(ctx, answer)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (h *controller) ListAnswers(c echo.Context) error {
	ctx := c.Request().Context()
	answers, err := h.content.ListAnswers(ctx, c.QueryParam("mode"), queryLimit(c, 50))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, answers)
}

func (h *controller) ListModes(c echo.Context) error {
	ctx := c.Request().Context()
	modes, err := h.content.ListModes(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, modes)
}

func (h *controller) ListPricing(c echo.Context) error {
	ctx := c.Request().Context()
	plans, err := h.content.ListPricingPlans(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *controller) ListBlog(c echo.Context) error {
	ctx := c.Request().Context()
	posts, err := h.content.ListBlogPosts(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *controller) CreateBlog(c echo.Context) error {
	var post models.BlogPost
	if err := c.Bind(&post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(post); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	id, err := h.content.CreateBlogPost(ctx, post)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (h *controller) Contact(c echo.Context) error {
	var message models.ContactMessage
	if err := c.Bind(&message); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(message); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	id, err := h.content.CreateContactMessage(ctx, message)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"id":     id,
		"status": "received",
	})
}

func (h *controller) SendChat(c echo.Context) error {
	var message models.ChatMessage
	if err := c.Bind(&message); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(message); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	id, err := h.content.CreateChatMessage(ctx, message)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

func (h *controller) ListChat(c echo.Context) error {
	ctx := c.Request().Context()
	messages, err := h.content.ListChatMessages(ctx, queryLimit(c, 30))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, messages)
}

// DiagnosticsReport is the GET /test payload. Env presence is reported as
// booleans only; the values never leave the process.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics never fails: every store error is rendered as a status string.
func (h *controller) Diagnostics(c echo.Context) error {
	report := DiagnosticsReport{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.store.Available() {
		report.ConnectionStatus = "connected"
		ctx := c.Request().Context()
		names, err := h.store.CollectionNames(ctx)
		if err != nil {
			report.Database = "connected but error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			report.Collections = names
			report.Database = "connected and working"
		}
	}

	report.DatabaseURLSet = os.Getenv("DATABASE_URL") != ""
	report.DatabaseNameSet = os.Getenv("DATABASE_NAME") != ""

	return c.JSON(http.StatusOK, report)
}

func queryLimit(c echo.Context, fallback int64) int64 {
	param := c.QueryParam("limit")
	if param == "" {
		return fallback
	}
	limit, err := strconv.ParseInt(param, 10, 64)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
