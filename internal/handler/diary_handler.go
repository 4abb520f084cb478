package handler

import (
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"wiselydiary/backend/internal/model"
	"wiselydiary/backend/internal/service"
)

type DiaryHandler struct {
	service service.DiaryService
}

type createDiaryRequest struct {
	MemberID    string `json:"memberId"`
	Contents    string `json:"contents"`
	EmotionCode int    `json:"emotionCode"`
}

func (r createDiaryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MemberID, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Contents, validation.Required),
	)
}

type generateDiaryRequest struct {
	Prompt string `json:"prompt"`
}

func (r generateDiaryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Prompt, validation.Required),
	)
}

type diaryResponse struct {
	ID          string `json:"id"`
	MemberID    string `json:"memberId"`
	Contents    string `json:"contents"`
	EmotionCode int    `json:"emotionCode"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type summaryDetailResponse struct {
	DiaryID   string   `json:"diaryId"`
	Contents  string   `json:"contents"`
	Sentences []string `json:"sentences"`
	UpdatedAt string   `json:"updatedAt"`
}

type letterResponse struct {
	Letter string `json:"letter"`
}

type generateDiaryResponse struct {
	Content string `json:"content"`
}

func NewDiaryHandler(service service.DiaryService) *DiaryHandler {
	return &DiaryHandler{service: service}
}

func (h *DiaryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/diaries", h.Create)
	g.GET("/diaries", h.List)
	g.GET("/diaries/detail", h.Detail)
	g.POST("/diaries/generate", h.Generate)
	g.POST("/diaries/:id/summary", h.Summarize)
	g.GET("/diaries/:id/summary", h.GetSummary)
	g.POST("/diaries/:id/letter", h.Letter)
}

// Create saves a new diary entry.
// @Summary Create a diary entry
// @Description Save a diary entry for a member; it is timestamped now
// @Tags diaries
// @Accept json
// @Produce json
// @Param diary body createDiaryRequest true "Diary entry"
// @Success 201 {object} diaryResponse
// @Failure 400 {object} errorResponse
// @Router /diaries [post]
func (h *DiaryHandler) Create(c echo.Context) error {
	var req createDiaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	diary, err := h.service.SaveDiaryEntry(c.Request().Context(), req.Contents, req.MemberID, req.EmotionCode)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toDiaryResponse(diary))
}

// List returns a member's diaries between two dates.
// @Summary List diaries
// @Description List a member's diaries created between from and to (inclusive, YYYY-MM-DD)
// @Tags diaries
// @Produce json
// @Param memberId query string true "Member ID"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} diaryResponse
// @Failure 400 {object} errorResponse
// @Router /diaries [get]
func (h *DiaryHandler) List(c echo.Context) error {
	memberID := strings.TrimSpace(c.QueryParam("memberId"))
	if memberID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	diaries, err := h.service.ListDiaries(c.Request().Context(), memberID, c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]diaryResponse, 0, len(diaries))
	for _, d := range diaries {
		response = append(response, toDiaryResponse(d))
	}
	return c.JSON(http.StatusOK, response)
}

// Detail returns the diary contents of a member for one day.
// @Summary Get diary contents for a date
// @Description Returns a placeholder message when the member has no diary that day
// @Tags diaries
// @Produce json
// @Param memberId query string true "Member ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} service.DiaryDetail
// @Failure 400 {object} errorResponse
// @Router /diaries/detail [get]
func (h *DiaryHandler) Detail(c echo.Context) error {
	memberID := strings.TrimSpace(c.QueryParam("memberId"))
	if memberID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	detail, err := h.service.GetDiaryContents(c.Request().Context(), memberID, c.QueryParam("date"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Generate forwards a free-form prompt to the language model.
// @Summary Generate diary text
// @Tags diaries
// @Accept json
// @Produce json
// @Param request body generateDiaryRequest true "Prompt"
// @Success 200 {object} generateDiaryResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /diaries/generate [post]
func (h *DiaryHandler) Generate(c echo.Context) error {
	var req generateDiaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	content, err := h.service.GenerateDiaryEntry(c.Request().Context(), req.Prompt)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, generateDiaryResponse{Content: content})
}

// Summarize generates and stores a four-sentence summary of a diary.
// @Summary Summarize a diary
// @Tags diaries
// @Produce json
// @Param id path int true "Diary ID"
// @Success 200 {object} summaryResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /diaries/{id}/summary [post]
func (h *DiaryHandler) Summarize(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	summary, err := h.service.SummarizeDiary(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, summaryResponse{Summary: summary})
}

// GetSummary returns the stored summary of a diary.
// @Summary Get a diary summary
// @Tags diaries
// @Produce json
// @Param id path int true "Diary ID"
// @Success 200 {object} summaryDetailResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /diaries/{id}/summary [get]
func (h *DiaryHandler) GetSummary(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	detail, err := h.service.GetSummary(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	sentences := detail.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	return c.JSON(http.StatusOK, summaryDetailResponse{
		DiaryID:   idToString(detail.DiaryID),
		Contents:  detail.Contents,
		Sentences: sentences,
		UpdatedAt: detail.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// Letter writes a letter of comfort based on a diary.
// @Summary Generate a letter
// @Tags diaries
// @Produce json
// @Param id path int true "Diary ID"
// @Success 200 {object} letterResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /diaries/{id}/letter [post]
func (h *DiaryHandler) Letter(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	letter, err := h.service.GenerateLetter(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, letterResponse{Letter: letter})
}

func toDiaryResponse(d model.Diary) diaryResponse {
	return diaryResponse{
		ID:          idToString(d.ID),
		MemberID:    d.MemberID,
		Contents:    d.Contents,
		EmotionCode: d.EmotionCode,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
