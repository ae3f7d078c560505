package handler

import (
	"log/slog"
	"net/http"
	"time"

	"leasing/internal/delivery/http/response"
	"leasing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxPrioritizedLimit = 1000

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	ScoreUC usecase.ScoreUsecase
	Logger  *slog.Logger
}

// LeadHandler serves lead scores and recalculation
type LeadHandler struct {
	scoreUC usecase.ScoreUsecase
	logger  *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		scoreUC: params.ScoreUC,
		logger:  params.Logger,
	}
}

// ScoreResponse is the score of one unit with its breakdown
type ScoreResponse struct {
	UnitID         uuid.UUID          `json:"unit_id"`
	LeadScore      float64            `json:"lead_score"`
	RawScore       float64            `json:"raw_score"`
	ScoreBreakdown map[string]float64 `json:"score_breakdown"`
	Fresh          bool               `json:"fresh"`
	ScoredAt       *time.Time         `json:"scored_at,omitempty"`
}

// RecalculationResponse summarizes a bulk recalculation
type RecalculationResponse struct {
	Total        int               `json:"total"`
	UpdatedCount int               `json:"updated_count"`
	Unchanged    int               `json:"unchanged"`
	Skipped      int               `json:"skipped"`
	Failed       map[string]string `json:"failed,omitempty"`
	DurationMs   int64             `json:"duration_ms"`
}

// GetScore handles computing the score of a unit
func (h *LeadHandler) GetScore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	report, err := h.scoreUC.ComputeScore(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ScoreResponse{
		UnitID:         report.UnitID,
		LeadScore:      report.Score,
		RawScore:       report.RawTotal,
		ScoreBreakdown: report.Breakdown,
		Fresh:          report.Fresh,
		ScoredAt:       report.ScoredAt,
	})
}

// RecalculateUnit handles rescoring one unit
func (h *LeadHandler) RecalculateUnit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	unit, err := h.scoreUC.Recalculate(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unit)
}

// RecalculateAll handles rescoring every unit
func (h *LeadHandler) RecalculateAll(c echo.Context) error {
	report, err := h.scoreUC.RecalculateAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := RecalculationResponse{
		Total:        report.Total,
		UpdatedCount: report.Updated,
		Unchanged:    report.Unchanged,
		Skipped:      report.Skipped,
		DurationMs:   report.Duration.Milliseconds(),
	}
	if len(report.Failed) > 0 {
		resp.Failed = make(map[string]string, len(report.Failed))
		for id, failure := range report.Failed {
			resp.Failed[id.String()] = failure.Error()
		}
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetPrioritized handles listing available units by score
func (h *LeadHandler) GetPrioritized(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be an integer")
	}
	if c.QueryParam("limit") != "" && (limit < 1 || limit > maxPrioritizedLimit) {
		return response.BadRequest(c, "VALIDATION_ERROR", "limit must be between 1 and 1000")
	}

	units, err := h.scoreUC.Prioritized(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, units)
}
