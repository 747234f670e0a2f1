// Package costs exposes cost research and reconciliation over HTTP.
package costs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"wayfarer/pkg/appcontext"
	"wayfarer/pkg/assistant"
	"wayfarer/pkg/costs"
	"wayfarer/pkg/itinerary"
	"wayfarer/pkg/models"
	"wayfarer/pkg/refdata"
	"wayfarer/pkg/session"
	"wayfarer/pkg/utils"
)

// Handler serves cost reconciliation routes.
type Handler struct {
	engine    *costs.Engine
	assistant *assistant.Assistant
	sessions  *session.Store
	research  *refdata.SearchCache
	logger    ectologger.Logger
}

// NewHandler creates a new costs handler. The assistant may be nil when no
// API key is configured; the research route then reports unavailable.
func NewHandler(engine *costs.Engine, assist *assistant.Assistant, sessions *session.Store, logger ectologger.Logger) *Handler {
	return &Handler{
		engine:    engine,
		assistant: assist,
		sessions:  sessions,
		research:  refdata.NewSearchCache(),
		logger:    logger,
	}
}

// Register registers cost routes
func (h *Handler) Register(g *echo.Group) {
	g.POST("/reconcile", h.Reconcile)
	g.POST("/research", h.Research)
}

// Reconcile scales a research payload and persists the resulting cost items.
func (h *Handler) Reconcile(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[costs.ReconcileRequest](c)
	if err != nil {
		return err
	}

	sess, sessionID, err := h.resolveSession(ctx, req.SessionID)
	if err != nil {
		return err
	}
	req.SessionID = sessionID
	if req.ScenarioID == "" && sess != nil {
		req.ScenarioID = sess.ScenarioID
	}

	result, err := h.engine.Reconcile(ctx, &req)
	if err != nil {
		return err
	}

	if result.Status == "error" {
		return c.JSON(http.StatusBadGateway, result)
	}
	return c.JSON(http.StatusOK, result)
}

// ResearchRequest asks the assistant for a cost estimate and reconciles it in
// one call.
type ResearchRequest struct {
	SessionID       string `json:"session_id"`
	ScenarioID      string `json:"scenario_id"`
	DestinationName string `json:"destination_name" validate:"required"`
	DestinationID   string `json:"destination_id,omitempty"`
	Country         string `json:"country,omitempty"`
	DurationDays    int    `json:"duration_days,omitempty"`
	NumTravelers    int    `json:"num_travelers,omitempty"`
}

// Research produces a research payload for a destination and reconciles it.
func (h *Handler) Research(c echo.Context) error {
	ctx := c.Request().Context()

	if h.assistant == nil {
		return httperror.NewHTTPError(http.StatusServiceUnavailable, "cost research is not configured")
	}

	req, err := utils.BindRequest[ResearchRequest](c)
	if err != nil {
		return err
	}

	sess, sessionID, err := h.resolveSession(ctx, req.SessionID)
	if err != nil {
		return err
	}
	if req.ScenarioID == "" && sess != nil {
		req.ScenarioID = sess.ScenarioID
	}

	// Research payloads hold unscaled base figures, so the cache key ignores
	// the trip parameters.
	cacheKey := fmt.Sprintf("%s|%s", req.DestinationName, req.Country)
	var research *models.ResearchPayload
	if cached, ok := h.research.Get(cacheKey); ok {
		research = cached.(*models.ResearchPayload)
	} else {
		research, err = h.assistant.ResearchCosts(ctx, req.DestinationName, req.Country, req.DurationDays, req.NumTravelers)
		if err != nil {
			return httperror.WrapError(http.StatusBadGateway, err)
		}
		h.research.Set(cacheKey, research)
	}

	result, err := h.engine.Reconcile(ctx, &costs.ReconcileRequest{
		SessionID:       sessionID,
		ScenarioID:      req.ScenarioID,
		DestinationName: req.DestinationName,
		DestinationID:   req.DestinationID,
		DurationDays:    req.DurationDays,
		NumTravelers:    req.NumTravelers,
		ResearchData:    research,
	})
	if err != nil {
		return err
	}

	if result.Status == "error" {
		return c.JSON(http.StatusBadGateway, result)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) resolveSession(ctx context.Context, bodySessionID string) (*models.Session, string, error) {
	webSessionID := appcontext.GetWebSessionID(ctx)

	var sess *models.Session
	if h.sessions != nil {
		var err error
		sess, err = h.sessions.GetOrCreate(ctx, bodySessionID, webSessionID)
		if err != nil {
			return nil, "", err
		}
	}

	return sess, itinerary.ResolveSessionID(webSessionID, sess), nil
}
