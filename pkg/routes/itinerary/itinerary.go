// Package itinerary exposes the four mutation operations over HTTP. Request
// bodies map 1:1 to the service operations; responses use a
// {status, message} envelope.
package itinerary

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"wayfarer/pkg/appcontext"
	"wayfarer/pkg/itinerary"
	"wayfarer/pkg/models"
	"wayfarer/pkg/session"
	"wayfarer/pkg/utils"
)

// Handler serves itinerary mutation routes.
type Handler struct {
	service  *itinerary.Service
	sessions *session.Store
	logger   ectologger.Logger
}

// NewHandler creates a new itinerary handler.
func NewHandler(service *itinerary.Service, sessions *session.Store, logger ectologger.Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// Register registers itinerary routes
func (h *Handler) Register(g *echo.Group) {
	g.GET("", h.Get)
	g.POST("/add", h.Add)
	g.POST("/remove", h.Remove)
	g.POST("/update-duration", h.UpdateDuration)
	g.POST("/update", h.Update)
}

// AddRequest is the add operation body.
type AddRequest struct {
	SessionID string `json:"session_id"`
	itinerary.AddRequest
}

// RemoveRequest is the remove operation body.
type RemoveRequest struct {
	SessionID       string `json:"session_id"`
	DestinationName string `json:"destination_name" validate:"required"`
}

// UpdateDurationRequest is the update-duration operation body.
type UpdateDurationRequest struct {
	SessionID       string `json:"session_id"`
	DestinationName string `json:"destination_name" validate:"required"`
	DurationDays    int    `json:"duration_days" validate:"required"`
}

// UpdateRequest is the sparse update operation body.
type UpdateRequest struct {
	SessionID       string `json:"session_id"`
	DestinationName string `json:"destination_name" validate:"required"`
	itinerary.UpdateFields
}

// MutationResponse is the success envelope for mutations.
type MutationResponse struct {
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	Destination  *models.Destination `json:"destination,omitempty"`
	RemovedCount int                 `json:"removed_count,omitempty"`
}

// Get returns the current itinerary document.
func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID, err := h.resolveSession(ctx, c.QueryParam("session_id"))
	if err != nil {
		return err
	}

	doc, err := h.service.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// Add creates a new destination.
func (h *Handler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[AddRequest](c)
	if err != nil {
		return err
	}

	sessionID, err := h.resolveSession(ctx, req.SessionID)
	if err != nil {
		return err
	}

	dest, err := h.service.Add(ctx, sessionID, &req.AddRequest)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MutationResponse{
		Status:      "success",
		Message:     "Added " + dest.Name + " to the itinerary",
		Destination: dest,
	})
}

// Remove deletes every destination matching by name or city.
func (h *Handler) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[RemoveRequest](c)
	if err != nil {
		return err
	}

	sessionID, err := h.resolveSession(ctx, req.SessionID)
	if err != nil {
		return err
	}

	removed, err := h.service.Remove(ctx, sessionID, req.DestinationName)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MutationResponse{
		Status:       "success",
		Message:      "Removed " + req.DestinationName + " from the itinerary",
		RemovedCount: removed,
	})
}

// UpdateDuration changes the stay length on the first matching destination.
func (h *Handler) UpdateDuration(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[UpdateDurationRequest](c)
	if err != nil {
		return err
	}

	sessionID, err := h.resolveSession(ctx, req.SessionID)
	if err != nil {
		return err
	}

	dest, err := h.service.UpdateDuration(ctx, sessionID, req.DestinationName, req.DurationDays)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MutationResponse{
		Status:      "success",
		Message:     "Updated duration for " + dest.Name,
		Destination: dest,
	})
}

// Update merges sparse field updates into the first matching destination.
func (h *Handler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := utils.BindRequest[UpdateRequest](c)
	if err != nil {
		return err
	}

	sessionID, err := h.resolveSession(ctx, req.SessionID)
	if err != nil {
		return err
	}

	dest, err := h.service.Update(ctx, sessionID, req.DestinationName, &req.UpdateFields)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MutationResponse{
		Status:      "success",
		Message:     "Updated " + dest.Name,
		Destination: dest,
	})
}

// resolveSession maps the request's session id to the identifier scoping the
// remote store: web session id first, then the stored session's own id, then
// the fixed default.
func (h *Handler) resolveSession(ctx context.Context, bodySessionID string) (string, error) {
	webSessionID := appcontext.GetWebSessionID(ctx)

	var sess *models.Session
	if h.sessions != nil {
		var err error
		sess, err = h.sessions.GetOrCreate(ctx, bodySessionID, webSessionID)
		if err != nil {
			return "", err
		}
	}

	return itinerary.ResolveSessionID(webSessionID, sess), nil
}
