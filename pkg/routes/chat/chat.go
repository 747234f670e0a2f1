// Package chat exposes the conversational endpoint.
package chat

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"wayfarer/pkg/appcontext"
	"wayfarer/pkg/assistant"
	"wayfarer/pkg/itinerary"
	"wayfarer/pkg/models"
	"wayfarer/pkg/session"
	"wayfarer/pkg/utils"
)

// Handler serves chat routes.
type Handler struct {
	assistant *assistant.Assistant
	service   *itinerary.Service
	sessions  *session.Store
	logger    ectologger.Logger
}

// NewHandler creates a new chat handler.
func NewHandler(assist *assistant.Assistant, service *itinerary.Service, sessions *session.Store, logger ectologger.Logger) *Handler {
	return &Handler{
		assistant: assist,
		service:   service,
		sessions:  sessions,
		logger:    logger,
	}
}

// Register registers chat routes
func (h *Handler) Register(g *echo.Group) {
	g.POST("", h.Chat)
}

// Request is one user turn.
type Request struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" validate:"required"`
}

// Response is the assistant's reply.
type Response struct {
	Status    string             `json:"status"`
	SessionID string             `json:"session_id"`
	Message   models.ChatMessage `json:"message"`
}

// Chat answers one user turn grounded in the current itinerary and appends
// both turns to the session transcript.
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	if h.assistant == nil {
		return httperror.NewHTTPError(http.StatusServiceUnavailable, "the assistant is not configured")
	}

	req, err := utils.BindRequest[Request](c)
	if err != nil {
		return err
	}

	webSessionID := appcontext.GetWebSessionID(ctx)
	sess, err := h.sessions.GetOrCreate(ctx, req.SessionID, webSessionID)
	if err != nil {
		return err
	}
	storeSessionID := itinerary.ResolveSessionID(webSessionID, sess)

	doc, err := h.service.Get(ctx, storeSessionID)
	if err != nil {
		h.logger.WithContext(ctx).WithError(err).Warn("Chat proceeding without itinerary context")
		doc = nil
	}

	reply, err := h.assistant.Reply(ctx, sess, doc, req.Message)
	if err != nil {
		return httperror.WrapError(http.StatusBadGateway, err)
	}

	if err := h.sessions.AppendMessage(ctx, sess, "user", req.Message); err != nil {
		return err
	}
	if err := h.sessions.AppendMessage(ctx, sess, "assistant", reply); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Status:    "success",
		SessionID: sess.ID,
		Message:   models.ChatMessage{Role: "assistant", Content: reply},
	})
}
