package websocket

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/yigit/studentroster/internal/app/models/dto"
)

// Handler upgrades HTTP requests into event subscriptions
type Handler struct {
	hub            *Hub
	allowedOrigins []string
	logger         zerolog.Logger
}

// NewHandler creates a new WebSocket handler. An allowed origin of "*"
// accepts every origin.
func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:            hub,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to roster events
// @Description Upgrades the connection to a WebSocket that receives a JSON event for every suspension change
// @Tags students, websocket
// @Produce json
// @Success 101 {object} models.Event "Switching Protocols to WebSocket"
// @Failure 400 {object} dto.ErrorResponse "Not a WebSocket handshake"
// @Failure 403 {object} dto.ErrorResponse "Origin not allowed"
// @Router /students/events [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
		Error: func(w http.ResponseWriter, r *http.Request, status int, reason error) {
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(reason.Error()))
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("remoteAddr", c.ClientIP()).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.hub, conn, h.logger)
	if !h.hub.subscribe(client) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("remoteAddr", client.addr).
		Msg("WebSocket connection established")
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
