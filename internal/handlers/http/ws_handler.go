package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/handlers/middleware"
	"github.com/gamevault/gamevault-backend/internal/realtime"
)

// WSHandler registra conexões websocket de clientes no hub
type WSHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewWSHandler cria um novo WSHandler
func NewWSHandler(hub *realtime.Hub, logger ports.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// A autorização acontece no middleware JWT; a origem fica
			// a cargo do CORS do frontend
			CheckOrigin: func(r *nethttp.Request) bool { return true },
		},
		logger: logger,
	}
}

// Connect faz o upgrade da conexão e a mantém registrada no hub até o
// cliente desconectar. Mensagens recebidas são descartadas; o canal é
// só de saída.
func (h *WSHandler) Connect(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	h.hub.Register(userID, conn)

	go func() {
		defer h.hub.Unregister(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
