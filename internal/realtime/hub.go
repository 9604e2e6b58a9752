package realtime

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/gamevault/gamevault-backend/internal/domain/ports"
)

// Hub mantém as conexões websocket abertas por usuário e implementa
// ports.OrderNotifier. Cada usuário tem no máximo uma conexão; uma nova
// conexão derruba a anterior. Usuário desconectado perde o evento — o
// estado do pedido continua disponível via REST.
type Hub struct {
	mu     sync.RWMutex
	byUser map[string]*wsConn
	logger ports.Logger
}

// wsConn embrulha a conexão com um mutex de escrita para serializar writes
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewHub cria um hub vazio
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		byUser: make(map[string]*wsConn),
		logger: logger,
	}
}

// Register associa a conexão ao usuário, fechando a anterior se existir
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byUser[userID]; ok {
		old.conn.Close()
	}
	h.byUser[userID] = &wsConn{conn: conn}
	h.logger.Info("websocket connected", "user_id", userID)
}

// Unregister remove e fecha a conexão do usuário. A entrada só é
// removida se ainda apontar para conn: o read-loop de uma conexão
// derrubada por reconexão não pode descartar a conexão nova.
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byUser[userID]; ok && c.conn == conn {
		c.conn.Close()
		delete(h.byUser, userID)
	}
}

// NotifyUser envia um evento tipado ao usuário, se conectado
func (h *Hub) NotifyUser(userID string, event string, payload any) {
	h.mu.RLock()
	wc, ok := h.byUser[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	msg := map[string]any{"event": event, "data": payload}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(msg); err != nil {
		h.logger.Warn("websocket write failed",
			"user_id", userID,
			"event", event,
			"error", err,
		)
	}
}
