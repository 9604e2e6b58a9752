package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gamevault/gamevault-backend/internal/domain/ports"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }

// wsPair abre uma conexão real via httptest e devolve as duas pontas
func wsPair(t *testing.T, srvURL string, serverConns chan *websocket.Conn) (client, server *websocket.Conn) {
	t.Helper()

	client, resp, err := websocket.DefaultDialer.Dial(srvURL, nil)
	if err != nil {
		t.Fatalf("falha ao conectar: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case server = <-serverConns:
	case <-time.After(2 * time.Second):
		t.Fatal("servidor não recebeu a conexão")
	}
	return client, server
}

func newWSServer(t *testing.T) (string, chan *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverConns := make(chan *websocket.Conn, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade falhou: %v", err)
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http"), serverConns
}

func TestHub_Reconnect(t *testing.T) {
	t.Run("unregister da conexão antiga não derruba a nova", func(t *testing.T) {
		hub := NewHub(noopLogger{})
		url, serverConns := newWSServer(t)

		client1, server1 := wsPair(t, url, serverConns)
		defer client1.Close()
		hub.Register("user-1", server1)

		client2, server2 := wsPair(t, url, serverConns)
		defer client2.Close()
		hub.Register("user-1", server2)

		// O read-loop da conexão antiga morre ao vê-la fechada e dispara
		// o unregister; a entrada nova precisa sobreviver
		hub.Unregister("user-1", server1)

		hub.NotifyUser("user-1", "order.paid", ports.OrderStatusPayload{
			OrderID: 42,
			Status:  "approved",
			IsPaid:  true,
		})

		client2.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg struct {
			Event string `json:"event"`
			Data  struct {
				OrderID int64 `json:"order_id"`
			} `json:"data"`
		}
		if err := client2.ReadJSON(&msg); err != nil {
			t.Fatalf("a conexão nova deveria receber o evento: %v", err)
		}
		if msg.Event != "order.paid" || msg.Data.OrderID != 42 {
			t.Fatalf("evento inesperado: %+v", msg)
		}
	})

	t.Run("unregister da conexão corrente remove a entrada", func(t *testing.T) {
		hub := NewHub(noopLogger{})
		url, serverConns := newWSServer(t)

		client, server := wsPair(t, url, serverConns)
		defer client.Close()
		hub.Register("user-1", server)
		hub.Unregister("user-1", server)

		hub.mu.RLock()
		_, ok := hub.byUser["user-1"]
		hub.mu.RUnlock()
		if ok {
			t.Fatal("entrada deveria ter sido removida")
		}
	})
}
