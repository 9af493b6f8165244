package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"promasterBack/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

// socketKey identifies a connected principal. Client and company ids
// live in separate tables, so the role is part of the key.
type socketKey struct {
	role string
	id   int
}

type directMsg struct {
	to  socketKey
	msg models.Message
}

type unreg struct {
	key  socketKey
	conn *websocket.Conn
}

type wsClient struct {
	Key    socketKey
	Socket *websocket.Conn
}

type WebSocketManager struct {
	clients    map[socketKey]*websocket.Conn
	direct     chan directMsg
	register   chan wsClient
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[socketKey]*websocket.Conn),
		direct:     make(chan directMsg),
		register:   make(chan wsClient),
		unregister: make(chan unreg),
	}
}

// All access to clients happens here.
func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			// a newer socket for the same principal replaces the old one
			if old, ok := ws.clients[client.Key]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			ws.clients[client.Key] = client.Socket
			log.Printf("WS register %s=%d", client.Key.role, client.Key.id)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.key]; ok && cur == u.conn {
				_ = cur.Close()
				delete(ws.clients, u.key)
				log.Printf("WS unregister %s=%d", u.key.role, u.key.id)
			}

		case dm := <-ws.direct:
			if conn, ok := ws.clients[dm.to]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(dm.msg); err != nil {
					log.Printf("direct send error to %s=%d: %v", dm.to.role, dm.to.id, err)
					_ = conn.Close()
					delete(ws.clients, dm.to)
				}
			} else {
				log.Printf("direct skip: %s=%d offline", dm.to.role, dm.to.id)
			}
		}
	}
}

// notifyMessage pushes a stored message to the recipient's socket.
func (app *application) notifyMessage(role string, userID int, msg models.Message) {
	if app.wsManager == nil {
		return
	}
	app.wsManager.direct <- directMsg{to: socketKey{role: role, id: userID}, msg: msg}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// The first frame must be { "token": "<access token>" }.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		Token string `json:"token"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.Token == "" {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}

	claims, err := app.parseClaims(hello.Token)
	if err != nil || claims.UserID == 0 {
		log.Println("hello token rejected:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "invalid token")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	key := socketKey{role: claims.Role, id: int(claims.UserID)}
	app.wsManager.register <- wsClient{Key: key, Socket: conn}

	go pingLoop(app.wsManager, conn, key)

	go app.handleWebSocketMessages(conn, key)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, key socketKey) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{key: key, conn: conn}
			return
		}
	}
}

// Frames after the hello carry SendMessageRequest payloads. Messages go
// through the same service path as POST /api/messages, so direction and
// content rules hold on both transports.
func (app *application) handleWebSocketMessages(conn *websocket.Conn, key socketKey) {
	defer func() {
		app.wsManager.unregister <- unreg{key: key, conn: conn}
		_ = conn.Close()
	}()

	for {
		var req models.SendMessageRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Println("read json error:", err)
			_ = writeClose(conn, websocket.CloseNormalClosure, "read error")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		msg, err := app.messageService.SendMessage(ctx, key.id, key.role, req)
		cancel()
		if err != nil {
			log.Println("save message error:", err)
			continue
		}

		switch {
		case msg.ReceiverClientID != nil:
			app.wsManager.direct <- directMsg{to: socketKey{role: "client", id: *msg.ReceiverClientID}, msg: msg}
		case msg.ReceiverCompanyID != nil:
			app.wsManager.direct <- directMsg{to: socketKey{role: "company", id: *msg.ReceiverCompanyID}, msg: msg}
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
