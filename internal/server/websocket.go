package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MessageType identifies a websocket message.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope of every websocket frame in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// upgrade rejects plain HTTP requests and unknown games before the
// websocket handshake.
func (s *Server) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if _, err := s.games.Get(c.Params("id")); err != nil {
		return err
	}
	return c.Next()
}

func (s *Server) socketHandler() fiber.Handler {
	return websocket.New(s.handleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	})
}

// socketConn serialises writes from the reader loop and the subscription
// forwarder.
type socketConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (sc *socketConn) send(msgType MessageType, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.conn.WriteJSON(Message{Type: msgType, Payload: data})
}

func (sc *socketConn) sendError(err error) error {
	return sc.send(MessageTypeError, fiber.Map{"error": err.Error()})
}

// handleConnection pushes the game view on connect and after every change,
// and applies move and undo requests from the client.
func (s *Server) handleConnection(c *websocket.Conn) {
	id := c.Params("id")
	sc := &socketConn{conn: c}

	updates, cancel, err := s.games.Subscribe(id)
	if err != nil {
		_ = sc.sendError(err)
		return
	}
	defer cancel()

	snap, err := s.games.Get(id)
	if err != nil {
		_ = sc.sendError(err)
		return
	}
	if err := sc.send(MessageTypeGameState, gameView(id, &snap)); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range updates {
			if err := sc.send(MessageTypeGameState, gameView(id, &snap)); err != nil {
				return
			}
		}
	}()

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = sc.sendError(fmt.Errorf("invalid message: %w", err))
			continue
		}
		if _, err := s.dispatch(id, msg); err != nil {
			if s.cfg.Verbosity > 1 {
				s.log.Printf("game %s: %v", id, err)
			}
			_ = sc.sendError(err)
		}
	}

	cancel()
	<-done
}

// dispatch applies a client message to game id. Successful changes reach
// the client through its subscription.
func (s *Server) dispatch(id string, msg Message) (engine.Snapshot, error) {
	switch msg.Type {
	case MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return engine.Snapshot{}, fmt.Errorf("invalid move payload: %w", err)
		}
		return s.games.Move(id, req.Move)
	case MessageTypeUndo:
		return s.games.Undo(id)
	default:
		return engine.Snapshot{}, fmt.Errorf("unknown message type %q", msg.Type)
	}
}
