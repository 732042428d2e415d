package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sprite-ai/tghtml/internal/entity"
	"github.com/sprite-ai/tghtml/internal/logging"
	"github.com/sprite-ai/tghtml/internal/markup"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 64,
	WriteBufferSize: 1024 * 64,
	CheckOrigin: func(r *http.Request) bool {
		return true // clients are bots and tools, not browsers
	},
}

// WebSocket message types from client.
const (
	wsMsgConvert = "convert"
	wsMsgPing    = "ping"
)

// WebSocket message types to client.
const (
	wsMsgHTML  = "html"
	wsMsgPong  = "pong"
	wsMsgError = "error"
)

// wsMessage is the envelope for WebSocket messages in both directions.
type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// wsConvert is the payload for "convert" messages. ID is echoed back so
// clients can pipeline requests.
type wsConvert struct {
	ID string `json:"id,omitempty"`
	entity.Message
}

// wsHTMLResponse answers a "convert" message.
type wsHTMLResponse struct {
	ID      string        `json:"id,omitempty"`
	HTML    string        `json:"html"`
	Dropped []droppedJSON `json:"dropped,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.MaxBodyBytes)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", "err", err)
			}
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.sendWSError(ctx, conn, "invalid message format")
			continue
		}

		switch msg.Type {
		case wsMsgConvert:
			s.handleWSConvert(ctx, conn, msg.Data)
		case wsMsgPing:
			s.sendWSMessage(ctx, conn, wsMsgPong, nil)
		default:
			s.sendWSError(ctx, conn, "unknown message type: "+msg.Type)
		}
	}
}

func (s *Server) handleWSConvert(ctx context.Context, conn *websocket.Conn, data json.RawMessage) {
	var req wsConvert
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendWSError(ctx, conn, "invalid convert data")
		return
	}

	text, entities := req.Content()
	conv := markup.Explain(text, entities)
	s.sendWSMessage(ctx, conn, wsMsgHTML, wsHTMLResponse{
		ID:      req.ID,
		HTML:    conv.HTML,
		Dropped: droppedList(conv.Dropped),
	})
}

func (s *Server) sendWSMessage(ctx context.Context, conn *websocket.Conn, msgType string, data any) {
	msg := wsMessage{Type: msgType}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			logging.FromContext(ctx, s.log).Error("ws marshal", "err", err)
			return
		}
		msg.Data = raw
	}
	if err := conn.WriteJSON(msg); err != nil {
		logging.FromContext(ctx, s.log).Warn("ws write", "err", err)
	}
}

func (s *Server) sendWSError(ctx context.Context, conn *websocket.Conn, errMsg string) {
	s.sendWSMessage(ctx, conn, wsMsgError, map[string]string{"message": errMsg})
}
