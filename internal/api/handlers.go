package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/sprite-ai/tghtml/internal/entity"
	"github.com/sprite-ai/tghtml/internal/logging"
	"github.com/sprite-ai/tghtml/internal/markup"
)

// --- Keep-alive ---

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok")
}

// --- Health ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Convert ---

type convertResponse struct {
	HTML        string        `json:"html"`
	Spans       int           `json:"spans"`
	Dropped     []droppedJSON `json:"dropped,omitempty"`
	UTF16Length int           `json:"utf16_length"`
}

type droppedJSON struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func droppedList(ds []markup.Dropped) []droppedJSON {
	var out []droppedJSON
	for _, d := range ds {
		out = append(out, droppedJSON{
			Index:  d.Index,
			Type:   d.Entity.Type.String(),
			Reason: d.Reason.String(),
		})
	}
	return out
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var msg entity.Message
	if err := readJSON(w, r, s.cfg.MaxBodyBytes, &msg); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(ctx, w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(ctx, w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	text, entities := msg.Content()
	if text == "" {
		s.writeError(ctx, w, http.StatusBadRequest, "text or caption is required")
		return
	}

	conv := markup.Explain(text, entities)
	logging.FromContext(ctx, s.log).Debug("converted",
		"units", conv.UTF16Length,
		"entities", len(entities),
		"spans", len(conv.Spans),
		"dropped", len(conv.Dropped),
	)

	s.writeJSON(ctx, w, http.StatusOK, convertResponse{
		HTML:        conv.HTML,
		Spans:       len(conv.Spans),
		Dropped:     droppedList(conv.Dropped),
		UTF16Length: conv.UTF16Length,
	})
}
