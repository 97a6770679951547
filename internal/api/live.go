package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/terra-clan/paradigm-advisor/internal/metrics"
	"github.com/terra-clan/paradigm-advisor/internal/page"
)

const (
	liveReadLimit  = 4096
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// LiveMessage is sent by the page for every interaction
type LiveMessage struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}

// LiveResponse is sent back after every interaction
type LiveResponse struct {
	Type  string     `json:"type"` // "view" or "error"
	View  *page.View `json:"view,omitempty"`
	Error string     `json:"error,omitempty"`
}

// handleLive upgrades to a websocket that applies page actions and answers
// with the new view. Messages are handled one at a time, in order.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	id := SessionIDFromContext(r.Context())

	state, err := s.loadState(r.Context(), id)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}

	// The upgrade writes its own response, so the session cookie goes in explicitly
	header := http.Header{}
	for _, c := range w.Header().Values("Set-Cookie") {
		header.Add("Set-Cookie", c)
	}

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	metrics.LiveConnections.Inc()
	defer metrics.LiveConnections.Dec()

	slog.Info("live connection opened", "remote_addr", r.RemoteAddr)

	conn.SetReadLimit(liveReadLimit)
	conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)
	go func() {
		ticker := time.NewTicker(livePingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-stopPing:
				return
			case <-ticker.C:
				deadline := time.Now().Add(liveWriteWait)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					return
				}
			}
		}
	}()

	if err := s.writeLive(conn, s.viewResponse(state)); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("live connection read error", "error", err)
			}
			break
		}

		var msg LiveMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if err := s.writeLive(conn, LiveResponse{Type: "error", Error: "invalid message"}); err != nil {
				break
			}
			continue
		}

		// Other tabs of the same session may have changed the stored state
		current, err := s.loadLiveState(id)
		if err != nil {
			slog.Error("failed to load session", "error", err)
			if err := s.writeLive(conn, LiveResponse{Type: "error", Error: "failed to load state"}); err != nil {
				break
			}
			continue
		}

		next, err := s.controller.Apply(current, page.Action{Type: page.ActionType(msg.Type), ID: msg.ID})
		if err != nil {
			resp := LiveResponse{Type: "error", Error: "apply failed"}
			if errors.Is(err, page.ErrUnknownAction) {
				resp.Error = "unknown action"
			}
			if err := s.writeLive(conn, resp); err != nil {
				break
			}
			continue
		}

		if err := s.saveLiveState(id, next); err != nil {
			slog.Error("failed to save session", "error", err)
			if err := s.writeLive(conn, LiveResponse{Type: "error", Error: "failed to save state"}); err != nil {
				break
			}
			continue
		}

		metrics.RecordAction(msg.Type, "websocket")

		if err := s.writeLive(conn, s.viewResponse(next)); err != nil {
			break
		}
	}

	slog.Info("live connection closed", "remote_addr", r.RemoteAddr)
}

// loadLiveState and saveLiveState carry their own deadline: the request
// context is not tied to the connection's lifetime once hijacked.
func (s *Server) loadLiveState(id string) (page.State, error) {
	ctx, cancel := context.WithTimeout(context.Background(), liveWriteWait)
	defer cancel()
	return s.loadState(ctx, id)
}

func (s *Server) saveLiveState(id string, state page.State) error {
	ctx, cancel := context.WithTimeout(context.Background(), liveWriteWait)
	defer cancel()
	return s.sessions.Save(ctx, id, state)
}

func (s *Server) viewResponse(state page.State) LiveResponse {
	view := s.controller.View(state)
	if view.Recommendation != nil {
		metrics.RecordRecommendation(view.Recommendation.Paradigm)
	}
	return LiveResponse{Type: "view", View: &view}
}

func (s *Server) writeLive(conn *websocket.Conn, resp LiveResponse) error {
	conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	if err := conn.WriteJSON(resp); err != nil {
		slog.Warn("failed to write live message", "error", err)
		return err
	}
	return nil
}
