package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-showcase/errs"
	"github.com/rpupo63/portfolio-showcase/sessions"
)

const wsWriteWait = 10 * time.Second

type wsHandler struct {
	logger   zerolog.Logger
	store    *sessions.Store
	upgrader websocket.Upgrader
}

func newWSHandler(store *sessions.Store, allowedOrigins []string) wsHandler {
	return wsHandler{
		logger: log.With().Str("handlerName", "wsHandler").Logger(),
		store:  store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r, allowedOrigins)
			},
		},
	}
}

// serve reads one event per frame and answers each with the resulting state.
// Frames are handled strictly in arrival order. Each socket runs its own
// session so closing it never ends a page visitor's showcase.
func (h wsHandler) serve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn().Err(err).Msg("failed to upgrade to websocket")
			return
		}
		defer conn.Close()
		// the server's read timeout would otherwise cut idle sockets off
		_ = conn.SetReadDeadline(time.Time{})

		sess := h.store.Create()
		defer func() {
			if err := h.store.Delete(sess.ID); err != nil && !errs.IsSessionNotFound(err) {
				h.logger.Error().Err(err).Str("sessionID", sess.ID).Msg("failed to end session")
			}
		}()

		logger := h.logger.With().Str("sessionID", sess.ID).Logger()
		logger.Info().Msg("showcase websocket connected")

		state := sess.Snapshot()
		if err := h.send(conn, SocketMessage{Type: "state", SessionID: sess.ID, State: &state}); err != nil {
			return
		}

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Debug().Err(err).Msg("websocket read error")
				}
				break
			}

			var req EventRequest
			if err := json.Unmarshal(message, &req); err != nil {
				if err := h.send(conn, SocketMessage{Type: "error", Error: errs.NewInvalidJSONError(err).Error()}); err != nil {
					break
				}
				continue
			}

			reply, ended := h.apply(sess, req)
			if err := h.send(conn, reply); err != nil {
				break
			}
			if ended {
				logger.Info().Msg("session ended while socket was open")
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session ended"),
					time.Now().Add(wsWriteWait))
				break
			}
		}

		logger.Info().Msg("showcase websocket disconnected")
	}
}

// apply dispatches req and reports whether the session has ended underneath
// the socket.
func (h wsHandler) apply(sess *sessions.Session, req EventRequest) (SocketMessage, bool) {
	ev, err := toEvent(req)
	if err != nil {
		state := sess.Snapshot()
		return SocketMessage{Type: "error", Error: err.Error(), State: &state}, false
	}

	result, err := sess.Dispatch(ev, h.store.Now())
	if err != nil {
		return SocketMessage{Type: "error", Error: err.Error(), State: &result.Snapshot}, errs.IsSessionNotFound(err)
	}
	return SocketMessage{Type: "result", Outcome: result.Outcome, State: &result.Snapshot}, false
}

func (h wsHandler) send(conn *websocket.Conn, msg SocketMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal socket message")
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.Debug().Err(err).Msg("failed to send socket message")
		return err
	}
	return nil
}

// originAllowed accepts same-origin upgrades and any configured origin.
func originAllowed(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if slices.Contains(allowed, "*") || slices.Contains(allowed, origin) {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}
