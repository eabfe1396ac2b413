package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mfreeman451/wifiradar/pkg/models"
	"github.com/mfreeman451/wifiradar/pkg/scanner"
)

const (
	clientQueueSize = 8
	writeWait       = 10 * time.Second
)

// streamHub fans scanner outcomes out to connected stream clients. It
// implements scanner.Listener; a client that cannot keep up is dropped
// rather than allowed to stall deliveries.
type streamHub struct {
	log Logger

	mu      sync.Mutex
	clients map[chan StreamMessage]struct{}
	closed  bool
}

func newStreamHub(log Logger) *streamHub {
	return &streamHub{
		log:     log,
		clients: make(map[chan StreamMessage]struct{}),
	}
}

// OnBatch implements scanner.Listener.
func (h *streamHub) OnBatch(batch models.ScanBatch) {
	h.broadcast(StreamMessage{
		Type:  "batch",
		At:    batch.CompletedAt,
		Batch: &batch,
	})
}

// OnError implements scanner.Listener.
func (h *streamHub) OnError(event scanner.Event) {
	h.broadcast(StreamMessage{
		Type:  "error",
		At:    event.At,
		Kind:  event.Kind,
		Error: event.Message(),
	})
}

func (h *streamHub) broadcast(msg StreamMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.clients {
		select {
		case ch <- msg:
		default:
			// Slow client: cut it loose instead of stalling the scanner.
			delete(h.clients, ch)
			close(ch)

			h.log.Warnf("dropped slow stream client")
		}
	}
}

func (h *streamHub) subscribe() chan StreamMessage {
	ch := make(chan StreamMessage, clientQueueSize)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return ch
	}

	h.clients[ch] = struct{}{}

	return ch
}

func (h *streamHub) unsubscribe(ch chan StreamMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
}

func (h *streamHub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

func (h *streamHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.closed = true

	for ch := range h.clients {
		delete(h.clients, ch)
		close(ch)
	}
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: s.checkStreamOrigin}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.log.Warnf("stream upgrade failed: %v", err)
		return
	}

	defer func() {
		if err := conn.Close(); err != nil {
			s.log.Debugf("stream close: %v", err)
		}
	}()

	ch := s.hub.subscribe()
	defer s.hub.unsubscribe(ch)

	s.log.Debugf("stream client connected: %s", r.RemoteAddr)

	// The reader only detects the client going away.
	gone := make(chan struct{})

	go func() {
		defer close(gone)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case msg, ok := <-ch:
			if !ok {
				deadline := time.Now().Add(writeWait)
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "stream closed"), deadline)

				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := conn.WriteJSON(msg); err != nil {
				s.log.Debugf("stream write failed: %v", err)
				return
			}
		}
	}
}

func (s *Server) checkStreamOrigin(r *http.Request) bool {
	if len(s.origins) == 0 {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, allowed := range s.origins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}

	return false
}
