// Package server publishes every displayed generation to web clients.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 1 * time.Second
	// Time allowed for in flight requests when shutting down.
	shutdownWait = 2 * time.Second
)

var upgrader = websocket.Upgrader{}

// Frame is one generation as sent to clients
type Frame struct {
	Generation int      `json:"generation"`
	Side       int      `json:"side"`
	Living     int      `json:"living"`
	Cells      [][]bool `json:"cells"`
}

// Hub is a display that keeps the latest frame and pushes every new one to
// connected websocket clients. Slow clients skip frames rather than block the
// simulation.
type Hub struct {
	mu      sync.Mutex
	shown   int
	latest  Frame
	clients map[*client]struct{}
}

type client struct {
	ws   *websocket.Conn
	send chan Frame
}

// NewHub returns a hub with no generation shown yet
func NewHub() *Hub {
	return &Hub{
		latest:  Frame{Cells: [][]bool{}},
		clients: map[*client]struct{}{},
	}
}

// Display records the generation and offers it to every client
func (h *Hub) Display(g *model.Grid) error {
	f := Frame{
		Side:   g.Side(),
		Living: g.CountLiving(),
		Cells:  g.Matrix(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	f.Generation = h.shown
	h.shown++
	h.latest = f
	for c := range h.clients {
		c.offer(f)
	}
	return nil
}

// Latest returns the most recently displayed frame
func (h *Hub) Latest() Frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Handler routes the page, the latest board and the websocket stream
func (h *Hub) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", h.serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/board", h.serveBoard).Methods(http.MethodGet)
	r.HandleFunc("/ws", h.serveWebsocket)
	return r
}

// Serve listens on addr until ctx is done
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrapf(err, "[Serve] failed to listen on %s", addr)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		h.closeClients()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func (h *Hub) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}

func (h *Hub) serveBoard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Latest()); err != nil {
		log.Println("board:", err)
	}
}

// serveWebsocket streams frames until the client goes away or the hub closes it
func (h *Hub) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	c := &client{ws: ws, send: make(chan Frame, 1)}
	h.register(c)
	defer h.unregister(c)

	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return err
			}
		}
	})
	group.Go(func() error {
		defer ws.Close()
		for {
			select {
			case <-ctx.Done():
				return nil
			case f := <-c.send:
				_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
				if err := ws.WriteJSON(f); err != nil {
					return err
				}
			}
		}
	})

	if err := group.Wait(); err != nil && isUnexpected(err) {
		log.Println("websocket:", err)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	if h.shown > 0 {
		c.offer(h.latest)
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) closeClients() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		_ = c.ws.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait))
		_ = c.ws.Close()
	}
}

// offer queues f, replacing a frame the client has not picked up yet
func (c *client) offer(f Frame) {
	select {
	case c.send <- f:
		return
	default:
	}
	select {
	case <-c.send:
	default:
	}
	select {
	case c.send <- f:
	default:
	}
}

func isUnexpected(err error) bool {
	return websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>go-life</title></head>
<body>
<pre id="status"></pre>
<pre id="board"></pre>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (msg) => {
	const frame = JSON.parse(msg.data);
	document.getElementById("status").textContent =
		"Gen: " + frame.generation + " | Living: " + frame.living;
	document.getElementById("board").textContent = frame.cells
		.map((row) => row.map((alive) => (alive ? "▣" : ".")).join(" "))
		.join("\n");
};
</script>
</body>
</html>
`
