package ws

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/puzzleio"
	"svw.info/sudokusolve/internal/usecase"
)

// Handler streams batch solve/verify runs over a websocket. Each text
// frame from the client holds one or more puzzles in the '.'-blank text
// format; the server answers with one result frame per puzzle and a
// closing summary frame per batch.
type Handler struct {
	UC       *usecase.Service
	Logger   *slog.Logger
	upgrader websocket.Upgrader
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		UC:     uc,
		Logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ws/batch", h.handleBatch)
}

type resultMsg struct {
	Index      int         `json:"index"`
	Solved     bool        `json:"solved"`
	Verified   bool        `json:"verified,omitempty"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
	Error      string      `json:"error,omitempty"`
}

type summaryMsg struct {
	Done     bool `json:"done"`
	Total    int  `json:"total"`
	Solved   int  `json:"solved"`
	Verified int  `json:"verified"`
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		if err := h.runBatch(r.Context(), conn, msg); err != nil {
			h.Logger.Warn("batch aborted", "err", err)
			return
		}
	}
}

// runBatch solves every puzzle in the frame sequentially and writes one
// frame per result. Writes need no lock: only this goroutine touches conn.
func (h *Handler) runBatch(ctx context.Context, conn *websocket.Conn, frame []byte) error {
	rd := puzzleio.NewReader(bytes.NewReader(frame))
	sum := summaryMsg{Done: true}
	for {
		b, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if werr := conn.WriteJSON(resultMsg{Index: sum.Total, Error: err.Error()}); werr != nil {
				return werr
			}
			break
		}
		res := h.solveOne(ctx, b)
		res.Index = sum.Total
		sum.Total++
		if res.Solved {
			sum.Solved++
		}
		if res.Verified {
			sum.Verified++
		}
		if err := conn.WriteJSON(res); err != nil {
			return err
		}
	}
	return conn.WriteJSON(sum)
}

func (h *Handler) solveOne(ctx context.Context, b *domain.Board) resultMsg {
	out, st, err := h.UC.Solve(ctx, b)
	if err != nil {
		return resultMsg{DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes, Error: err.Error()}
	}
	res := resultMsg{
		Solved:     true,
		Board:      out.Values,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	}
	if h.UC.CanVerify() {
		ok, _, err := h.UC.Verify(ctx, out)
		if err != nil {
			res.Error = err.Error()
		}
		res.Verified = ok
	}
	return res
}
