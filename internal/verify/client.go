package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"svw.info/sudokusolve/internal/domain"
)

// payload is the verifier's expected wire format: the board as nine
// row-major arrays of nine ints, 0 for an unfilled cell.
type payload struct {
	Content [9][9]uint8 `json:"content"`
}

// ErrGarbledResponse means the verifier returned a body that is not
// valid UTF-8.
var ErrGarbledResponse = errors.New("garbled verifier response")

// Client submits solved boards to a remote verification endpoint. The
// endpoint answers a body of exactly "1" for a correct solution.
type Client struct {
	url    string
	hc     *http.Client
	logger *slog.Logger
}

// NewClient builds a verification client for the given endpoint URL.
// maxConns bounds concurrent connections to the verifier host.
func NewClient(url string, maxConns int, logger *slog.Logger) *Client {
	if maxConns <= 0 {
		maxConns = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url: url,
		hc: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxConnsPerHost:     maxConns,
				MaxIdleConnsPerHost: maxConns,
			},
		},
		logger: logger,
	}
}

// Verify POSTs b to the endpoint and reports whether the server accepted
// it. A reachable server with a non-"1" answer is a clean "not verified",
// not an error.
func (c *Client) Verify(ctx context.Context, b *domain.Board) (bool, error) {
	body, err := json.Marshal(payload{Content: b.Values})
	if err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return false, err
	}
	if !utf8.Valid(data) {
		return false, ErrGarbledResponse
	}
	return string(data) == "1", nil
}
