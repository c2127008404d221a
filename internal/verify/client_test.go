package verify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"svw.info/sudokusolve/internal/domain"
)

func testBoard() *domain.Board {
	b := &domain.Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	return b
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerifyAcceptedResponse(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		io.WriteString(w, "1")
	}))
	defer srv.Close()

	b := testBoard()
	c := NewClient(srv.URL, 1, discardLogger())
	ok, err := c.Verify(context.Background(), b)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatal("response \"1\" not reported as verified")
	}
	if got.Content != b.Values {
		t.Fatalf("server received %v, want %v", got.Content, b.Values)
	}
}

func TestVerifyRejectedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "0")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1, discardLogger())
	ok, err := c.Verify(context.Background(), testBoard())
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("non-\"1\" response reported as verified")
	}
}

func TestVerifyGarbledResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1, discardLogger())
	_, err := c.Verify(context.Background(), testBoard())
	if !errors.Is(err, ErrGarbledResponse) {
		t.Fatalf("err = %v, want ErrGarbledResponse", err)
	}
}

func TestVerifyAllCountsAndThrottles(t *testing.T) {
	var inFlight, peak atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		var in payload
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			io.WriteString(w, "garbage")
			return
		}
		// accept boards whose first cell is odd
		if in.Content[0][0]%2 == 1 {
			io.WriteString(w, "1")
			return
		}
		io.WriteString(w, "0")
	}))
	defer srv.Close()

	boards := make([]*domain.Board, 10)
	for i := range boards {
		b := testBoard()
		b.Values[0][0] = uint8(i%9 + 1)
		boards[i] = b
	}
	wantVerified := 0
	for _, b := range boards {
		if b.Values[0][0]%2 == 1 {
			wantVerified++
		}
	}

	c := NewClient(srv.URL, 3, discardLogger())
	var results atomic.Int64
	report := c.VerifyAll(context.Background(), boards, 3, func(i int, ok bool, err error) {
		results.Add(1)
	})
	if report.Total != len(boards) {
		t.Fatalf("Total = %d, want %d", report.Total, len(boards))
	}
	if report.Verified != wantVerified {
		t.Fatalf("Verified = %d, want %d", report.Verified, wantVerified)
	}
	if int(results.Load()) != len(boards) {
		t.Fatalf("OnResult ran %d times, want %d", results.Load(), len(boards))
	}
	if peak.Load() > 3 {
		t.Fatalf("saw %d concurrent requests, limit is 3", peak.Load())
	}
}
