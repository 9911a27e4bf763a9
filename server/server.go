// Package server exposes segmentation over HTTP with JSON bodies.
//
// The server owns a mutable lexicon. Feedback requests teach it new
// segmentations; after each change a fresh snapshot is frozen and swapped in
// under a lock, so in-flight requests keep the snapshot they started with.
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/report"
	"github.com/teatak/wordseg/segmenter"
)

// maxBodyBytes caps the size of a request body.
const maxBodyBytes = 1 << 20

// SegmentRequest is the body of POST /segment. An empty Method uses the
// server default.
type SegmentRequest struct {
	Text   string `json:"text"`
	Method string `json:"method,omitempty"`
}

// SegmentResponse is returned by POST /segment.
type SegmentResponse struct {
	Tokens    []string `json:"tokens"`
	Method    string   `json:"method"`
	Direction string   `json:"direction"`
	Score     float64  `json:"score"`
}

// FeedbackRequest is the body of POST /feedback. Example is text segmented
// by spaces, e.g. "new york".
type FeedbackRequest struct {
	Example string `json:"example"`
}

// FeedbackResponse lists the words dropped because they crossed a boundary
// of the example.
type FeedbackResponse struct {
	Removed []string `json:"removed"`
	Words   int      `json:"words"`
}

// StatsResponse is returned by GET /stats.
type StatsResponse struct {
	Analyses       int            `json:"analyses"`
	WordsProcessed int            `json:"words_processed"`
	MethodsUsed    map[string]int `json:"methods_used"`
}

// Server serves segmentation requests.
type Server struct {
	method    segmenter.Method
	collector *report.Collector

	mu  sync.RWMutex
	seg *segmenter.Segmenter

	lexMu sync.Mutex
	lex   *lexicon.Lexicon
}

// New creates a server that segments with a snapshot of lex. The server
// takes ownership of lex. collector may be nil.
func New(lex *lexicon.Lexicon, method segmenter.Method, opts segmenter.Options, collector *report.Collector) (*Server, error) {
	if lex == nil {
		return nil, errors.Wrap(lexicon.ErrInvalidArgument, "nil lexicon")
	}
	if !method.Valid() {
		return nil, errors.Wrapf(lexicon.ErrInvalidArgument, "unknown segmentation method %d", int(method))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		method:    method,
		collector: collector,
		seg:       &segmenter.Segmenter{Lex: lex.Freeze(), Options: opts},
		lex:       lex,
	}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/segment", s.handleSegment)
	mux.HandleFunc("/feedback", s.handleFeedback)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "listen")
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	klog.Infof("listening on %s", listener.Addr())
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}

func (s *Server) current() *segmenter.Segmenter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seg
}

// Teach applies a segmented example to the lexicon and swaps in a new
// snapshot.
func (s *Server) Teach(example string) FeedbackResponse {
	s.lexMu.Lock()
	defer s.lexMu.Unlock()
	removed := s.lex.Teach(example)
	frozen := s.lex.Freeze()

	s.mu.Lock()
	s.seg = &segmenter.Segmenter{Lex: frozen, Options: s.seg.Options}
	s.mu.Unlock()

	if len(removed) > 0 {
		klog.V(1).Infof("feedback %q removed %v", example, removed)
	}
	if removed == nil {
		removed = []string{}
	}
	return FeedbackResponse{Removed: removed, Words: frozen.Len()}
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req SegmentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method := s.method
	if req.Method != "" {
		m, err := segmenter.ParseMethod(req.Method)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		method = m
	}

	res, err := s.current().Segment(req.Text, method)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, lexicon.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	if s.collector != nil {
		s.collector.Consume(req.Text, res)
	}
	writeJSON(w, http.StatusOK, SegmentResponse{
		Tokens:    res.Tokens,
		Method:    res.Method.String(),
		Direction: res.Direction.String(),
		Score:     res.Score,
	})
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req FeedbackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if lexicon.Normalize(req.Example) == "" {
		writeError(w, http.StatusBadRequest, "example required")
		return
	}
	writeJSON(w, http.StatusOK, s.Teach(req.Example))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	resp := StatsResponse{MethodsUsed: map[string]int{}}
	if s.collector != nil {
		totals := s.collector.Totals()
		resp.Analyses = totals.Analyses
		resp.WordsProcessed = totals.WordsProcessed
		for m, n := range totals.MethodsUsed {
			resp.MethodsUsed[m.String()] = n
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		klog.Errorf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
