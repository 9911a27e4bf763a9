package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/wordseg/lexicon"
	"github.com/teatak/wordseg/report"
	"github.com/teatak/wordseg/segmenter"
)

func newTestServer(t *testing.T, words ...string) (*Server, *report.Collector) {
	t.Helper()
	lex := lexicon.New()
	lex.AddWords(words...)
	c := report.NewCollector()
	srv, err := New(lex, segmenter.Forward, segmenter.DefaultOptions(), c)
	require.NoError(t, err)
	return srv, c
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_InvalidArguments(t *testing.T) {
	_, err := New(nil, segmenter.Forward, segmenter.DefaultOptions(), nil)
	assert.Error(t, err)
	_, err = New(lexicon.New(), segmenter.Method(9), segmenter.DefaultOptions(), nil)
	assert.Error(t, err)
	_, err = New(lexicon.New(), segmenter.Forward, segmenter.Options{}, nil)
	assert.Error(t, err)
}

func TestHandleSegment(t *testing.T) {
	srv, c := newTestServer(t, "hello", "world")
	h := srv.Handler()

	w := do(t, h, http.MethodPost, "/segment", `{"text":"HelloWorld"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp SegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"hello", "world"}, resp.Tokens)
	assert.Equal(t, "forward", resp.Method)
	assert.Equal(t, "forward", resp.Direction)

	w = do(t, h, http.MethodPost, "/segment", `{"text":"worldhello","method":"bidirectional"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bidirectional", resp.Method)
	assert.Equal(t, []string{"world", "hello"}, resp.Tokens)

	assert.Equal(t, 2, c.Totals().Analyses)
}

func TestHandleSegment_Errors(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/segment", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/segment", "{").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/segment", `{"text":"a","method":"sideways"}`).Code)
}

func TestHandleSegment_BodyTooLarge(t *testing.T) {
	srv, c := newTestServer(t, "a")
	h := srv.Handler()

	body := `{"text":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/segment", body).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/feedback", `{"example":"`+strings.Repeat("a ", maxBodyBytes)+`"}`).Code)
	assert.Zero(t, c.Totals().Analyses)
}

func TestHandleFeedback(t *testing.T) {
	srv, _ := newTestServer(t, "newyork", "new", "york")
	h := srv.Handler()

	w := do(t, h, http.MethodPost, "/segment", `{"text":"newyork"}`)
	var seg SegmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seg))
	assert.Equal(t, []string{"newyork"}, seg.Tokens)

	w = do(t, h, http.MethodPost, "/feedback", `{"example":"new york"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var fb FeedbackResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fb))
	assert.Equal(t, []string{"newyork"}, fb.Removed)
	assert.Equal(t, 2, fb.Words)

	w = do(t, h, http.MethodPost, "/segment", `{"text":"newyork"}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seg))
	assert.Equal(t, []string{"new", "york"}, seg.Tokens)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/feedback", `{"example":"  "}`).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodGet, "/feedback", "").Code)
}

func TestHandleStats(t *testing.T) {
	srv, _ := newTestServer(t, "ab")
	h := srv.Handler()
	do(t, h, http.MethodPost, "/segment", `{"text":"abab"}`)

	w := do(t, h, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var st StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, 1, st.Analyses)
	assert.Equal(t, 2, st.WordsProcessed)
	assert.Equal(t, map[string]int{"forward": 1}, st.MethodsUsed)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
}
