package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.statusCode())
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		writes     [][]byte
		wantStatus int
		wantSize   int
		wantBody   string
	}{
		{name: "implicit 200", writes: [][]byte{[]byte("ok")}, wantStatus: http.StatusOK, wantSize: 2, wantBody: "ok"},
		{name: "explicit status kept", header: http.StatusNotFound, writes: [][]byte{[]byte("nope")}, wantStatus: http.StatusNotFound, wantSize: 4, wantBody: "nope"},
		{name: "sizes accumulate", writes: [][]byte{[]byte("ab"), []byte("cde")}, wantStatus: http.StatusOK, wantSize: 5, wantBody: "abcde"},
		{name: "empty body", writes: [][]byte{{}}, wantStatus: http.StatusOK, wantSize: 0},
		{name: "nothing written", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, b := range tt.writes {
				_, err := w.Write(b)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.statusCode())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Trace-ID", "abc")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "abc", rr.Header().Get("X-Trace-ID"))
}
