package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), PrometheusMiddleware("test"))
	r.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFrom(c.Request.Context()))
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))

	id := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("response header %q is not a uuid: %v", id, err)
	}
	if w.Body.String() != id {
		t.Errorf("context id %q != header id %q", w.Body.String(), id)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	r := newTestRouter()
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("header = %q, want %q", got, incoming)
	}
}

func TestRequestIDRejectsGarbage(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got == "<script>" {
		t.Error("non-uuid request id was echoed back")
	}
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("RequestIDFrom(background) = %q, want empty", got)
	}
}
