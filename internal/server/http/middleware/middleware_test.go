package middleware

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/vlasewsky/orderdesk/internal/pkg/auth"
	testhelpers "github.com/vlasewsky/orderdesk/internal/test"
)

func newAuthRouter(parser TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(parser), func(c *gin.Context) {
		email := c.GetString(UserEmailContextKey)
		c.String(http.StatusOK, email)
	})
	return r
}

func TestAuthRequiredNoToken(t *testing.T) {
	r := newAuthRouter(testhelpers.TokenParserStub{Subject: "user@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	r := newAuthRouter(testhelpers.TokenParserStub{Subject: "user@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "user@example.com" {
		t.Fatalf("expected email in context, got %q", w.Body.String())
	}
}

func TestAuthRequiredCookie(t *testing.T) {
	var seen string
	parser := testhelpers.TokenParserStub{ParseFn: func(token string) (string, error) {
		seen = token
		return "cookie@example.com", nil
	}}
	r := newAuthRouter(parser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "orderdesk_token", Value: "cookievalue"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if seen != "cookievalue" {
		t.Fatalf("expected cookie token to be parsed, got %q", seen)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	r := newAuthRouter(testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer broken")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRequiredParserFailure(t *testing.T) {
	r := newAuthRouter(testhelpers.TokenParserStub{Err: errors.New("boom")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer anything")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestDecompressRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DecompressRequest())
	r.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte("hello orderdesk")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "hello orderdesk" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestDecompressRequestPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DecompressRequest())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("plain"))
	r.ServeHTTP(w, req)

	if w.Body.String() != "plain" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestDecompressRequestBadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DecompressRequest())
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	out := buf.String()
	if !strings.Contains(out, `"path":"/ping"`) {
		t.Fatalf("expected path in log output, got %q", out)
	}
	if !strings.Contains(out, `"status":200`) {
		t.Fatalf("expected status in log output, got %q", out)
	}
}
