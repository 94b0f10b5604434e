package httpx_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestNewRequestContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	req.RemoteAddr = "198.51.100.4:5555"
	req.AddCookie(&http.Cookie{Name: "token", Value: "first"})
	req.AddCookie(&http.Cookie{Name: "token", Value: "second"})

	rc, err := httpx.NewRequestContext(httptest.NewRecorder(), req, httpx.ClientIPKeyExtractor(false))
	require.NoError(t, err)
	require.Equal(t, "198.51.100.4", rc.ClientKey)
	require.Equal(t, "first", rc.Cookies["token"])

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	require.NoError(t, rc.DecodeBody(&body))
	require.Equal(t, "a@b.c", body.Email)
	require.Equal(t, "pw", body.Password)
}

func TestRequestContextDecodeBody(t *testing.T) {
	var v map[string]string
	require.NoError(t, httpx.RequestContext{}.DecodeBody(&v))
	require.Nil(t, v)

	require.Error(t, httpx.RequestContext{Body: []byte("{not json")}.DecodeBody(&v))
}

func TestNewRequestContextBodyTooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("a"), httpx.MaxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(big))

	_, err := httpx.NewRequestContext(httptest.NewRecorder(), req, nil)
	require.ErrorIs(t, err, httpx.ErrBodyTooLarge)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestSetRetryAfterRoundsUp(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.SetRetryAfter(rec, 1500*time.Millisecond)
	require.Equal(t, "2", rec.Header().Get("Retry-After"))

	rec = httptest.NewRecorder()
	httpx.SetRetryAfter(rec, 0)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestNotFoundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.NotFoundHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Route not found"}`, rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
