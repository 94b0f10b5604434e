package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies read into a RequestContext.
const MaxBodyBytes = 1 << 20

var ErrBodyTooLarge = errors.New("httpx: request body too large")

// RequestContext is the transport-neutral view of a request that the
// authentication core works with.
type RequestContext struct {
	Cookies   map[string]string
	Body      []byte
	ClientKey string
}

// CookieMap flattens the request cookies. The first cookie wins on duplicates.
func CookieMap(r *http.Request) map[string]string {
	cookies := r.Cookies()
	m := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if _, dup := m[c.Name]; !dup {
			m[c.Name] = c.Value
		}
	}
	return m
}

// NewRequestContext reads the body (bounded by MaxBodyBytes) and derives the
// client key with key.
func NewRequestContext(w http.ResponseWriter, r *http.Request, key KeyExtractor) (RequestContext, error) {
	rc := RequestContext{Cookies: CookieMap(r)}
	if key != nil {
		rc.ClientKey = key(r)
	}

	if r.Body == nil {
		return rc, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return rc, ErrBodyTooLarge
		}
		return rc, fmt.Errorf("httpx: read body: %w", err)
	}
	rc.Body = body
	return rc, nil
}

// DecodeBody unmarshals the JSON body into v. An empty body leaves v untouched.
func (rc RequestContext) DecodeBody(v any) error {
	if len(rc.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(rc.Body, v); err != nil {
		return fmt.Errorf("httpx: decode body: %w", err)
	}
	return nil
}
