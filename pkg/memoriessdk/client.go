package memoriessdk

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient talks to a memorylane server. It is safe for concurrent use, but
// all callers share one session.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a fresh cookie jar.
func NewSDKClient(baseURL string) (*SDKClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}
