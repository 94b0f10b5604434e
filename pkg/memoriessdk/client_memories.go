package memoriessdk

import (
	"context"
	"net/http"
)

// CreateMemory stores a memory. When the client holds a session, the server
// records the session subject as its owner.
func (c *SDKClient) CreateMemory(ctx context.Context, req MemoryRequest) (*Memory, error) {
	var out MemoryResponse
	if err := c.call(ctx, http.MethodPost, "/api/e", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListMemories returns every memory, newest first.
func (c *SDKClient) ListMemories(ctx context.Context) ([]Memory, error) {
	return c.listMemories(ctx, "/api/e")
}

// ListMyMemories returns the memories owned by the current session.
func (c *SDKClient) ListMyMemories(ctx context.Context) ([]Memory, error) {
	return c.listMemories(ctx, "/api/memories")
}

func (c *SDKClient) listMemories(ctx context.Context, path string) ([]Memory, error) {
	var out MemoryListResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data, nil
}
