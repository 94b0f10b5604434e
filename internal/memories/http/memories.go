package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/internal/memories/service"
	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/memoriessdk"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

type MemoriesHandler struct {
	MemoryService *service.MemoryService
}

func toMemoryResponse(m domain.Memory) memoriessdk.Memory {
	return memoriessdk.Memory{
		ID:        m.ID,
		Date:      m.Date,
		Place:     m.Place,
		Title:     m.Title,
		Story:     m.Story,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func toMemoryList(ms []domain.Memory) []memoriessdk.Memory {
	out := make([]memoriessdk.Memory, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMemoryResponse(m))
	}
	return out
}

// HandleCreate stores a memory.
//
//	@Summary		Share a memory
//	@Description	Stores a memory. With a valid session cookie the memory is owned by the session subject;
//	@Description	any owner in the body is ignored.
//	@Tags			Memories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		memoriessdk.MemoryRequest	true	"Memory"
//	@Success		201		{object}	memoriessdk.MemoryResponse	"Memory saved"
//	@Failure		400		{object}	memoriessdk.ErrorResponse	"A field is missing"
//	@Failure		500		{object}	memoriessdk.ErrorResponse	"Failed to save memory"
//	@Router			/api/e [post].
func (h *MemoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	rc, err := httpx.NewRequestContext(w, r, nil)
	if errors.Is(err, httpx.ErrBodyTooLarge) {
		errBodyTooLarge.WriteError(w)
		return
	}
	if err != nil {
		httpx.ErrAPIBadRequest.WriteError(w)
		return
	}

	var req memoriessdk.MemoryRequest
	if err := rc.DecodeBody(&req); err != nil {
		httpx.ErrAPIBadRequest.WriteError(w)
		return
	}

	var owner string
	if id, ok := httpx.IdentityFromContext(ctx); ok {
		owner = id.SubjectID
	}

	saved, err := h.MemoryService.Create(ctx, domain.Memory{
		Date:  req.Date,
		Place: req.Place,
		Title: req.Title,
		Story: req.Story,
	}, owner)
	switch {
	case errors.Is(err, domain.ErrMemoryIncomplete):
		errMemoryIncomplete.WriteError(w)
		return
	case err != nil:
		log.Error("failed to save memory", "err", err)
		errSaveMemory.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, memoriessdk.MemoryResponse{
		Success: true,
		Message: "Memory saved successfully",
		Data:    toMemoryResponse(saved),
	})
}

// HandleList returns every memory.
//
//	@Summary	List memories
//	@Tags		Memories
//	@Produce	json
//	@Success	200	{object}	memoriessdk.MemoryListResponse	"Newest first"
//	@Failure	500	{object}	memoriessdk.ErrorResponse		"Failed to fetch memories"
//	@Router		/api/e [get].
func (h *MemoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ms, err := h.MemoryService.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list memories", "err", err)
		errFetchMemories.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, memoriessdk.MemoryListResponse{Success: true, Data: toMemoryList(ms)})
}

// HandleListMine returns the memories owned by the caller.
//
//	@Summary	List my memories
//	@Tags		Memories
//	@Security	CookieAuth
//	@Produce	json
//	@Success	200	{object}	memoriessdk.MemoryListResponse	"Newest first"
//	@Failure	401	{object}	memoriessdk.ErrorResponse		"Not authenticated"
//	@Failure	500	{object}	memoriessdk.ErrorResponse		"Failed to fetch memories"
//	@Router		/api/memories [get].
func (h *MemoriesHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.ErrAPIUnauthenticated.WriteError(w)
		return
	}

	ms, err := h.MemoryService.ListForOwner(ctx, id.SubjectID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list memories", "err", err)
		errFetchMemories.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, memoriessdk.MemoryListResponse{Success: true, Data: toMemoryList(ms)})
}
