package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/api/middleware"
	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/logger"
	"github.com/salescraft/outreach-backend/internal/pkg/response"
)

type Handler struct {
	usecase UserUsecase
}

func NewHandler(usecase UserUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// List handles GET /users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListUsers")

	users, err := h.usecase.List(ctx)
	if err != nil {
		ctxzap.Error(ctx, "list users failed", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, map[string]any{"users": toUserDTOs(users)})
}

// UpdateRole handles PATCH /users/{user_id}
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UpdateUserRole")

	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	targetID := chi.URLParam(r, "user_id")

	var req struct {
		Role entity.UserRole `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.usecase.UpdateRole(ctx, actor.ID, targetID, req.Role)
	if err != nil {
		ctxzap.Error(ctx, "update role failed",
			zap.String("target_id", targetID),
			zap.Error(err),
		)
		response.DomainError(w, err)
		return
	}

	dto := toUserDTO(updated)
	response.Success(w, dto)
}

// Delete handles DELETE /users/{user_id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DeleteUser")

	actor, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	targetID := chi.URLParam(r, "user_id")

	if err := h.usecase.Delete(ctx, actor.ID, targetID); err != nil {
		ctxzap.Error(ctx, "delete user failed",
			zap.String("target_id", targetID),
			zap.Error(err),
		)
		response.DomainError(w, err)
		return
	}

	response.NoContent(w)
}
