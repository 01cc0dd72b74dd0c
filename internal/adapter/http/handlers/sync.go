package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"focusos/internal/adapter/http/dto"
	"focusos/internal/adapter/http/middleware"
	"focusos/internal/core/ports"
	"focusos/pkg/apierrors"
)

type SyncHandler struct {
	syncService ports.SyncService
}

func NewSyncHandler(syncService ports.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncHabitsToTasks runs the daily materialization pass. The client
// calls it on every page load; only the first call of a day creates
// anything.
func (h *SyncHandler) SyncHabitsToTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SyncHabitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUserEmailRequired, lang),
		)
		return
	}

	count, err := h.syncService.MaterializeToday(c.Request.Context(), req.UserEmail)
	if err != nil {
		zap.L().Error("failed to sync habits to tasks", zap.String("owner", req.UserEmail), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSyncHabits, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SyncHabitsResponse{
		Message: fmt.Sprintf("Synced %d habits", count),
		Count:   count,
	})
}
