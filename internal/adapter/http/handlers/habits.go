package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"focusos/internal/adapter/http/dto"
	"focusos/internal/adapter/http/mapper"
	"focusos/internal/adapter/http/middleware"
	"focusos/internal/adapter/http/validation"
	"focusos/internal/core/domain"
	"focusos/internal/core/ports"
	"focusos/pkg/apierrors"
)

type HabitHandler struct {
	habitService ports.HabitService
}

func NewHabitHandler(habitService ports.HabitService) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

func (h *HabitHandler) ListHabits(c *gin.Context) {
	lang := middleware.GetLang(c)

	owner := c.Query("userEmail")
	if owner == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUserEmailRequired, lang),
		)
		return
	}

	habits, err := h.habitService.List(c.Request.Context(), owner)
	if err != nil {
		zap.L().Error("failed to list habits", zap.String("owner", owner), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListHabits, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToHabitItems(habits))
}

func (h *HabitHandler) CreateHabit(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidHabitPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateHabitInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidHabitPayload, lang),
		)
		return
	}

	habit, err := h.habitService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create habit", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateHabit, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateHabitResponse{
		Message: "Habit and linked task created",
		Habit:   mapper.ToHabitItem(habit),
	})
}

func (h *HabitHandler) SetStreakEntry(c *gin.Context) {
	lang := middleware.GetLang(c)

	habitID := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(habitID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidHabitID, lang),
		)
		return
	}

	var req dto.SetStreakEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidHabitPayload, lang),
		)
		return
	}

	habit, err := h.habitService.SetStreakEntry(c.Request.Context(), habitID, req.Date, *req.Completed)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgHabitNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to set streak entry", zap.String("habit_id", habitID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateHabit, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.SetStreakEntryResponse{Habit: mapper.ToHabitItem(habit)})
}

func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	lang := middleware.GetLang(c)

	habitID := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(habitID); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidHabitID, lang),
		)
		return
	}

	if err := h.habitService.Delete(c.Request.Context(), habitID); err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgHabitNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete habit", zap.String("habit_id", habitID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteHabit, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteHabitResponse{Message: "Habit and linked tasks deleted"})
}
