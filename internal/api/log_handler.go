package api

import (
	"net/http"

	"coachmarket/internal/domain"
	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler records and edits workout and meal logs of the calling client.
type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// LogWorkout godoc
// @Summary Log a completed routine
// @Description Stores the session and marks the routine completed in the enrollment progress.
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollmentId path string true "Enrollment ID"
// @Param workout body WorkoutLogRequest true "Workout"
// @Success 201 {object} domain.WorkoutLog
// @Failure 400 {object} gin.H "Invalid sets"
// @Failure 404 {object} gin.H "Enrollment or routine not found"
// @Router /client/enrollments/{enrollmentId}/workouts [post]
func (h *LogHandler) LogWorkout(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}
	var req WorkoutLogRequest
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.logService.LogWorkout(c.Request.Context(), principal, enrollmentID, service.WorkoutInput{
		RoutineID: req.RoutineID,
		Entries:   mapEntries(req.ExerciseLogs),
		Notes:     req.Notes,
		Date:      req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (h *LogHandler) ListWorkouts(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}

	workouts, err := h.logService.ListWorkoutHistory(c.Request.Context(), principal, enrollmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if workouts == nil {
		workouts = []domain.WorkoutLog{}
	}
	c.JSON(http.StatusOK, workouts)
}

// UpdateWorkout replaces the exercise entries and notes of a log. The routine
// and date are fixed.
func (h *LogHandler) UpdateWorkout(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "logId")
	if !ok {
		return
	}
	var req WorkoutLogRequest
	if !bindJSON(c, &req) {
		return
	}

	workout, err := h.logService.UpdateWorkoutLog(c.Request.Context(), principal, logID, service.WorkoutUpdate{
		Entries: mapEntries(req.ExerciseLogs),
		Notes:   req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *LogHandler) DeleteWorkout(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "logId")
	if !ok {
		return
	}

	if err := h.logService.DeleteWorkoutLog(c.Request.Context(), principal, logID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LogHandler) LogMeal(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}
	var req MealLogRequest
	if !bindJSON(c, &req) {
		return
	}

	meal, err := h.logService.LogMeal(c.Request.Context(), principal, enrollmentID, req.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *LogHandler) ListMeals(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}

	meals, err := h.logService.ListMealHistory(c.Request.Context(), principal, enrollmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if meals == nil {
		meals = []domain.MealLog{}
	}
	c.JSON(http.StatusOK, meals)
}

func (h *LogHandler) UpdateMeal(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "logId")
	if !ok {
		return
	}
	var req MealLogRequest
	if !bindJSON(c, &req) {
		return
	}

	meal, err := h.logService.UpdateMealLog(c.Request.Context(), principal, logID, req.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *LogHandler) DeleteMeal(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "logId")
	if !ok {
		return
	}

	if err := h.logService.DeleteMealLog(c.Request.Context(), principal, logID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
