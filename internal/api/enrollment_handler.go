package api

import (
	"net/http"

	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Enroll godoc
// @Summary Enroll in a program
// @Description Starts an enrollment with empty progress. At most one active
// @Description enrollment per program and client.
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollment body EnrollRequest true "Program to enroll in"
// @Success 201 {object} EnrollmentResponse
// @Failure 400 {object} gin.H "Already enrolled"
// @Failure 404 {object} gin.H "Program not found"
// @Router /client/enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req EnrollRequest
	if !bindJSON(c, &req) {
		return
	}
	programID, err := primitive.ObjectIDFromHex(req.ProgramID)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "program not found")
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), principal, programID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapEnrollmentToResponse(enrollment))
}

func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEnrollmentsToResponse(enrollments))
}

func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}

	enrollment, err := h.enrollmentService.Get(c.Request.Context(), principal, enrollmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEnrollmentToResponse(enrollment))
}

// Deactivate ends an enrollment. Its history is kept and the client may
// enroll in the same program again.
func (h *EnrollmentHandler) Deactivate(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}

	if err := h.enrollmentService.Deactivate(c.Request.Context(), principal, enrollmentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Customize godoc
// @Summary Override program content for one enrollment
// @Description Field-granular overrides. Structural overrides bump the enrollment version.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollmentId path string true "Enrollment ID"
// @Param customizations body CustomizationRequest true "Overrides"
// @Success 200 {object} EnrollmentResponse
// @Failure 400 {object} gin.H "Invalid payload"
// @Failure 404 {object} gin.H "Enrollment not found or program not owned"
// @Router /coach/enrollments/{enrollmentId}/customizations [put]
func (h *EnrollmentHandler) Customize(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}
	var req CustomizationRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.enrollmentService.Customize(c.Request.Context(), principal, enrollmentID, req.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEnrollmentToResponse(enrollment))
}
