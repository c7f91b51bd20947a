package api

import (
	"net/http"

	"coachmarket/internal/domain"
	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgramHandler serves the marketplace and the coach's program authoring.
type ProgramHandler struct {
	programService    service.ProgramService
	enrollmentService service.EnrollmentService
}

func NewProgramHandler(programService service.ProgramService, enrollmentService service.EnrollmentService) *ProgramHandler {
	return &ProgramHandler{
		programService:    programService,
		enrollmentService: enrollmentService,
	}
}

// ListPrograms godoc
// @Summary List marketplace programs
// @Description Public, active programs, optionally narrowed by type.
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Param type query string false "lifting, diet or posing"
// @Success 200 {array} ProgramResponse
// @Failure 400 {object} gin.H "Unknown program type"
// @Router /programs [get]
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	programs, err := h.programService.List(c.Request.Context(), principal, domain.ProgramType(c.Query("type")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramsToResponse(programs))
}

// GetProgram godoc
// @Summary Get one program
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {object} ProgramResponse
// @Failure 404 {object} gin.H "Program not found or not visible"
// @Router /programs/{programId} [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	programID, ok := objectIDParam(c, "programId")
	if !ok {
		return
	}

	program, err := h.programService.Get(c.Request.Context(), principal, programID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// CreateProgram godoc
// @Summary Create a program
// @Description Creates a program with its type-specific payload. Lifting programs
// @Description take workoutDays, diet programs mealPlans, posing programs posingDetails.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program body CreateProgramRequest true "Program draft"
// @Success 201 {object} ProgramResponse
// @Failure 400 {object} gin.H "Invalid payload"
// @Failure 403 {object} gin.H "Not a coach"
// @Router /coach/programs [post]
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req CreateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	program, err := h.programService.Create(c.Request.Context(), principal, req.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapProgramToResponse(program))
}

// UpdateProgram godoc
// @Summary Update an owned program
// @Description Partial update. workoutDays replaces every routine of a lifting program.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param patch body UpdateProgramRequest true "Fields to change"
// @Success 200 {object} ProgramResponse
// @Failure 400 {object} gin.H "Invalid payload"
// @Failure 404 {object} gin.H "Program not found or not owned"
// @Router /coach/programs/{programId} [put]
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	programID, ok := objectIDParam(c, "programId")
	if !ok {
		return
	}
	var req UpdateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	program, err := h.programService.Update(c.Request.Context(), principal, programID, req.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// DeleteProgram removes an owned program together with its routines,
// enrollments, logs and check-ins.
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	programID, ok := objectIDParam(c, "programId")
	if !ok {
		return
	}

	if err := h.programService.Delete(c.Request.Context(), principal, programID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMyPrograms returns every program of the calling coach, drafts and
// archived ones included.
func (h *ProgramHandler) ListMyPrograms(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	programs, err := h.programService.ListMine(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramsToResponse(programs))
}

// ListProgramEnrollments returns the enrollments of an owned program.
func (h *ProgramHandler) ListProgramEnrollments(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	programID, ok := objectIDParam(c, "programId")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.ListForCoach(c.Request.Context(), principal, programID)
	if err != nil {
		respondError(c, err)
		return
	}
	if enrollments == nil {
		enrollments = []domain.ClientProgram{}
	}
	c.JSON(http.StatusOK, enrollments)
}
