package api

import (
	"net/http"

	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckInHandler serves progress photo and video check-ins. Media moves
// directly between the browser and S3 through presigned URLs.
type CheckInHandler struct {
	checkInService service.CheckInService
}

func NewCheckInHandler(checkInService service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// RequestUploadURL godoc
// @Summary Get a presigned upload URL for a check-in
// @Description The client PUTs the file to uploadUrl, then confirms with objectKey.
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param enrollmentId path string true "Enrollment ID"
// @Param upload body UploadURLRequest true "File name and content type (image/* or video/*)"
// @Success 200 {object} service.UploadURLResponse
// @Failure 400 {object} gin.H "Unsupported content type"
// @Failure 404 {object} gin.H "Enrollment not found"
// @Router /client/enrollments/{enrollmentId}/checkins/upload-url [post]
func (h *CheckInHandler) RequestUploadURL(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}
	var req UploadURLRequest
	if !bindJSON(c, &req) {
		return
	}

	upload, err := h.checkInService.RequestUploadURL(c.Request.Context(), principal, enrollmentID, req.FileName, req.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

// ConfirmUpload records the metadata of an object the client has uploaded.
func (h *CheckInHandler) ConfirmUpload(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}
	var req ConfirmUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	checkIn, err := h.checkInService.ConfirmUpload(c.Request.Context(), principal, enrollmentID, service.ConfirmUploadInput{
		ObjectKey: req.ObjectKey,
		FileName:  req.FileName,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkIn)
}

func (h *CheckInHandler) ListForClient(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}

	checkIns, err := h.checkInService.ListForClient(c.Request.Context(), principal, enrollmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCheckIns(c, checkIns)
}

func (h *CheckInHandler) ListForCoach(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	enrollmentID, ok := objectIDParam(c, "enrollmentId")
	if !ok {
		return
	}

	checkIns, err := h.checkInService.ListForCoach(c.Request.Context(), principal, enrollmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCheckIns(c, checkIns)
}

func respondCheckIns(c *gin.Context, checkIns []service.CheckInView) {
	if checkIns == nil {
		checkIns = []service.CheckInView{}
	}
	c.JSON(http.StatusOK, checkIns)
}
