package api

import (
	"net/http"

	"coachmarket/internal/service"

	"github.com/gin-gonic/gin"
)

// BetaSignupHandler captures leads from the public landing page.
type BetaSignupHandler struct {
	signupService service.BetaSignupService
}

func NewBetaSignupHandler(signupService service.BetaSignupService) *BetaSignupHandler {
	return &BetaSignupHandler{signupService: signupService}
}

// Signup godoc
// @Summary Join the beta list
// @Tags Public
// @Accept json
// @Produce json
// @Param signup body BetaSignupRequest true "Name and email"
// @Success 201 {object} BetaSignupResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Email already signed up"
// @Failure 429 {object} gin.H "Too many requests"
// @Router /beta-signups [post]
func (h *BetaSignupHandler) Signup(c *gin.Context) {
	var req BetaSignupRequest
	if !bindJSON(c, &req) {
		return
	}

	signup, err := h.signupService.Signup(c.Request.Context(), service.BetaSignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, BetaSignupResponse{
		ID:        signup.ID,
		Email:     signup.Email,
		CreatedAt: signup.CreatedAt,
	})
}
