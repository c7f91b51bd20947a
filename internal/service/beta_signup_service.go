package service

import (
	"context"
	"strings"

	"coachmarket/internal/domain"
	"coachmarket/internal/repository"

	log "github.com/sirupsen/logrus"
)

type BetaSignupInput struct {
	FirstName string
	LastName  string
	Email     string
}

type BetaSignupService interface {
	Signup(ctx context.Context, in BetaSignupInput) (*domain.BetaSignup, error)
}

type betaSignupService struct {
	signups repository.BetaSignupRepository
}

func NewBetaSignupService(signups repository.BetaSignupRepository) BetaSignupService {
	return &betaSignupService{signups: signups}
}

// Signup stores a lead. Emails are compared case-insensitively; a repeat is a conflict.
func (s *betaSignupService) Signup(ctx context.Context, in BetaSignupInput) (*domain.BetaSignup, error) {
	signup := &domain.BetaSignup{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
	}

	verr := &domain.ValidationError{}
	if signup.FirstName == "" {
		verr.Add("firstName", "is required")
	}
	if signup.LastName == "" {
		verr.Add("lastName", "is required")
	}
	if !isEmail(signup.Email) {
		verr.Add("email", "must be a valid email address")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.signups.Create(ctx, signup); err != nil {
		return nil, translate("beta signup", err, "signup for this email")
	}
	log.WithField("signupId", signup.ID.Hex()).Info("beta signup recorded")
	return signup, nil
}
