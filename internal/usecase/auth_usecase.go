package usecase

import (
	"fmt"
	"strings"

	"github.com/h9rms/wanderlust-grid-bloom/internal/entity"
	"github.com/h9rms/wanderlust-grid-bloom/internal/repo/persistent"
	"github.com/h9rms/wanderlust-grid-bloom/internal/session"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/jwt"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(email, password, fullName string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	Me(userID string) (*entity.User, *entity.Profile, error)
	SignOut(userID string)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	profileRepo persistent.ProfileRepository
	jwtService  *jwt.Service
	sessions    *session.Broker
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	profileRepo persistent.ProfileRepository,
	jwtService *jwt.Service,
	sessions *session.Broker,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		sessions:    sessions,
		logger:      logger,
	}
}

func (uc *authUseCase) Register(email, password, fullName string) (*entity.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, "", fmt.Errorf("%w: email must not be empty", entity.ErrValidation)
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("%w: password must be at least 6 characters", entity.ErrValidation)
	}

	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", fmt.Errorf("%w: this email address is already registered", entity.ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("%w: failed to process registration", entity.ErrStore)
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     entity.RoleMember,
		IsActive: true,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("%w: %s", entity.ErrStore, err)
	}

	// Every identity gets a profile row at registration, so the read-side
	// author join resolves to Known for fresh accounts.
	profile := &entity.Profile{
		UserID:   user.ID,
		FullName: strings.TrimSpace(fullName),
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		uc.logger.Error("Failed to create profile for user %s: %v", user.ID, err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("%w: failed to generate token", entity.ErrStore)
	}

	uc.sessions.Publish(session.Event{Type: session.SignedIn, UserID: user.ID})

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrAuthRequired)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", entity.ErrAuthRequired)
	}

	if !user.IsActive {
		return nil, "", fmt.Errorf("%w: account is deactivated", entity.ErrForbidden)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("%w: failed to generate token", entity.ErrStore)
	}

	uc.sessions.Publish(session.Event{Type: session.SignedIn, UserID: user.ID})

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Me(userID string) (*entity.User, *entity.Profile, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}
	user.Password = ""

	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		// Accounts without a profile row are still valid users.
		return user, nil, nil
	}

	return user, profile, nil
}

// SignOut only announces the transition; tokens are stateless and expire
// on their own.
func (uc *authUseCase) SignOut(userID string) {
	uc.sessions.Publish(session.Event{Type: session.SignedOut, UserID: userID})
}
