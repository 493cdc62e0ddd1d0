package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/AliJone/Gaza/internal/models"
	"github.com/AliJone/Gaza/internal/repository"
	"github.com/AliJone/Gaza/internal/utils"
)

// AdminAuthService authenticates moderators and issues JWTs for the
// review panel.
type AdminAuthService struct {
	adminRepo *repository.AdminUserRepository
	jwtSecret []byte
}

// NewAdminAuthService constructs an AdminAuthService signing tokens
// with the given secret.
func NewAdminAuthService(adminRepo *repository.AdminUserRepository, jwtSecret string) *AdminAuthService {
	return &AdminAuthService{adminRepo: adminRepo, jwtSecret: []byte(jwtSecret)}
}

// Login verifies the credentials and returns a signed token.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	user, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		log.Warn().Str("email", email).Msg("Login attempt for unknown email")
		return "", errors.New("invalid credentials")
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("Login attempt on inactive account")
		return "", errors.New("account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", errors.New("invalid credentials")
	}

	if err := s.adminRepo.TouchLastLogin(user.ID); err != nil {
		log.Warn().Err(err).Int("user_id", user.ID).Msg("Failed to record login time")
	}

	log.Info().Str("email", email).Msg("Moderator login successful")
	return utils.GenerateJWT(s.jwtSecret, user.ID, user.Email)
}

// CreateAdmin provisions a new moderator account.
func (s *AdminAuthService) CreateAdmin(email, password, name string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		IsActive:     true,
	}

	return s.adminRepo.Create(user)
}
