package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/AliJone/Gaza/internal/models"
)

// AdminUserRepository handles data access for moderator accounts.
type AdminUserRepository struct {
	db *sqlx.DB
}

// NewAdminUserRepository creates a new AdminUserRepository.
func NewAdminUserRepository(db *sqlx.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetByEmail returns the moderator account with the given email.
func (r *AdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Get(&user, `
		SELECT id, email, password_hash, name, is_active, last_login_at, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create stores a new moderator account.
func (r *AdminUserRepository) Create(user *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (email, password_hash, name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, user.Email, user.PasswordHash, user.Name, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// TouchLastLogin records a successful login.
func (r *AdminUserRepository) TouchLastLogin(id int) error {
	_, err := r.db.Exec(`UPDATE admin_users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}
