package store

import (
	"bookkeeping_system/internal/domain" // Importing domain models
	"context"                            // Request scoped operations
	"errors"                             // Error matching
	"fmt"                                // Error wrapping

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// DefaultAccount is an account seeded at startup when its username is absent
type DefaultAccount struct {
	Username string
	Password string
	Name     string
	Role     string
}

// DefaultAccounts are the accounts every fresh installation starts with
var DefaultAccounts = []DefaultAccount{
	{Username: "admin", Password: "786786", Name: "Administrator", Role: domain.RoleAdmin},
	{Username: "staff1", Password: "1234", Name: "Staff Member", Role: domain.RoleStaff},
}

// UserStore reads and writes the users table
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a user store over db
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// GetByID fetches a user by primary key
func (s *UserStore) GetByID(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	return user, translate("get user", err)
}

// GetByUsername fetches a user by exact username
func (s *UserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, translate("get user by username", err)
}

// Create hashes the plaintext password and inserts the user.
// A taken username yields domain.ErrConflict.
func (s *UserStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)
	if user.Role == "" {
		user.Role = domain.RoleStaff // Default role
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return domain.User{}, translate("create user", err)
	}
	return user, nil
}

// EnsureDefaults creates each account whose username does not exist yet
func (s *UserStore) EnsureDefaults(ctx context.Context, accounts []DefaultAccount) error {
	for _, acc := range accounts {
		_, err := s.GetByUsername(ctx, acc.Username)
		if err == nil {
			continue // Already present
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		user, err := s.Create(ctx, domain.User{Username: acc.Username, Password: acc.Password, Name: acc.Name, Role: acc.Role})
		if err != nil {
			return fmt.Errorf("seed %s: %w", acc.Username, err)
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // Seeded username
			"role":     user.Role,     // Seeded role
		}).Info("Default account created")
	}
	return nil
}

// List returns one page of users ordered by id, plus the total count
func (s *UserStore) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, translate("count users", err)
	}
	users := []domain.User{}
	if err := s.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, translate("list users", err)
	}
	return users, total, nil
}
