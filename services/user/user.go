package user

import (
	"context"
	"errors"
	"time"

	userRepo "complyhub/database/repository/user"
	"complyhub/models"
	"complyhub/utils"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// AuthResponse carries the signed token and basic profile returned by
// register and login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// UserService handles accounts and single-session auth.
type UserService interface {
	Register(ctx context.Context, name, email, password, role string) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, actor *models.User, name string) (*models.User, error)
	RevokeToken(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

// Register creates an account and signs the caller in.
func (svc *DefaultUserService) Register(ctx context.Context, name, email, password, role string) (*AuthResponse, error) {
	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if role == "" {
		role = models.RoleOwner
	}
	if role != models.RoleOwner && role != models.RoleContractor {
		return nil, errors.New("role must be owner or contractor")
	}
	if existing, _ := svc.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, errors.New("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := svc.Repo.Create(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	return svc.issueToken(ctx, id, name, email, role)
}

// Authenticate verifies credentials and issues a fresh token,
// replacing any previous session.
func (svc *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}
	return svc.issueToken(ctx, user.ID, user.Name, user.Email, user.Role)
}

func (svc *DefaultUserService) issueToken(ctx context.Context, id, name, email, role string) (*AuthResponse, error) {
	token, err := utils.GenerateToken(id, email, tokenTTL)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)
	if err := svc.Repo.UpdateTokenHash(ctx, id, tokenHash); err != nil {
		return nil, err
	}
	if svc.AuthCache != nil {
		svc.AuthCache.Set(ctx, utils.AuthCachePrefix+id, tokenHash, utils.AuthCacheTTL)
	}
	return &AuthResponse{ID: id, Name: name, Email: email, Role: role, Token: token}, nil
}

// GetByID fetches a user profile.
func (svc *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return svc.Repo.GetByID(ctx, id)
}

// Update edits the caller's profile.
func (svc *DefaultUserService) Update(ctx context.Context, actor *models.User, name string) (*models.User, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	actor.Name = name
	if err := svc.Repo.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// RevokeToken signs the user out everywhere.
func (svc *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	if err := svc.Repo.UpdateTokenHash(ctx, userID, ""); err != nil {
		return err
	}
	if svc.AuthCache != nil {
		svc.AuthCache.Del(ctx, utils.AuthCachePrefix+userID)
	}
	return nil
}
