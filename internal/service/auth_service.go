package service

import (
	"context"
	"errors"
	"time"

	"github.com/boe-dawah/boe-backend/internal/config"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotApproved    = errors.New("account pending approval")
)

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Markaz   string
	Division string
	District string
}

type LoginInput struct {
	Email    string
	Password string
	DeviceID string
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
	SessionID   string
}

// Register creates a dayee account in the pending state. No tokens are
// issued until a central admin approves the account. Email uniqueness is
// enforced by the database constraint, so two concurrent registrations for
// the same address cannot both succeed.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         domain.RoleDayee,
		Markaz:       input.Markaz,
		Division:     input.Division,
		District:     input.District,
		Approved:     false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and claims the single-active-session lock for
// the calling device. A claim held by another device fails the login with
// domain.ErrDeviceConflict; the lock is never stolen.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Approved {
		return nil, ErrUserNotApproved
	}

	sessionID := uuid.New().String()

	claimed, err := s.userRepo.ClaimDevice(ctx, user.ID, input.DeviceID, sessionID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.ErrDeviceConflict
	}

	accessToken, err := s.generateAccessToken(user, sessionID)
	if err != nil {
		return nil, err
	}

	user.ActiveDeviceID = &input.DeviceID
	user.ActiveSessionID = &sessionID

	return &AuthResult{
		User:        user,
		AccessToken: accessToken,
		SessionID:   sessionID,
	}, nil
}

func (s *AuthService) generateAccessToken(user *domain.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"jti":  sessionID,
		"role": user.Role.String(),
		"exp":  time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Logout releases the session lock if the calling device holds it. A stale
// device releasing is a no-op rather than an error.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, deviceID string) error {
	return s.userRepo.ReleaseDevice(ctx, userID, deviceID)
}
