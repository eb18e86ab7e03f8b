package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/boe-dawah/boe-backend/internal/api/middleware"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
	role     domain.Role
	approved bool
	markaz   string
	division string
	district string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@boe.example", suffix),
		password: "testpassword123",
		name:     fmt.Sprintf("Test User %s", suffix),
		role:     domain.RoleDayee,
		approved: true,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// WithApproved sets the approval flag
func (b *UserBuilder) WithApproved(approved bool) *UserBuilder {
	b.approved = approved
	return b
}

// WithRegion sets the grouping fields
func (b *UserBuilder) WithRegion(markaz, division, district string) *UserBuilder {
	b.markaz = markaz
	b.division = division
	b.district = district
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		Role:         b.role,
		Markaz:       b.markaz,
		Division:     b.division,
		District:     b.district,
		Approved:     b.approved,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

// Login authenticates an existing user from the given device and returns
// the access token.
func Login(t *testing.T, ts *TestServer, email, password, deviceID string) string {
	t.Helper()

	resp := LoginRequest(t, ts, email, password, deviceID)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("login failed with status %d: %s", resp.StatusCode, string(body))
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}
	return authResp.AccessToken
}

// LoginRequest performs a login call with a device cookie and returns the
// raw response for status inspection.
func LoginRequest(t *testing.T, ts *TestServer, email, password, deviceID string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	req, err := http.NewRequest(http.MethodPost, ts.APIURL("/auth/login"), bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to build login request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.DeviceCookieName, Value: deviceID})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	return resp
}

// BuildAndLogin creates an approved user, logs in from a fresh device, and
// returns the user plus the credentials needed for authenticated requests.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)
	deviceID := uuid.New().String()
	token := Login(t, ts, user.Email, password, deviceID)
	return user, token, deviceID
}

// DoJSON performs an authenticated JSON request against the test server.
func DoJSON(t *testing.T, ts *TestServer, method, path, token, deviceID string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, ts.APIURL(path), reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if deviceID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.DeviceCookieName, Value: deviceID})
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
