package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mkj/summerhouse-voting/internal/domain"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern.
type UserBuilder struct {
	name      string
	email     string
	sessionID string
}

// NewUserBuilder creates a new UserBuilder with default values.
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:      fmt.Sprintf("testuser_%s", suffix),
		email:     fmt.Sprintf("testuser_%s@example.com", suffix),
		sessionID: uuid.New().String(),
	}
}

// WithName sets the user's name.
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the user's email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithSessionID sets the user's session token.
func (b *UserBuilder) WithSessionID(sessionID string) *UserBuilder {
	b.sessionID = sessionID
	return b
}

// Build creates the user in the database.
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	user := &domain.User{
		Name:      b.name,
		Email:     b.email,
		SessionID: b.sessionID,
		CreatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// UserEnvelope matches the API responses that wrap a user.
type UserEnvelope struct {
	User struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Email     string  `json:"email"`
		CreatedAt string  `json:"createdAt"`
		Votes     []int64 `json:"votes"`
	} `json:"user"`
}

// RegisterViaAPI registers a user through the API and returns the parsed
// response plus the session cookie the server issued.
func RegisterViaAPI(t *testing.T, ts *TestServer, name, email string) (*UserEnvelope, *http.Cookie) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"name": name, "email": email})
	resp, err := http.Post(ts.APIURL("/users"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var envelope UserEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_id" {
			return &envelope, cookie
		}
	}
	t.Fatal("no session_id cookie in register response")
	return nil, nil
}

// SummerHouseBuilder creates catalogue entries with a builder pattern.
type SummerHouseBuilder struct {
	name       string
	imageURL   string
	bookingURL string
}

// NewSummerHouseBuilder creates a new SummerHouseBuilder with default values.
func NewSummerHouseBuilder() *SummerHouseBuilder {
	suffix := uuid.New().String()[:8]
	return &SummerHouseBuilder{
		name:       fmt.Sprintf("Sommerhus %s", suffix),
		imageURL:   fmt.Sprintf("https://example.com/%s.jpg", suffix),
		bookingURL: fmt.Sprintf("https://example.com/book/%s", suffix),
	}
}

// WithName sets the summer house name.
func (b *SummerHouseBuilder) WithName(name string) *SummerHouseBuilder {
	b.name = name
	return b
}

// Build creates the summer house in the database.
func (b *SummerHouseBuilder) Build(t *testing.T, db *gorm.DB) *domain.SummerHouse {
	t.Helper()

	house := &domain.SummerHouse{
		Name:       b.name,
		ImageURL:   b.imageURL,
		BookingURL: b.bookingURL,
		CreatedAt:  time.Now(),
	}
	if err := db.Create(house).Error; err != nil {
		t.Fatalf("failed to create summer house: %v", err)
	}
	return house
}

// CastVote inserts a vote row directly.
func CastVote(t *testing.T, db *gorm.DB, userID, summerHouseID int64) *domain.Vote {
	t.Helper()

	vote := &domain.Vote{
		UserID:        userID,
		SummerHouseID: summerHouseID,
		CreatedAt:     time.Now(),
	}
	if err := db.Create(vote).Error; err != nil {
		t.Fatalf("failed to create vote: %v", err)
	}
	return vote
}
