package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAuthService(t *testing.T) {
	secret := "test-secret-key"
	service := NewAuthService(secret)

	if service == nil {
		t.Fatal("expected non-nil AuthService")
	}
	if string(service.jwtSecret) != secret {
		t.Errorf("expected secret %q, got %q", secret, string(service.jwtSecret))
	}
	if service.tokenDuration != 24*time.Hour {
		t.Errorf("expected token duration 24h, got %v", service.tokenDuration)
	}
}

func TestHashPassword(t *testing.T) {
	service := NewAuthService("test-secret")

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "securePassword123!", wantErr: false},
		{name: "empty password", password: "", wantErr: false},
		{name: "long password", password: strings.Repeat("a", 72), wantErr: false},
		{name: "password with special characters", password: "p@$$w0rd!#%&*()[]{}", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := service.HashPassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("HashPassword() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && hash == "" {
				t.Error("expected non-empty hash")
			}
			if hash == tt.password {
				t.Error("hash should not equal plaintext password")
			}
		})
	}
}

func TestHashPassword_ProducesDifferentHashes(t *testing.T) {
	service := NewAuthService("test-secret")
	password := "samePassword123"

	hash1, err := service.HashPassword(password)
	if err != nil {
		t.Fatalf("first hash failed: %v", err)
	}

	hash2, err := service.HashPassword(password)
	if err != nil {
		t.Fatalf("second hash failed: %v", err)
	}

	if hash1 == hash2 {
		t.Error("same password should produce different hashes (bcrypt uses random salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	service := NewAuthService("test-secret")

	password := "correctPassword123"
	hash, err := service.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: password, hash: hash, want: true},
		{name: "incorrect password", password: "wrongPassword", hash: hash, want: false},
		{name: "empty password against valid hash", password: "", hash: hash, want: false},
		{name: "password against empty hash", password: password, hash: "", want: false},
		{name: "password against malformed hash", password: password, hash: "not-a-valid-bcrypt-hash", want: false},
		{name: "case sensitive check", password: "CorrectPassword123", hash: hash, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.CheckPassword(tt.password, tt.hash)
			if result != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", result, tt.want)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service := NewAuthService("test-secret-key")

	tests := []struct {
		name        string
		userID      string
		email       string
		displayName string
	}{
		{name: "regular user", userID: "user-123", email: "test@example.com", displayName: "Test User"},
		{name: "empty display name", userID: "user-789", email: "empty@example.com", displayName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.GenerateToken(tt.userID, tt.email, tt.displayName)
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}
			if token == "" {
				t.Fatal("expected non-empty token")
			}

			claims, err := service.ValidateToken(token)
			if err != nil {
				t.Fatalf("failed to validate generated token: %v", err)
			}

			if claims.UserID != tt.userID {
				t.Errorf("UserID = %q, want %q", claims.UserID, tt.userID)
			}
			if claims.Email != tt.email {
				t.Errorf("Email = %q, want %q", claims.Email, tt.email)
			}
			if claims.DisplayName != tt.displayName {
				t.Errorf("DisplayName = %q, want %q", claims.DisplayName, tt.displayName)
			}
			if claims.Issuer != "wordgrid" {
				t.Errorf("Issuer = %q, want %q", claims.Issuer, "wordgrid")
			}
		})
	}
}

func TestGenerateToken_Expiration(t *testing.T) {
	service := NewAuthService("test-secret-key")

	before := time.Now().Truncate(time.Second)
	token, err := service.GenerateToken("user-123", "test@example.com", "Test")
	after := time.Now().Add(time.Second).Truncate(time.Second)

	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	actualExpiry := claims.ExpiresAt.Time
	minExpiry := before.Add(24 * time.Hour)
	maxExpiry := after.Add(24 * time.Hour)

	if actualExpiry.Before(minExpiry) || actualExpiry.After(maxExpiry) {
		t.Errorf("token expiry = %v, expected between %v and %v", actualExpiry, minExpiry, maxExpiry)
	}

	if claims.IssuedAt.Time.Before(before) || claims.IssuedAt.Time.After(after) {
		t.Errorf("token IssuedAt = %v, expected between %v and %v", claims.IssuedAt.Time, before, after)
	}
}

func TestValidateToken(t *testing.T) {
	service := NewAuthService("test-secret-key")

	validToken, _ := service.GenerateToken("user-123", "test@example.com", "Test User")

	tests := []struct {
		name      string
		token     string
		wantErr   error
		wantClaim string
	}{
		{name: "valid token", token: validToken, wantErr: nil, wantClaim: "user-123"},
		{name: "empty token", token: "", wantErr: ErrInvalidToken},
		{name: "malformed token", token: "not.a.valid.jwt.token", wantErr: ErrInvalidToken},
		{name: "random string", token: "randomgarbage123", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ValidateToken() unexpected error = %v", err)
			}
			if claims.UserID != tt.wantClaim {
				t.Errorf("UserID = %q, want %q", claims.UserID, tt.wantClaim)
			}
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewAuthService("secret-one")
	service2 := NewAuthService("secret-two")

	token, err := service1.GenerateToken("user-123", "test@example.com", "Test")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = service2.ValidateToken(token)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken when validating with wrong secret, got %v", err)
	}
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := &AuthService{
		jwtSecret:     []byte("test-secret"),
		tokenDuration: -1 * time.Hour,
	}

	token, err := service.GenerateToken("user-123", "test@example.com", "Test")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = service.ValidateToken(token)
	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired for expired token, got %v", err)
	}
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	service := NewAuthService("test-secret")

	claims := &Claims{
		UserID:      "user-123",
		Email:       "test@example.com",
		DisplayName: "Test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "wordgrid",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	_, err := service.ValidateToken(tokenString)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong signing method, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	service := NewAuthService("test-secret-key")

	originalToken, err := service.GenerateToken("user-123", "test@example.com", "Test User")
	if err != nil {
		t.Fatalf("failed to generate original token: %v", err)
	}

	originalClaims, err := service.ValidateToken(originalToken)
	if err != nil {
		t.Fatalf("failed to validate original token: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	refreshedToken, err := service.RefreshToken(originalClaims)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}

	refreshedClaims, err := service.ValidateToken(refreshedToken)
	if err != nil {
		t.Fatalf("failed to validate refreshed token: %v", err)
	}

	if refreshedClaims.UserID != originalClaims.UserID {
		t.Errorf("UserID not preserved: got %q, want %q", refreshedClaims.UserID, originalClaims.UserID)
	}
	if refreshedClaims.Email != originalClaims.Email {
		t.Errorf("Email not preserved: got %q, want %q", refreshedClaims.Email, originalClaims.Email)
	}
	if refreshedClaims.DisplayName != originalClaims.DisplayName {
		t.Errorf("DisplayName not preserved: got %q, want %q", refreshedClaims.DisplayName, originalClaims.DisplayName)
	}

	if !refreshedClaims.IssuedAt.Time.After(originalClaims.IssuedAt.Time) {
		t.Error("refreshed token should have later IssuedAt")
	}

	expectedExpiry := refreshedClaims.IssuedAt.Time.Add(24 * time.Hour)
	if !refreshedClaims.ExpiresAt.Time.Equal(expectedExpiry) {
		t.Errorf("refreshed token expiry = %v, expected %v", refreshedClaims.ExpiresAt.Time, expectedExpiry)
	}
}

func TestGenerateClaimToken_RoundTrip(t *testing.T) {
	service := NewAuthService("test-secret")

	token, err := service.GenerateClaimToken("layout-123")
	if err != nil {
		t.Fatalf("GenerateClaimToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty claim token")
	}

	if err := service.ValidateClaimToken(token, "layout-123"); err != nil {
		t.Errorf("ValidateClaimToken() error = %v, want nil", err)
	}
}

func TestValidateClaimToken_WrongLayout(t *testing.T) {
	service := NewAuthService("test-secret")

	token, err := service.GenerateClaimToken("layout-123")
	if err != nil {
		t.Fatalf("GenerateClaimToken() error = %v", err)
	}

	if err := service.ValidateClaimToken(token, "layout-456"); err != ErrWrongClaimAudience {
		t.Errorf("ValidateClaimToken() error = %v, want %v", err, ErrWrongClaimAudience)
	}
}

func TestValidateClaimToken_RejectsUserToken(t *testing.T) {
	service := NewAuthService("test-secret")

	userToken, err := service.GenerateToken("user-123", "test@example.com", "Test")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if err := service.ValidateClaimToken(userToken, "layout-123"); err != ErrInvalidToken {
		t.Errorf("ValidateClaimToken() error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestValidateClaimToken_Expired(t *testing.T) {
	service := NewAuthService("test-secret")

	claims := &claimClaims{
		LayoutID: "layout-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    claimTokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString(service.jwtSecret)

	if err := service.ValidateClaimToken(tokenString, "layout-123"); err != ErrTokenExpired {
		t.Errorf("ValidateClaimToken() error = %v, want %v", err, ErrTokenExpired)
	}
}

func TestClaims_Structure(t *testing.T) {
	service := NewAuthService("test-secret")

	token, _ := service.GenerateToken("user-123", "test@example.com", "Display Name")
	claims, _ := service.ValidateToken(token)

	if claims.UserID == "" {
		t.Error("UserID should not be empty")
	}
	if claims.Email == "" {
		t.Error("Email should not be empty")
	}
	_ = claims.DisplayName
	if claims.ExpiresAt == nil {
		t.Error("ExpiresAt should not be nil")
	}
	if claims.IssuedAt == nil {
		t.Error("IssuedAt should not be nil")
	}
	if claims.Issuer == "" {
		t.Error("Issuer should not be empty")
	}
}
