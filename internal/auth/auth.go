package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrWrongClaimAudience is returned by ValidateClaimToken when the
	// token was issued for a different layout ID than the one presented.
	ErrWrongClaimAudience = errors.New("claim token does not match this layout")
)

const (
	userTokenIssuer  = "wordgrid"
	claimTokenIssuer = "wordgrid-claim"
)

type Claims struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	jwt.RegisteredClaims
}

// claimClaims is issued for one specific anonymous layout build. A caller
// who registers an account after building a layout anonymously redeems
// this token to transfer ownership onto their new account, rather than
// losing the layout the moment the build request's response is gone.
type claimClaims struct {
	LayoutID string `json:"layoutId"`
	jwt.RegisteredClaims
}

type AuthService struct {
	jwtSecret     []byte
	tokenDuration time.Duration
}

func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour, // 24 hours
	}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password against a hash
func (s *AuthService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken creates a new JWT token for a user
func (s *AuthService) GenerateToken(userID, email, displayName string) (string, error) {
	claims := &Claims{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    userTokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Issuer != userTokenIssuer {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RefreshToken creates a new token with extended expiration
func (s *AuthService) RefreshToken(claims *Claims) (string, error) {
	return s.GenerateToken(claims.UserID, claims.Email, claims.DisplayName)
}

// GenerateClaimToken issues a short-lived token scoped to exactly one
// anonymous layout build, so whoever holds it can claim that layout onto
// an account once they register or log in. Unlike GenerateToken, this
// token carries no user identity: possession of it is the only proof
// required, the same way a build's response is the only proof a caller
// has that they were the one who ran it.
func (s *AuthService) GenerateClaimToken(layoutID string) (string, error) {
	claims := &claimClaims{
		LayoutID: layoutID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    claimTokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateClaimToken checks a claim token's signature and expiry and
// confirms it was issued for layoutID specifically; a claim token for one
// layout can never be replayed against another.
func (s *AuthService) ValidateClaimToken(tokenString, layoutID string) error {
	token, err := jwt.ParseWithClaims(tokenString, &claimClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*claimClaims)
	if !ok || !token.Valid || claims.Issuer != claimTokenIssuer {
		return ErrInvalidToken
	}
	if claims.LayoutID != layoutID {
		return ErrWrongClaimAudience
	}

	return nil
}
