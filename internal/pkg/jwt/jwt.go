package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ClaimStaffID carries the Directory ID of the signed-in staff member.
const ClaimStaffID = "staff_id"

var ErrMissingStaffID = errors.New("token has no staff_id claim")

// Service verifies the access tokens issued by the center's identity
// provider. GenerateAccessToken mints tokens with the same key for local
// development and tests.
type Service interface {
	GenerateAccessToken(staffID string) (token string, expiresAt int64, err error)
	StaffIDFromClaims(claims map[string]interface{}) (string, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(staffID string) (token string, expiresAt int64, err error) {
	if staffID == "" {
		return "", 0, ErrMissingStaffID
	}

	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		ClaimStaffID: staffID,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// StaffIDFromClaims extracts the staff ID from verified access token claims.
func (j *JWTService) StaffIDFromClaims(claims map[string]interface{}) (string, error) {
	if tokenType, ok := claims["type"]; ok && tokenType != "access" {
		return "", jwt.ErrInvalidJWT()
	}

	staffID, ok := claims[ClaimStaffID].(string)
	if !ok || staffID == "" {
		return "", ErrMissingStaffID
	}
	return staffID, nil
}
