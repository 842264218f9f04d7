package lib

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

const TOKEN_TTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func GenerateJWT(userID uint, email string, roleID uint) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Email:  email,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TOKEN_TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWT_SECRET)
}

// ParseJWT validates the signature and expiry and returns the claims with
// the user id decoded from the subject.
func ParseJWT(tokenString string) (*types.Claims, uint, error) {
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return config.JWT_SECRET, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, 0, err
	}
	if !token.Valid {
		return nil, 0, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, 0, err
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || userID == 0 {
		return nil, 0, ErrInvalidToken
	}
	return claims, uint(userID), nil
}
