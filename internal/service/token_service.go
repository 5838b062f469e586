package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserJWTClaims 用户令牌声明
type UserJWTClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService 开发服务用户令牌签发与校验
type TokenService struct {
	secretKey   string
	expireHours int
}

// NewTokenService 创建令牌服务
func NewTokenService(secretKey string, expireHours int) *TokenService {
	if expireHours <= 0 {
		expireHours = 24
	}
	return &TokenService{
		secretKey:   secretKey,
		expireHours: expireHours,
	}
}

// Issue 为指定用户签发 Bearer Token
func (s *TokenService) Issue(userID uint) (string, error) {
	if userID == 0 {
		return "", ErrInvalidToken
	}
	now := time.Now()
	claims := UserJWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Parse 解析并校验 Bearer Token
func (s *TokenService) Parse(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
