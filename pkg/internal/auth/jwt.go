package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// Claims is the account profile carried inside an access token. The role
// label is the raw string used for role channel gating, kept verbatim.
type Claims struct {
	Name    string `json:"name"`
	Nick    string `json:"nick"`
	Avatar  string `json:"avatar"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"adm"`

	jwt.RegisteredClaims
}

func NewToken(claims Claims, secret string) (string, error) {
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(24 * time.Hour))
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(secret))
}

func ParseToken(raw string) (Claims, error) {
	return ParseTokenWithSecret(raw, viper.GetString("secret"))
}

func ParseTokenWithSecret(raw, secret string) (Claims, error) {
	var claims Claims
	tk, err := jwt.ParseWithClaims(raw, &claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return claims, err
	} else if !tk.Valid {
		return claims, fmt.Errorf("invalid token")
	}

	return claims, nil
}
