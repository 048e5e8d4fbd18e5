package commands

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"daycare/backend/internal/auth"
	"daycare/backend/internal/repository/postgres/user"
)

const (
	accessTokenDuration  = 12 * time.Hour
	refreshTokenDuration = 30 * 24 * time.Hour
)

// GenToken issues the access/refresh token pair for a signed-in user.
func GenToken(userClaims user.AuthClaims, privateKeyFile string) (string, string, error) {
	keyData, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return "", "", errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyData)
	if err != nil {
		return "", "", errors.Wrap(err, "parsing private key")
	}

	now := time.Now()

	accessClaims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenDuration).Unix(),
		},
		UserId: userClaims.ID,
		Role:   userClaims.Role,
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, accessClaims).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshClaims := auth.Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenDuration).Unix(),
		},
		UserId: userClaims.ID,
		Role:   userClaims.Role,
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, refreshClaims).SignedString(privateKey)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens validates a token pair during refresh. The access token may be
// expired at this point; only its signature is checked.
func VerifyTokens(accessToken, refreshToken, privateKeyFile string) (auth.Claims, auth.Claims, error) {
	keyData, err := os.ReadFile(privateKeyFile)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "reading private key file")
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyData)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing private key")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return &privateKey.PublicKey, nil
	}

	var accessClaims auth.Claims
	if _, err := jwt.ParseWithClaims(accessToken, &accessClaims, keyFunc); err != nil {
		ve, ok := err.(*jwt.ValidationError)
		if !ok || ve.Errors&jwt.ValidationErrorExpired == 0 {
			return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing access token")
		}
	}

	var refreshClaims auth.Claims
	token, err := jwt.ParseWithClaims(refreshToken, &refreshClaims, keyFunc)
	if err != nil {
		return auth.Claims{}, auth.Claims{}, errors.Wrap(err, "parsing refresh token")
	}
	if !token.Valid {
		return auth.Claims{}, auth.Claims{}, errors.New("invalid refresh token")
	}

	if accessClaims.UserId != refreshClaims.UserId {
		return auth.Claims{}, auth.Claims{}, errors.New("token pair mismatch")
	}

	return accessClaims, refreshClaims, nil
}
