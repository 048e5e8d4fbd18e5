package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"daycare/backend/foundation/web"
	internalauth "daycare/backend/internal/auth"
	"daycare/backend/internal/commands"
	"daycare/backend/internal/pkg/cache"
	"daycare/backend/internal/repository/postgres/user"
)

type Controller struct {
	user           User
	cache          *cache.Cache
	auth           *internalauth.Auth
	privateKeyFile string
}

func NewController(user User, cache *cache.Cache, auth *internalauth.Auth, privateKeyFile string) *Controller {
	return &Controller{user: user, cache: cache, auth: auth, privateKeyFile: privateKeyFile}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	err := c.BindFunc(&data, "Email", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil || detail.Role == nil {
		return c.RespondError(&web.Error{
			Err:    errors.New("user not found"),
			Status: http.StatusUnauthorized,
		})
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect email or password"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(user.AuthClaims{
		ID:   detail.ID,
		Role: *detail.Role,
	}, uc.privateKeyFile)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	err := c.BindFunc(&data, "AccessToken", "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	_, refreshTokenClaims, err := commands.VerifyTokens(data.AccessToken, data.RefreshToken, uc.privateKeyFile)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	blacklisted, err := uc.cache.IsBlacklisted(c.Ctx, data.RefreshToken)
	if err == nil && blacklisted {
		return c.RespondError(web.NewRequestError(errors.New("token revoked"), http.StatusUnauthorized))
	}

	userClaims := user.AuthClaims{
		ID:   refreshTokenClaims.UserId,
		Role: refreshTokenClaims.Role,
	}

	accessToken, refreshToken, err := commands.GenToken(userClaims, uc.privateKeyFile)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) SignOut(c *web.Context) error {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.RespondError(web.NewRequestError(errors.New("missing bearer token"), http.StatusUnauthorized))
	}
	token := strings.TrimPrefix(header, "Bearer ")

	parsed, err := uc.auth.ValidateToken(token)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	ttl := time.Until(time.Unix(parsed.ExpiresAt, 0))
	if err = uc.cache.BlacklistToken(c.Ctx, token, ttl); err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "revoking token"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"data":   "signed out",
		"status": true,
	}, http.StatusOK)
}
