package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/ikormushev/manjabook/configs"
	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/repository"
)

const (
	// CookieName carries the access token, HttpOnly.
	CookieName = "token"

	userContextKey = "auth.user"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNoToken      = errors.New("authentication token required")
)

type Manager struct {
	conf   *configs.Config
	repo   *repository.Repository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

func (a *Manager) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"uuid":     user.UUID.String(),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(a.conf.Auth.TokenTTL).Unix(),
	})

	return token.SignedString([]byte(a.conf.Auth.SecretKey))
}

func (a *Manager) SetAuthCookie(ginCtx *gin.Context, token string) {
	ginCtx.SetSameSite(http.SameSiteLaxMode)
	ginCtx.SetCookie(CookieName, token, int(a.conf.Auth.TokenTTL.Seconds()), "/", a.conf.Auth.CookieDomain, a.conf.Auth.SecureCookie, true)
}

func (a *Manager) ClearAuthCookie(ginCtx *gin.Context) {
	ginCtx.SetSameSite(http.SameSiteLaxMode)
	ginCtx.SetCookie(CookieName, "", -1, "/", a.conf.Auth.CookieDomain, a.conf.Auth.SecureCookie, true)
}

// RequireAuth validates the token cookie, loads the user and stores it in the
// request context. Requests without a valid cookie are rejected.
func (a *Manager) RequireAuth() gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		user, err := a.authenticate(ginCtx)
		if err != nil {
			ginCtx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

			return
		}

		ginCtx.Set(userContextKey, user)
		ginCtx.Next()
	}
}

// OptionalAuth loads the user when a valid cookie is present and lets the
// request through either way. Read endpoints use it to mark ownership.
func (a *Manager) OptionalAuth() gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		if user, err := a.authenticate(ginCtx); err == nil {
			ginCtx.Set(userContextKey, user)
		}

		ginCtx.Next()
	}
}

func (a *Manager) authenticate(ginCtx *gin.Context) (*model.User, error) {
	tokenString, err := ginCtx.Cookie(CookieName)
	if err != nil || tokenString == "" {
		return nil, ErrNoToken
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, ErrInvalidToken
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, found := claims["user_id"].(float64)
	if !found {
		a.logger.Error("unable to get user id from token", zap.Any("claims", claims))

		return nil, ErrInvalidToken
	}

	user, err := a.repo.GetUserByID(ginCtx.Request.Context(), uint(userID))
	if err != nil {
		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, ErrInvalidToken
	}

	if !user.Active {
		return nil, ErrInvalidToken
	}

	return user, nil
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ginCtx *gin.Context) (*model.User, bool) {
	value, exists := ginCtx.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*model.User)

	return user, ok
}
