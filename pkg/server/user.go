package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ikormushev/manjabook/pkg/auth"
	"github.com/ikormushev/manjabook/pkg/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserServer struct {
	repository *repository.Repository
	auth       *auth.Manager
	logger     *zap.Logger
}

func NewUserServer(repository *repository.Repository, authManager *auth.Manager, logger *zap.Logger) *UserServer {
	return &UserServer{repository: repository, auth: authManager, logger: logger}
}

func (u *UserServer) RegisterRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	authGroup.POST("/register", u.Register)
	authGroup.POST("/login", u.Login)
	authGroup.POST("/logout", u.auth.RequireAuth(), u.Logout)
	authGroup.GET("/session", u.auth.OptionalAuth(), u.Session)

	profiles := api.Group("/profiles")
	profiles.GET("", u.ListProfiles)
	profiles.GET("/:id", u.GetProfile)
	profiles.PUT("/:id", u.auth.RequireAuth(), u.UpdateProfile)
	profiles.DELETE("/:id", u.auth.RequireAuth(), u.DeleteProfile)
}

type registerRequest struct {
	Username string `binding:"required,min=3,max=20" json:"username"`
	Email    string `binding:"required,email"        json:"email"`
	Password string `binding:"required,min=8"        json:"password"`
}

type loginRequest struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password"`
}

func (u *UserServer) Register(ginCtx *gin.Context) {
	var request registerRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})

		return
	}

	user, err := u.repository.AddUser(ginCtx.Request.Context(), request.Username, request.Email, string(hash))
	if err != nil {
		u.logger.Error("error creating user", zap.String("email", request.Email), zap.Error(err))
		ginCtx.JSON(http.StatusConflict, gin.H{"error": "a user with that username or email already exists"})

		return
	}

	ginCtx.JSON(http.StatusCreated, gin.H{"user_id": user.ID, "username": user.Username})
}

func (u *UserServer) Login(ginCtx *gin.Context) {
	var request loginRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	user, err := u.repository.GetUserByEmail(ginCtx.Request.Context(), request.Email)
	if err != nil || !user.Active {
		ginCtx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})

		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		ginCtx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})

		return
	}

	token, err := u.auth.IssueToken(user)
	if err != nil {
		u.logger.Error("error issuing token", zap.Uint("user_id", user.ID), zap.Error(err))
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})

		return
	}

	u.auth.SetAuthCookie(ginCtx, token)
	ginCtx.JSON(http.StatusOK, gin.H{"user_id": user.ID, "username": user.Username})
}

func (u *UserServer) Logout(ginCtx *gin.Context) {
	u.auth.ClearAuthCookie(ginCtx)
	ginCtx.JSON(http.StatusNoContent, nil)
}

func (u *UserServer) Session(ginCtx *gin.Context) {
	user, authenticated := auth.UserFromContext(ginCtx)
	if !authenticated {
		ginCtx.JSON(http.StatusOK, gin.H{"authenticated": false})

		return
	}

	ginCtx.JSON(http.StatusOK, gin.H{"authenticated": true, "user_id": user.ID, "username": user.Username})
}

func (u *UserServer) ListProfiles(ginCtx *gin.Context) {
	users, err := u.repository.GetProfiles(ginCtx.Request.Context(), ginCtx.Query("search"))
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	profiles := make([]ProfileResponse, 0, len(users))

	for _, user := range users {
		profiles = append(profiles, ProfileResponse{UserID: user.ID, Username: user.Username, PictureURL: user.Profile.PictureURL})
	}

	ginCtx.JSON(http.StatusOK, profiles)
}

func (u *UserServer) GetProfile(ginCtx *gin.Context) {
	userID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	user, err := u.repository.GetUserByID(ginCtx.Request.Context(), userID)
	if err != nil || !user.Active {
		ginCtx.JSON(http.StatusNotFound, gin.H{"error": ErrUserNotFound.Error()})

		return
	}

	ginCtx.JSON(http.StatusOK, ProfileResponse{UserID: user.ID, Username: user.Username, PictureURL: user.Profile.PictureURL})
}

type profileUpdateRequest struct {
	PictureURL string `json:"picture_url"`
}

func (u *UserServer) UpdateProfile(ginCtx *gin.Context) {
	userID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	user, _ := auth.UserFromContext(ginCtx)
	if user.ID != userID {
		ginCtx.JSON(http.StatusForbidden, gin.H{"error": "not the profile owner"})

		return
	}

	var request profileUpdateRequest

	if err := ginCtx.ShouldBindJSON(&request); err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	updated, err := u.repository.UpdateProfile(ginCtx.Request.Context(), userID, request.PictureURL)
	if err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ginCtx.JSON(http.StatusOK, ProfileResponse{UserID: updated.ID, Username: updated.Username, PictureURL: updated.Profile.PictureURL})
}

// DeleteProfile deactivates the account: recipes keep pointing at the
// profile, only login stops working.
func (u *UserServer) DeleteProfile(ginCtx *gin.Context) {
	userID, err := parseIDParam(ginCtx)
	if err != nil {
		return
	}

	user, _ := auth.UserFromContext(ginCtx)
	if user.ID != userID {
		ginCtx.JSON(http.StatusForbidden, gin.H{"error": "not the profile owner"})

		return
	}

	if err := u.repository.DeactivateUser(ginCtx.Request.Context(), userID); err != nil {
		ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	u.auth.ClearAuthCookie(ginCtx)
	ginCtx.JSON(http.StatusNoContent, nil)
}

func parseIDParam(ginCtx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ginCtx.Param("id"), 10, 32)
	if err != nil {
		ginCtx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})

		return 0, err
	}

	return uint(id), nil
}

func notFoundOrInternal(ginCtx *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ginCtx.JSON(http.StatusNotFound, gin.H{"error": "not found"})

		return
	}

	ginCtx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
