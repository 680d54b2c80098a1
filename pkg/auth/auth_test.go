package auth_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ikormushev/manjabook/configs"
	"github.com/ikormushev/manjabook/pkg/auth"
	"github.com/ikormushev/manjabook/pkg/model"
	"github.com/ikormushev/manjabook/pkg/repository"
)

type AuthTestSuite struct {
	suite.Suite
	mock    sqlmock.Sqlmock
	manager *auth.Manager
	engine  *gin.Engine
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	var (
		db  *sql.DB
		err error
	)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	suite.Require().NoError(err)

	logger := zaptest.NewLogger(suite.T())
	conf := &configs.Config{Auth: configs.Auth{SecretKey: "test-secret", TokenTTL: time.Hour}}
	repo := &repository.Repository{DB: gormDB, Logger: logger}

	suite.manager = auth.NewAuthManager(conf, repo, logger)
	suite.engine = gin.New()
}

func (suite *AuthTestSuite) expectUserLookup(active bool) {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "active"}).
			AddRow(uint(1), "chef", "chef@example.com", active))
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(uint(2), uint(1)))
}

func (suite *AuthTestSuite) issueToken() string {
	user := &model.User{Username: "chef"}
	user.ID = 1

	token, err := suite.manager.IssueToken(user)
	suite.Require().NoError(err)

	return token
}

func (suite *AuthTestSuite) TestRequireAuth_AcceptsValidCookie() {
	suite.expectUserLookup(true)

	var seen *model.User

	suite.engine.GET("/protected", suite.manager.RequireAuth(), func(ginCtx *gin.Context) {
		seen, _ = auth.UserFromContext(ginCtx)
		ginCtx.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.AddCookie(&http.Cookie{Name: auth.CookieName, Value: suite.issueToken()})

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Require().NotNil(seen)
	suite.Equal(uint(1), seen.ID)
	suite.Equal("chef", seen.Username)
}

func (suite *AuthTestSuite) TestRequireAuth_RejectsMissingCookie() {
	suite.engine.GET("/protected", suite.manager.RequireAuth(), func(ginCtx *gin.Context) {
		ginCtx.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthTestSuite) TestRequireAuth_RejectsForgedToken() {
	forgedConf := &configs.Config{Auth: configs.Auth{SecretKey: "other-secret", TokenTTL: time.Hour}}
	forgedManager := auth.NewAuthManager(forgedConf, nil, zaptest.NewLogger(suite.T()))

	user := &model.User{Username: "chef"}
	user.ID = 1

	forged, err := forgedManager.IssueToken(user)
	suite.Require().NoError(err)

	suite.engine.GET("/protected", suite.manager.RequireAuth(), func(ginCtx *gin.Context) {
		ginCtx.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.AddCookie(&http.Cookie{Name: auth.CookieName, Value: forged})

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthTestSuite) TestRequireAuth_RejectsDeactivatedUser() {
	suite.expectUserLookup(false)

	suite.engine.GET("/protected", suite.manager.RequireAuth(), func(ginCtx *gin.Context) {
		ginCtx.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.AddCookie(&http.Cookie{Name: auth.CookieName, Value: suite.issueToken()})

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *AuthTestSuite) TestOptionalAuth_AllowsAnonymous() {
	var found bool

	suite.engine.GET("/open", suite.manager.OptionalAuth(), func(ginCtx *gin.Context) {
		_, found = auth.UserFromContext(ginCtx)
		ginCtx.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/open", nil)

	recorder := httptest.NewRecorder()
	suite.engine.ServeHTTP(recorder, request)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.False(found)
}
