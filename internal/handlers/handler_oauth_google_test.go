package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/khasanoff/uaa_backend/internal/core/domain"
	portssvc "github.com/khasanoff/uaa_backend/internal/core/ports/services"
	"github.com/khasanoff/uaa_backend/internal/handlers"
	"github.com/khasanoff/uaa_backend/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
)

type GoogleOAuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
	mockOAuthService *MockGoogleOAuthService
}

func (suite *GoogleOAuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)
	suite.mockOAuthService = new(MockGoogleOAuthService)

	cfg := &config.Config{
		IsProduction: true,
		FrontendURL:  "https://front.example.com",
	}
	container := &portssvc.ServiceContainer{
		User:        suite.mockUserService,
		Token:       suite.mockTokenService,
		GoogleOAuth: suite.mockOAuthService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *GoogleOAuthHandlerTestSuite) TestRedirectToGoogle() {
	suite.mockOAuthService.On("GenerateStateString", mock.Anything).Return("state-123", nil).Once()
	suite.mockOAuthService.On("GetLoginURL", mock.Anything, "state-123").
		Return("https://accounts.google.com/o/oauth2/auth?state=state-123").Once()

	req := httptest.NewRequest(http.MethodGet, "/api/user/google", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("https://accounts.google.com/o/oauth2/auth?state=state-123", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal("oauth_state", cookies[0].Name)
	suite.Equal("state-123", cookies[0].Value)
	suite.True(cookies[0].HttpOnly)
}

func (suite *GoogleOAuthHandlerTestSuite) performCallback(query string, stateCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/user/google/callback"+query, nil)
	if stateCookie != "" {
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: stateCookie})
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallback_Success() {
	token := (&oauth2.Token{AccessToken: "access"}).WithExtra(map[string]interface{}{"id_token": "raw-id-token"})
	info := &domain.GoogleUserInfo{Subject: "google-sub", Email: "g@example.com", Name: "G User", EmailVerified: true}
	user := &domain.User{UserID: "u1", Email: "g@example.com", Provider: domain.ProviderGoogle}

	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").Return(token, nil).Once()
	suite.mockOAuthService.On("ValidateIDToken", mock.Anything, "raw-id-token").Return(info, nil).Once()
	suite.mockUserService.On("FindOrCreateGoogleUser", mock.Anything, *info).Return(user, nil).Once()
	suite.mockTokenService.On("IssueAuthToken", mock.Anything, user).Return("session-token", nil).Once()

	w := suite.performCallback("?state=state-123&code=auth-code", "state-123")

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("https://front.example.com/auto-login?token=session-token", w.Header().Get("Location"))
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallback_StateMismatch() {
	w := suite.performCallback("?state=evil&code=auth-code", "state-123")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"success":false,"errors":["Google Login failed"]}`, w.Body.String())
	suite.mockOAuthService.AssertNotCalled(suite.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallback_MissingStateCookie() {
	w := suite.performCallback("?state=state-123&code=auth-code", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"success":false,"errors":["Google Login failed"]}`, w.Body.String())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallback_MissingCode() {
	w := suite.performCallback("?state=state-123", "state-123")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"success":false,"errors":["Google Login failed"]}`, w.Body.String())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallback_ExchangeFails() {
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").
		Return(nil, errors.New("oauth2: invalid_grant")).Once()

	w := suite.performCallback("?state=state-123&code=auth-code", "state-123")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"success":false,"errors":["Google Login failed"]}`, w.Body.String())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallback_MissingIDToken() {
	token := &oauth2.Token{AccessToken: "access"}
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").Return(token, nil).Once()

	w := suite.performCallback("?state=state-123&code=auth-code", "state-123")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"success":false,"errors":["Google Login failed"]}`, w.Body.String())
}

func (suite *GoogleOAuthHandlerTestSuite) TestCallback_InvalidIDToken() {
	token := (&oauth2.Token{AccessToken: "access"}).WithExtra(map[string]interface{}{"id_token": "forged"})
	suite.mockOAuthService.On("ExchangeCodeForToken", mock.Anything, "auth-code").Return(token, nil).Once()
	suite.mockOAuthService.On("ValidateIDToken", mock.Anything, "forged").
		Return(nil, errors.New("idtoken: signature verification failed")).Once()

	w := suite.performCallback("?state=state-123&code=auth-code", "state-123")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "FindOrCreateGoogleUser", mock.Anything, mock.Anything)
}

func TestGoogleOAuthHandler(t *testing.T) {
	suite.Run(t, new(GoogleOAuthHandlerTestSuite))
}
