//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	me           *queries.UserView
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.me = builder.NewUserBuilder().BuildView()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, time.Hour, clock.NewRealClock())
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, cookie.NewJar(cfg.Cookie), jwtService)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, shared.Actor{UserID: s.me.ID, Username: s.me.Username, Roles: s.me.Roles})
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := reqdto.RegisterRequest{Username: "new.guest", Email: "new.guest@example.com", Password: "password123"}
	view := builder.NewUserBuilder().WithUsername("new.guest").BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("new.guest", response.Username)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "username too short", mutate: testutil.Field("username", "ab"), expectCode: http.StatusBadRequest},
			{name: "username too long", mutate: testutil.Field("username", strings.Repeat("a", 51)), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password 7 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing field: username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict on taken username", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(view.ID, errs.Wrap(errs.ErrDuplicate, "username"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already exists")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := reqdto.LoginRequest{Username: "guest.user", Password: "password123"}
	view := builder.NewUserBuilder().BuildView()

	s.Run("success: returns 200 OK and sets token cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(&commands.LoginResult{
			UserID:    view.ID,
			TokenPair: &commands.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		}, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("access", response.AccessToken)
		s.Equal(view.Username, response.User.Username)
		s.Require().NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
		s.Equal("refresh", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
	})

	s.Run("error: 401 Unauthorized on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, errors.New("database error"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: token from cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "from-cookie").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "from-cookie"}}, "")

		var response resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("success: token from body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "from-body").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RefreshRequest{RefreshToken: "from-body"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 when no token is supplied", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 on rejected token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.RefreshRequest{RefreshToken: "stale"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthHandlerTestSuite) TestLogoutAndMe() {
	s.Run("logout clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
	})

	s.Run("me returns the current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.me.ID).Return(s.me, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.me.Email, response.Email)
	})

	s.Run("me without actor is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
