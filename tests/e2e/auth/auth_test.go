//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "guest.one")
}

func (s *authSuite) TestRegister() {
	s.Run("登録したユーザーでログインできる", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username: "new.guest",
			Email:    "new.guest@example.com",
			Password: "s3cret-pass",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		assert.Equal(t, []string{"USER"}, created.Roles)

		token := authtest.LoginUser(t, s.Router, "new.guest", "s3cret-pass")
		assert.NotEmpty(t, token)
	})

	s.Run("同じユーザー名は409", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username: "guest.one",
			Email:    "other@example.com",
			Password: "s3cret-pass",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Already exists")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "正常なログイン",
			username:       "guest.one",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			username:       "nobody",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid username or password",
		},
		{
			name:           "間違ったパスワード",
			username:       "guest.one",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid username or password",
		},
		{
			name:           "短すぎるパスワード",
			username:       "guest.one",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")

			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
				return
			}
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var res resdto.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			assert.NotEmpty(t, res.AccessToken)
			require.NotNil(t, res.User)
			assert.Equal(t, tt.username, res.User.Username)

			refresh := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
			require.NotNil(t, refresh)
			assert.True(t, refresh.HttpOnly)
		})
	}
}

func (s *authSuite) TestSession() {
	s.Run("リフレッシュからログアウトまで", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "guest.one", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		cookies := httptest.ExtractCookies(w)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var refreshed resdto.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &refreshed))
		require.NotEmpty(t, refreshed.AccessToken)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, refreshed.AccessToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var me resdto.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		assert.Equal(t, "guest.one", me.Username)

		authtest.LogoutUser(t, s.Router, cookies)
	})

	s.Run("リフレッシュトークンなしは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("トークンなしのmeは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}
