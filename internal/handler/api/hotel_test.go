//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HotelHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHotelCommands
	mockQueries  *queriesmock.MockHotelQueries
	mockStats    *queriesmock.MockStatsQueries
	userToken    string
	adminToken   string
}

func (s *HotelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHotelCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHotelQueries(s.mockCtrl)
	s.mockStats = queriesmock.NewMockStatsQueries(s.mockCtrl)
	handler := api.NewHotelHandler(s.mockCommands, s.mockQueries, s.mockStats)

	jwtService := jwt.NewService("test-secret", 15*time.Minute, time.Hour, clock.NewRealClock())
	var err error
	s.userToken, err = jwtService.GenerateAccessToken(uuid.New(), "guest.user", []string{"USER"})
	s.Require().NoError(err)
	s.adminToken, err = jwtService.GenerateAccessToken(uuid.New(), "admin", []string{"USER", "ADMIN"})
	s.Require().NoError(err)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))
	admin := []gin.HandlerFunc{auth.RequireAuth(), auth.RequireRole(user.RoleAdmin)}

	s.router.GET("/hotels", handler.List)
	s.router.GET("/hotels/:id", handler.Get)
	s.router.GET("/hotels/:id/stats", handler.Stats)
	s.router.POST("/hotels/:id/rating", auth.RequireAuth(), handler.Rate)
	s.router.POST("/hotels", append(admin, handler.Create)...)
	s.router.DELETE("/hotels/:id", append(admin, handler.Delete)...)
}

func (s *HotelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHotelHandlerSuite(t *testing.T) {
	suite.Run(t, new(HotelHandlerTestSuite))
}

func (s *HotelHandlerTestSuite) TestList() {
	s.Run("success: forwards the city filter", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.HotelFilter{City: "Kyoto", Limit: 5, Offset: 10}).
			Return([]*queries.HotelView{builder.NewHotelBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels?city=Kyoto&limit=5&offset=10", nil, "")

		var response []resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

func (s *HotelHandlerTestSuite) TestRate() {
	view := builder.NewHotelBuilder().WithRating(4, 2).BuildView()
	url := "/hotels/" + view.ID.String() + "/rating"
	reqBody := reqdto.RateHotelRequest{Value: 4}

	s.Run("success: returns the updated hotel", func() {
		s.mockCommands.EXPECT().Rate(gomock.Any(), view.ID, 4, "guest.user").Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.userToken)

		var response resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(4.0, response.Rating, 1e-9)
		s.Equal(2, response.NumberOfRatings)
	})

	s.Run("error: 400 Bad Request when value is out of range", func() {
		s.mockCommands.EXPECT().Rate(gomock.Any(), view.ID, 6, "guest.user").
			Return(errs.Wrap(errs.ErrValidation, "rating must be between 1 and 5"))

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("value", 6))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "rating must be between 1 and 5")
	})

	s.Run("error: 400 Bad Request when value is missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("value", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized with a bad token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "garbage")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *HotelHandlerTestSuite) TestAdminOnly() {
	reqBody := reqdto.CreateHotelRequest{Name: "Harbor Inn", City: "Kobe", DistanceToCenter: 1.5}

	s.Run("error: 403 Forbidden for USER", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels", reqBody, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("success: ADMIN creates a hotel", func() {
		view := builder.NewHotelBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels", reqBody, s.adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 Conflict on duplicate name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(uuid.Nil, errs.Wrap(errs.ErrDuplicate, "hotel name"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels", reqBody, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already exists")
	})

	s.Run("error: 400 Bad Request on negative distance", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("distanceToCenter", -1))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/hotels", body, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("success: ADMIN deletes a hotel", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/hotels/"+id.String(), nil, s.adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *HotelHandlerTestSuite) TestStats() {
	id := uuid.New()

	s.Run("success: average is derived from the rating sum", func() {
		s.mockStats.EXPECT().HotelStats(gomock.Any(), id).
			Return(&queries.HotelStats{HotelID: id, Reservations: 3, Ratings: 4, RatingSum: 14}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+id.String()+"/stats", nil, "")

		var response resdto.HotelStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(3.5, response.AverageRating, 1e-9)
		s.Equal(int64(3), response.Reservations)
	})

	s.Run("error: 404 Not Found for unknown hotel", func() {
		s.mockStats.EXPECT().HotelStats(gomock.Any(), id).Return(nil, errs.Wrap(errs.ErrNotFound, "hotel"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+id.String()+"/stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
