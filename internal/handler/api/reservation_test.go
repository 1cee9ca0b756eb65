//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/calendar"
	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockReservationQueries
	formatter    *datefmt.Formatter
	actor        shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.formatter = datefmt.MustNew(datefmt.DefaultPattern)
	s.actor = shared.Actor{UserID: uuid.New(), Username: "guest.user", Roles: []string{"USER"}}
	handler := api.NewReservationHandler(s.mockCommands, s.mockQueries, s.formatter)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, s.actor)
		c.Next()
	}

	s.router.POST("/rooms/:id/reservations", authMiddleware, handler.Book)
	s.router.GET("/reservations", authMiddleware, handler.List)
	s.router.GET("/reservations/:id", authMiddleware, handler.Get)
	s.router.PUT("/reservations/:id", authMiddleware, handler.Update)
	s.router.DELETE("/reservations/:id", authMiddleware, handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) stay() reqdto.BookRoomRequest {
	return reqdto.BookRoomRequest{
		CheckIn:  s.formatter.Format(calendar.NewDate(2025, time.August, 10)),
		CheckOut: s.formatter.Format(calendar.NewDate(2025, time.August, 12)),
	}
}

func (s *ReservationHandlerTestSuite) TestBook() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/reservations"
	reqBody := s.stay()
	view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.RoomID = roomID
		b.UserID = s.actor.UserID
		b.Username = s.actor.Username
	}).WithStay(calendar.NewDate(2025, time.August, 10), calendar.NewDate(2025, time.August, 12)).BuildView()

	s.Run("success: returns 201 Created with the reservation", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), roomID, reqBody, s.actor.Username).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(reqBody.CheckIn, response.CheckIn)
		s.Equal(reqBody.CheckOut, response.CheckOut)
	})

	s.Run("error: 400 Bad Request on missing dates", func() {
		for _, field := range []string{"checkIn", "checkOut"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed room id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rooms/not-a-uuid/reservations", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps booking errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"dates unavailable", errs.Wrap(errs.ErrBookingConflict, "room"), http.StatusBadRequest, "This dates is unavailable"},
			{"malformed date", errs.Wrap(errs.ErrDateFormat, "checkIn"), http.StatusBadRequest, "invalid date format"},
			{"inverted range", errs.ErrInvalidRange, http.StatusBadRequest, "check-out date precedes check-in date"},
			{"room not found", errs.Wrap(errs.ErrNotFound, "room"), http.StatusNotFound, "Not found"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), roomID, reqBody, s.actor.Username).Return(uuid.Nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().BuildView(),
		builder.NewReservationBuilder().BuildView(),
	}

	s.Run("success: passes cursor and limit and returns next cursor", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.actor.UserID, &queries.Cursor{After: "abc"}, 2).
			Return(views, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?after=abc&limit=2", nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("next", response.NextCursor)
	})

	s.Run("success: first page uses default limit", func() {
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.actor.UserID, gomock.Nil(), queries.DefaultListLimit).
			Return(views, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.NextCursor)
	})

	s.Run("error: 400 Bad Request on broken cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?after=%25", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.RoomName, response.RoomName)
	})

	s.Run("error: 403 Forbidden for another user's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).
			Return(nil, errs.Wrap(errs.ErrAccessDenied, "reservation belongs to another user"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdate() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()
	reqBody := reqdto.UpdateReservationRequest(s.stay())

	s.Run("success: returns 200 OK with the moved reservation", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody, s.actor.Username).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps update errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"conflict with another reservation", errs.ErrBookingConflict, http.StatusBadRequest},
			{"not the owner", errs.ErrAccessDenied, http.StatusForbidden},
			{"reservation gone", errs.ErrNotFound, http.StatusNotFound},
			{"booked dates out of sync", errs.Mark(errs.New("missing day"), errs.ErrInconsistentState), http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody, s.actor.Username).Return(uuid.Nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actor.Username).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actor.Username).Return(errs.Wrap(errs.ErrNotFound, "reservation"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
