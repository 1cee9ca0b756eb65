package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/datefmt"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds      commands.RoomCommands
	q         queries.RoomQueries
	formatter *datefmt.Formatter
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, formatter *datefmt.Formatter) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, formatter: formatter}
}

// @Summary List rooms of a hotel
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rooms [get]
func (h *RoomHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views, h.formatter))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Check availability
// @Description Read-only check; a later booking can still conflict
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param checkIn query string true "Check-in date"
// @Param checkOut query string true "Check-out date"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), id, c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view, h.formatter))
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{id}/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	hotelID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), hotelID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Update room
// @Description Partial update; booked dates cannot be changed here
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete room
// @Description Removes the room and its reservations
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) respond(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromRoomView(view, h.formatter))
}
