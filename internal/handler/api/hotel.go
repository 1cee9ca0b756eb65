package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	cmds  commands.HotelCommands
	q     queries.HotelQueries
	stats queries.StatsQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries, stats queries.StatsQueries) *HotelHandler {
	return &HotelHandler{cmds: cmds, q: q, stats: stats}
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Param city query string false "City filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), queries.HotelFilter{
		City:   c.Query("city"),
		Limit:  queryInt(c, "limit", queries.DefaultListLimit),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Update hotel
// @Description Partial update; absent fields are kept
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Fields to change"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [patch]
func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateHotelRequest
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

// @Summary Delete hotel
// @Description Removes the hotel with its rooms and their reservations
// @Tags hotels
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
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

// @Summary Rate hotel
// @Description Fold a 1..5 rating into the hotel's running mean
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.RateHotelRequest true "Rating"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rating [post]
func (h *HotelHandler) Rate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.RateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Rate(c.Request.Context(), id, req.Value, actor.Username); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Hotel usage statistics
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/stats [get]
func (h *HotelHandler) Stats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.stats.HotelStats(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelStats(stats))
}

func (h *HotelHandler) respond(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromHotelView(view))
}
