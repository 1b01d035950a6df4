package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"climatesim"
)

type scheduleEntryRequest struct {
	Hour  *int    `json:"hour" binding:"required"`
	TempC float64 `json:"temp_c" binding:"required"`
}

// @Summary      Scheduled setpoints for a room
// @Tags         schedule
// @Produce      json
// @Param        room  path  string  true  "Room id"  Enums(living-room,bedroom,kitchen,office)
// @Success      200  {object}  map[string]interface{}  "room, entries"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/schedule/{room} [get]
func (h *Handler) getSchedule(c *gin.Context) {
	room := climatesim.Room(c.Param("room"))
	entries, err := h.services.Monitoring.Schedule(c.Request.Context(), room)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":    room,
		"entries": entries,
	})
}

// @Summary      Set a scheduled setpoint
// @Description  Registers a setpoint (Celsius) for one hour of the day (0–23). While the current hour has an entry it overrides the manual desired temperature.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        room  path  string                true  "Room id"  Enums(living-room,bedroom,kitchen,office)
// @Param        body  body  scheduleEntryRequest  true  "Schedule entry"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/schedule/{room} [put]
func (h *Handler) setScheduleEntry(c *gin.Context) {
	var req scheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	room := climatesim.Room(c.Param("room"))
	if err := h.services.Controls.SetScheduleEntry(c.Request.Context(), room, *req.Hour, req.TempC); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusApplied,
		"room":   room,
		"hour":   *req.Hour,
		"temp_c": req.TempC,
	})
}

// @Summary      Remove a scheduled setpoint
// @Tags         schedule
// @Produce      json
// @Param        room  path  string  true  "Room id"  Enums(living-room,bedroom,kitchen,office)
// @Param        hour  path  int     true  "Hour of day (0–23)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/schedule/{room}/{hour} [delete]
func (h *Handler) removeScheduleEntry(c *gin.Context) {
	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hour must be an integer between 0 and 23"})
		return
	}
	room := climatesim.Room(c.Param("room"))
	if err := h.services.Controls.RemoveScheduleEntry(c.Request.Context(), room, hour); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusApplied,
		"room":   room,
		"hour":   hour,
	})
}
