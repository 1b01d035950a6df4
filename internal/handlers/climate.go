package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"climatesim"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusApplied = "applied"

	errGetState        = "failed to load state"
	errGetHistory      = "failed to load history"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	if snap, err := h.services.Monitoring.Snapshot(ctx); err == nil {
		resp["state"] = snap
	}
	c.JSON(http.StatusOK, resp)
}

type roomRequest struct {
	Room string `json:"room" binding:"required"`
}

type locationRequest struct {
	Location string `json:"location" binding:"required"`
}

type modeRequest struct {
	Mode string `json:"mode" binding:"required"` // off | cool | heat
}

type fanRequest struct {
	Fan string `json:"fan" binding:"required"` // auto | low | medium | high
}

type unitRequest struct {
	Unit string `json:"unit" binding:"required"` // C | F
}

type temperatureRequest struct {
	Value float64 `json:"value" binding:"required"`
	Unit  string  `json:"unit,omitempty"` // defaults to C
}

type darkModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Current simulation state
// @Tags         climate
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/climate/state [get]
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	snap, err := h.services.Monitoring.Snapshot(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "climate_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Chart history for a room
// @Tags         climate
// @Produce      json
// @Param        room  query  string  true  "Room id"  Enums(living-room,bedroom,kitchen,office)
// @Success      200  {object}  map[string]interface{}  "count, samples"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	ctx := c.Request.Context()
	room := climatesim.Room(c.Query("room"))
	samples, err := h.services.Monitoring.History(ctx, room)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(samples),
		"samples": samples,
	})
}

// @Summary      Select the active room
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  roomRequest  true  "Room payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/room [put]
func (h *Handler) selectRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SelectRoom(c.Request.Context(), climatesim.Room(req.Room)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"room": req.Room})
}

// @Summary      Select the location (climate envelope)
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  locationRequest  true  "Location payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/location [put]
func (h *Handler) setLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SetLocation(c.Request.Context(), req.Location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"location": req.Location})
}

// @Summary      Set system mode
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  modeRequest  true  "Mode payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/mode [put]
func (h *Handler) setMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	mode, err := climatesim.ParseSystemMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.services.Controls.SetMode(c.Request.Context(), mode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"mode": req.Mode})
}

// @Summary      Set fan speed
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  fanRequest  true  "Fan payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/fan [put]
func (h *Handler) setFan(c *gin.Context) {
	var req fanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	fan, err := climatesim.ParseFanSpeed(req.Fan)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.services.Controls.SetFan(c.Request.Context(), fan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"fan": req.Fan})
}

// @Summary      Set display unit
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  unitRequest  true  "Unit payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/unit [put]
func (h *Handler) setUnit(c *gin.Context) {
	var req unitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	unit, err := climatesim.ParseTempUnit(req.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.services.Controls.SetUnit(c.Request.Context(), unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"unit": req.Unit})
}

// @Summary      Set manual desired temperature
// @Description  Value is interpreted in the given unit (default C) and must lie within 16–30°C / 60–86°F.
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  temperatureRequest  true  "Temperature payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/temperature [put]
func (h *Handler) setDesiredTemp(c *gin.Context) {
	var req temperatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	unit := climatesim.TempUnit(req.Unit)
	if req.Unit == "" {
		unit = climatesim.UnitCelsius
	}
	if err := h.services.Controls.SetDesiredTemp(c.Request.Context(), req.Value, unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"value": req.Value, "unit": string(unit)})
}

// @Summary      Toggle dark mode
// @Description  Presentation-only flag; has no simulation effect.
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  darkModeRequest  true  "Dark mode payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/dark-mode [put]
func (h *Handler) setDarkMode(c *gin.Context) {
	var req darkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.SetDarkMode(c.Request.Context(), *req.Enabled); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"dark_mode": *req.Enabled})
}

// @Summary      Reset a room's energy ledger
// @Tags         climate
// @Accept       json
// @Produce      json
// @Param        body  body  roomRequest  true  "Room payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/climate/energy/reset [post]
func (h *Handler) resetEnergy(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Controls.ResetEnergy(c.Request.Context(), climatesim.Room(req.Room)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusApplied, gin.H{"room": req.Room})
}
