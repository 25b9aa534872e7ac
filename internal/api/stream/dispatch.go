// Package stream pushes a computed dispatch curve to a browser over a
// WebSocket, one slot tick at a time, so a dashboard can animate the
// week instead of rendering a single static chart.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"station-sizing/internal/api/models"
	apiconfig "station-sizing/internal/config"
	"station-sizing/internal/sizing"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SlotTick is one message of the dispatch stream: a single 15-minute
// sample plus the weekday it belongs to.
type SlotTick struct {
	Weekday string          `json:"weekday"`
	Slot    models.SlotPoint `json:"slot"`
	Index   int             `json:"index"`
	Total   int             `json:"total"`
}

// Handler upgrades a request to a WebSocket and streams a project's V2G
// weekly dispatch curve to it, tick by tick, at the given rate.
type Handler struct {
	consts   apiconfig.Constants
	tickRate time.Duration
}

// NewHandler builds a stream handler ticking once per tickRate (e.g.
// 100ms plays one day's 96 slots in under 10 seconds and the full week's
// 672 slots in about 67 seconds).
func NewHandler(consts apiconfig.Constants, tickRate time.Duration) *Handler {
	return &Handler{consts: consts, tickRate: tickRate}
}

// StreamV2G handles GET /api/v1/v2g/stream (a WebSocket upgrade). The
// request body (sent as a single text message right after connecting)
// must be a JSON-encoded models.V2GRequest.
func (h *Handler) StreamV2G(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("stream: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	_, raw, err := conn.ReadMessage()
	if err != nil {
		log.Printf("stream: failed to read request message: %v", err)
		return
	}

	var req models.V2GRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.writeError(conn, "invalid V2G request: "+err.Error())
		return
	}

	result, err := sizing.ComputeV2G(req.ToProject(), h.consts)
	if err != nil {
		h.writeError(conn, err.Error())
		return
	}

	week := models.FromModelWeekCurves(result.Week)
	ticker := time.NewTicker(h.tickRate)
	defer ticker.Stop()

	for _, day := range week.Days {
		for i, slot := range day.Slots {
			<-ticker.C
			tick := SlotTick{Weekday: day.Weekday, Slot: slot, Index: i, Total: len(day.Slots)}
			msg, err := json.Marshal(tick)
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeError(conn *websocket.Conn, message string) {
	msg, err := json.Marshal(gin.H{"error": message})
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, msg)
}
