package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/logging"
	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/stream"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the session cookie already gates the endpoint
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamRun upgrades the connection to a websocket and subscribes it to
// the run's update feed. The socket only carries update events; clients
// refetch the run over HTTP.
func (h *RunHandler) StreamRun(hub *stream.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		runID := c.Param("runID")
		if _, err := h.manager.GetRun(runID, sessionEmail(c)); err != nil {
			writeServiceError(c, err)
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		cancel := hub.Subscribe(runID, conn)
		logging.Info("stream subscriber attached", logging.Fields{constants.LogFieldRunID: runID})

		// the read loop only exists to detect disconnects
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
