package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // local single-user app
}

// GET /ws
// Streams summary.updated / profile.updated events as the log changes. The
// current selected-date summary is pushed once on connect.
func SummaryWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	hub.Register(conn)

	date, _ := tracker.Selection()
	if msg, err := json.Marshal(gin.H{"kind": "summary.updated", "payload": tracker.DailySummary(date)}); err == nil {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}

	// ping keeps the connection alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				hub.Unregister(conn)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(conn)
			return
		}
	}
}
