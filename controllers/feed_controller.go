package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"HRDeskGo/config"
	"HRDeskGo/services"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin dashboards are expected; auth happens via the
	// bearer token before the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedController upgrades clients onto the change feed.
type FeedController struct {
	feed *services.ChangeFeed
}

func NewFeedController(feed *services.ChangeFeed) *FeedController {
	return &FeedController{feed: feed}
}

// Subscribe upgrades the request to a WebSocket and streams change
// events until the client disconnects.
func (fc *FeedController) Subscribe(c *gin.Context) {
	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.Logger.Warnw("websocket upgrade failed", "error", err)
		return
	}

	fc.feed.Serve(conn)
}
