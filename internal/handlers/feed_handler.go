package handlers

import (
	"ridepool/pkg/feed"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	hub *feed.Hub
}

func NewFeedHandler(hub *feed.Hub) *FeedHandler {
	return &FeedHandler{
		hub: hub,
	}
}

// Feed upgrades the connection and streams listing events.
func (h *FeedHandler) Feed(c *gin.Context) {
	if err := feed.ServeWS(h.hub, c.Writer, c.Request); err != nil {
		// Upgrade failures already wrote a response.
		return
	}
}
