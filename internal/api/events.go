package api

import (
	"io"

	"github.com/gin-gonic/gin"
)

// streamEvents is the live subscription channel: task mutations are pushed
// as server-sent events until the client disconnects or falls behind.
func (s *Server) streamEvents(c *gin.Context) {
	id, events := s.broadcaster.Subscribe()
	defer s.broadcaster.Unsubscribe(id)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				// Evicted by the broadcaster.
				return false
			}
			c.SSEvent("message", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
