package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/echosight/echosight/pkg/capture"
	"github.com/echosight/echosight/pkg/cycle"
	"github.com/echosight/echosight/pkg/hub"
)

// handleDescribe runs one capture cycle. When the request body carries a
// JPEG (browser camera), it is used as the capture; otherwise the server
// camera captures the photo.
func (s *Server) handleDescribe(c *fiber.Ctx) error {
	var provider capture.Provider
	if ct := c.Get(fiber.HeaderContentType); strings.HasPrefix(ct, "image/") && len(c.Body()) > 0 {
		// Body() is only valid during the handler; the cycle runs
		// synchronously so no copy is needed.
		provider = capture.Bytes(c.Body())
	}

	result, err := s.runner.Run(c.UserContext(), provider)
	if err != nil {
		return s.describeError(c, err)
	}

	s.setOutcome(result.Text, "")
	return c.JSON(result)
}

// describeError maps cycle failures onto HTTP responses.
func (s *Server) describeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, cycle.ErrBusy) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "a description is already in progress",
		})
	}

	if kind, ok := cycle.KindOf(err); ok && kind == cycle.KindCaptureCancelled {
		// Silent reset, not an error to the user.
		return c.JSON(fiber.Map{"cancelled": true})
	}

	s.setOutcome("", err.Error())
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// handleStatus returns the current app status.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(s.currentStatus())
}

// handleStatusWS streams status updates to the browser.
func (s *Server) handleStatusWS(conn *websocket.Conn) {
	// Send the current status immediately so the screen renders
	// without waiting for the next transition.
	conn.WriteJSON(s.currentStatus())

	hub.NewClient(s.statusHub, conn).Run()
}
