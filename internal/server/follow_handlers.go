package server

import (
	"github.com/gofiber/fiber/v2"
)

// Follow handles GET /profile/:username/follow. Re-following and following
// yourself are no-ops; either way the response redirects to the profile.
func (s *Server) Follow(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := s.followService.Follow(c.UserContext(), currentUserID(c), username); err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect(profilePath(username), fiber.StatusFound)
}

// Unfollow handles GET /profile/:username/unfollow. A missing edge is a 404.
func (s *Server) Unfollow(c *fiber.Ctx) error {
	username := c.Params("username")

	if err := s.followService.Unfollow(c.UserContext(), currentUserID(c), username); err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect(profilePath(username), fiber.StatusFound)
}
