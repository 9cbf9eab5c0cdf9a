package server

import (
	"plume/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET /, the global feed. Served through the 20 second cache
// slot; see service.FeedService.Index for the caching contract.
func (s *Server) Index(c *fiber.Ctx) error {
	page := pagination.ParsePage(c.Query("page"))

	feed, err := s.feedService.Index(c.UserContext(), page, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// GroupFeed handles GET /group/:slug
func (s *Server) GroupFeed(c *fiber.Ctx) error {
	page := pagination.ParsePage(c.Query("page"))

	feed, err := s.feedService.GroupFeed(c.UserContext(), c.Params("slug"), page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// Profile handles GET /profile/:username
func (s *Server) Profile(c *fiber.Ctx) error {
	page := pagination.ParsePage(c.Query("page"))

	profile, err := s.feedService.ProfileFeed(
		c.UserContext(), c.Params("username"), page, currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// FollowingFeed handles GET /follow, the personalized feed of followed
// authors.
func (s *Server) FollowingFeed(c *fiber.Ctx) error {
	page := pagination.ParsePage(c.Query("page"))

	feed, err := s.feedService.FollowingFeed(c.UserContext(), currentUserID(c), page)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}
