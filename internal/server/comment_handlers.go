package server

import (
	"plume/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /posts/:id/comment. The response is a redirect to
// the post detail whether or not the comment was saved: a validation failure
// (empty text) is swallowed and nothing is stored. Only a missing post is
// surfaced as an error.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var form struct {
		Text string `json:"text" form:"text"`
	}
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect(postDetailPath(postID), fiber.StatusFound)
	}

	_, err = s.commentService.AddComment(c.UserContext(), currentUserID(c), postID, form.Text)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "VALIDATION_ERROR" {
			return c.Redirect(postDetailPath(postID), fiber.StatusFound)
		}
		return respondServiceError(c, err)
	}

	return c.Redirect(postDetailPath(postID), fiber.StatusFound)
}
