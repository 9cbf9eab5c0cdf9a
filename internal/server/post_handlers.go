package server

import (
	"plume/internal/models"
	"plume/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postForm struct {
	Text  string `json:"text" form:"text"`
	Group string `json:"group" form:"group"`
}

// parsePostForm reads the create/edit payload and stores the optional image.
// The bool result reports whether a response was already written.
func (s *Server) parsePostForm(c *fiber.Ctx) (*postForm, string, bool) {
	var form postForm
	if err := c.BodyParser(&form); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return nil, "", true
	}

	imageURL := ""
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		url, err := s.saveImage(fileHeader)
		if err != nil {
			_ = respondServiceError(c, err)
			return nil, "", true
		}
		imageURL = url
	}

	return &form, imageURL, false
}

// NewPostForm handles GET /create: the data backing the create-post form.
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{
		"page":   "create_post",
		"groups": groups,
	})
}

// CreatePost handles POST /create. On success the author is redirected to
// their own profile.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	form, imageURL, written := s.parsePostForm(c)
	if written {
		return nil
	}

	groupID, err := s.postService.ResolveGroup(c.UserContext(), form.Group)
	if err != nil {
		return respondServiceError(c, err)
	}

	if _, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:   userID,
		Text:     form.Text,
		GroupID:  groupID,
		ImageURL: imageURL,
	}); err != nil {
		return respondServiceError(c, err)
	}

	user, err := s.userRepo.GetByID(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect(profilePath(user.Username), fiber.StatusFound)
}

// GetPost handles GET /posts/:id: the detail page with its comment list.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	comments, err := s.commentService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// EditPostForm handles GET /posts/:id/edit. A non-author is silently
// redirected to the detail page instead of seeing the form.
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if !service.CanEditPost(post, currentUserID(c)) {
		return c.Redirect(postDetailPath(postID), fiber.StatusFound)
	}

	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"page":   "edit_post",
		"post":   post,
		"groups": groups,
	})
}

// UpdatePost handles POST /posts/:id/edit. A non-author's submission leaves
// the post untouched and redirects to the detail page; the author is
// redirected there after a successful edit.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	form, imageURL, written := s.parsePostForm(c)
	if written {
		return nil
	}

	groupID, err := s.postService.ResolveGroup(c.UserContext(), form.Group)
	if err != nil {
		return respondServiceError(c, err)
	}

	_, err = s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:   currentUserID(c),
		PostID:   postID,
		Text:     form.Text,
		GroupID:  groupID,
		ImageURL: imageURL,
	})
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "UNAUTHORIZED" {
			return c.Redirect(postDetailPath(postID), fiber.StatusFound)
		}
		return respondServiceError(c, err)
	}

	return c.Redirect(postDetailPath(postID), fiber.StatusFound)
}
