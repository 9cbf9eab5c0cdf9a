package service

import (
	"context"
	"strings"

	"plume/internal/middleware"
	"plume/internal/models"
	"plume/internal/repository"
)

const maxPostTextLen = 50000

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

type CreatePostInput struct {
	UserID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

func (s *PostService) validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return models.NewValidationError("Text is required")
	}
	if len(text) > maxPostTextLen {
		return models.NewValidationError("Text is too long")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := s.validateText(in.Text); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		UserID:   in.UserID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	middleware.PostsCreated.Inc()
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost applies an edit on behalf of in.UserID. Callers must translate
// the UNAUTHORIZED error into their surface's convention (the web handlers
// redirect to the post page instead of reporting an error).
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !CanEditPost(post, in.UserID) {
		return nil, models.NewUnauthorizedError("Only the author can edit this post")
	}

	if err := s.validateText(in.Text); err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// ResolveGroup maps an optional group slug from a form to a group ID.
// An empty slug means the post is not filed under any group.
func (s *PostService) ResolveGroup(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewValidationError("Unknown group")
		}
		return nil, err
	}
	return &group.ID, nil
}
