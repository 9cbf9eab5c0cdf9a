package service

import (
	"context"
	"testing"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanEditPost(t *testing.T) {
	post := &models.Post{ID: 1, UserID: 10}

	assert.True(t, CanEditPost(post, 10))
	assert.False(t, CanEditPost(post, 11))
	assert.False(t, CanEditPost(post, 0))
	assert.False(t, CanEditPost(nil, 10))
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyText", func(t *testing.T) {
		svc := NewPostService(&postRepoStub{}, &groupRepoStub{})

		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Text: "   "})
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("Success", func(t *testing.T) {
		created := false
		repo := &postRepoStub{
			createFn: func(_ context.Context, post *models.Post) error {
				created = true
				post.ID = 7
				return nil
			},
			getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
				return &models.Post{ID: id, Text: "Hello", UserID: 1}, nil
			},
		}
		svc := NewPostService(repo, &groupRepoStub{})

		post, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Text: "Hello"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, uint(7), post.ID)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	ctx := context.Background()
	stored := &models.Post{ID: 5, Text: "original", UserID: 10}

	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			if id != 5 {
				return nil, models.NewNotFoundError("Post", id)
			}
			copied := *stored
			return &copied, nil
		},
		updateFn: func(_ context.Context, post *models.Post) error {
			stored.Text = post.Text
			return nil
		},
	}
	svc := NewPostService(repo, &groupRepoStub{})

	t.Run("NonAuthorRejected", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, UpdatePostInput{UserID: 11, PostID: 5, Text: "hijacked"})
		assertAppErrorCode(t, err, "UNAUTHORIZED")
		assert.Equal(t, "original", stored.Text)
	})

	t.Run("AuthorEdits", func(t *testing.T) {
		post, err := svc.UpdatePost(ctx, UpdatePostInput{UserID: 10, PostID: 5, Text: "edited"})
		require.NoError(t, err)
		assert.Equal(t, "edited", post.Text)
	})

	t.Run("MissingPost", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, UpdatePostInput{UserID: 10, PostID: 99, Text: "edited"})
		assert.True(t, models.IsNotFound(err))
	})
}

func TestPostService_ResolveGroup(t *testing.T) {
	ctx := context.Background()
	groups := &groupRepoStub{
		getBySlugFn: func(_ context.Context, slug string) (*models.Group, error) {
			if slug == "prose" {
				return &models.Group{ID: 3, Slug: "prose"}, nil
			}
			return nil, models.NewNotFoundError("Group", slug)
		},
	}
	svc := NewPostService(&postRepoStub{}, groups)

	id, err := svc.ResolveGroup(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = svc.ResolveGroup(ctx, "prose")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint(3), *id)

	_, err = svc.ResolveGroup(ctx, "nope")
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
