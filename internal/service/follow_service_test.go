package service

import (
	"context"
	"testing"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followUsers() *userRepoStub {
	return &userRepoStub{
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			switch username {
			case "leo":
				return &models.User{ID: 10, Username: "leo"}, nil
			case "anna":
				return &models.User{ID: 2, Username: "anna"}, nil
			}
			return nil, models.NewNotFoundError("User", username)
		},
	}
}

func TestFollowService_Follow(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesEdge", func(t *testing.T) {
		var gotUser, gotAuthor uint
		follows := &followRepoStub{
			createFn: func(_ context.Context, userID, authorID uint) error {
				gotUser, gotAuthor = userID, authorID
				return nil
			},
		}
		svc := NewFollowService(follows, followUsers())

		require.NoError(t, svc.Follow(ctx, 2, "leo"))
		assert.Equal(t, uint(2), gotUser)
		assert.Equal(t, uint(10), gotAuthor)
	})

	t.Run("SelfFollowIsNoop", func(t *testing.T) {
		follows := &followRepoStub{
			createFn: func(_ context.Context, _, _ uint) error {
				t.Fatal("self-follow must not reach the repository")
				return nil
			},
		}
		svc := NewFollowService(follows, followUsers())

		require.NoError(t, svc.Follow(ctx, 10, "leo"))
	})

	t.Run("UnknownAuthor", func(t *testing.T) {
		svc := NewFollowService(&followRepoStub{}, followUsers())
		err := svc.Follow(ctx, 2, "ghost")
		assert.True(t, models.IsNotFound(err))
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("RemovesEdge", func(t *testing.T) {
		deleted := false
		follows := &followRepoStub{
			deleteFn: func(_ context.Context, userID, authorID uint) error {
				deleted = true
				return nil
			},
		}
		svc := NewFollowService(follows, followUsers())

		require.NoError(t, svc.Unfollow(ctx, 2, "leo"))
		assert.True(t, deleted)
	})

	t.Run("MissingEdge", func(t *testing.T) {
		follows := &followRepoStub{
			deleteFn: func(_ context.Context, userID, authorID uint) error {
				return models.NewNotFoundError("Follow", authorID)
			},
		}
		svc := NewFollowService(follows, followUsers())

		err := svc.Unfollow(ctx, 2, "leo")
		assert.True(t, models.IsNotFound(err))
	})
}
