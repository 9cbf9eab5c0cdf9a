package service

import (
	"context"

	"plume/internal/cache"
	"plume/internal/featureflags"
	"plume/internal/middleware"
	"plume/internal/models"
	"plume/internal/pagination"
	"plume/internal/repository"
)

// FeedPage is one rendered page of a post listing.
type FeedPage struct {
	Posts []models.Post   `json:"posts"`
	Meta  pagination.Meta `json:"meta"`
}

// GroupPage is a group feed page together with the group it belongs to.
type GroupPage struct {
	Group models.Group `json:"group"`
	FeedPage
}

// ProfilePage is an author's profile together with one page of their posts.
type ProfilePage struct {
	Author     models.User `json:"author"`
	PostsTotal int64       `json:"posts_total"`
	Followers  int64       `json:"followers"`
	Following  bool        `json:"following"`
	FeedPage
}

// FeedService assembles the four post listings. The cache store is an
// injected dependency; passing nil disables caching.
type FeedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
	store      cache.Store
	flags      *featureflags.Manager
}

func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
	store cache.Store,
	flags *featureflags.Manager,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		store:      store,
		flags:      flags,
	}
}

func (s *FeedService) fetchIndex(ctx context.Context, page int) (*FeedPage, error) {
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	offset, limit, meta := pagination.Paginate(page, total)
	posts, err := s.postRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &FeedPage{Posts: posts, Meta: meta}, nil
}

// Index returns the global feed. The whole rendered page is cached under a
// single key for cache.FeedTTL, so within that window every visitor gets the
// same page regardless of which page number they asked for. Mutations do not
// invalidate the slot; staleness up to the TTL is accepted.
func (s *FeedService) Index(ctx context.Context, page int, viewerID uint) (*FeedPage, error) {
	if s.store == nil || !s.flags.Enabled(featureflags.FlagFeedCache, viewerID) {
		middleware.FeedCacheOutcomes.WithLabelValues("bypass").Inc()
		return s.fetchIndex(ctx, page)
	}

	var cached FeedPage
	found, err := s.store.Get(ctx, cache.FeedKey, &cached)
	if err == nil && found {
		middleware.FeedCacheOutcomes.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	middleware.FeedCacheOutcomes.WithLabelValues("miss").Inc()

	result, err := s.fetchIndex(ctx, page)
	if err != nil {
		return nil, err
	}
	// Best effort; a failed write just means the next request misses too.
	_ = s.store.Set(ctx, cache.FeedKey, result, cache.FeedTTL)
	return result, nil
}

// GroupFeed returns one page of a group's posts, newest first.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, page int) (*GroupPage, error) {
	var group models.Group
	err := cache.Aside(ctx, s.store, cache.GroupKey(slug), &group, cache.GroupTTL, func() error {
		found, err := s.groupRepo.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		group = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	offset, limit, meta := pagination.Paginate(page, total)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, offset, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &GroupPage{Group: group, FeedPage: FeedPage{Posts: posts, Meta: meta}}, nil
}

// ProfileFeed returns an author's profile page. When viewerID is non-zero the
// Following field reflects whether the viewer follows this author.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, page int, viewerID uint) (*ProfilePage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	offset, limit, meta := pagination.Paginate(page, total)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, offset, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	return &ProfilePage{
		Author:     *author,
		PostsTotal: total,
		Followers:  followers,
		Following:  following,
		FeedPage:   FeedPage{Posts: posts, Meta: meta},
	}, nil
}

// FollowingFeed returns one page of posts by authors the user follows.
// A user with no follows gets a single empty page.
func (s *FeedService) FollowingFeed(ctx context.Context, userID uint, page int) (*FeedPage, error) {
	total, err := s.postRepo.CountByFollowed(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	offset, limit, meta := pagination.Paginate(page, total)
	posts, err := s.postRepo.ListByFollowed(ctx, userID, offset, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &FeedPage{Posts: posts, Meta: meta}, nil
}
