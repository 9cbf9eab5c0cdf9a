package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"plume/internal/cache"
	"plume/internal/config"
	"plume/internal/database"
	"plume/internal/featureflags"
	"plume/internal/models"
	"plume/internal/repository"
	"plume/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server against an in-memory SQLite database and a
// miniredis-backed cache store, with routes registered on a bare Fiber app.
func newTestServer(t *testing.T) (*Server, *fiber.App, *miniredis.Miniredis) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		JWTSecret: "test-secret-0123456789abcdef0123456789",
		MediaDir:  t.TempDir(),
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	flags := featureflags.NewManager("")
	store := cache.NewRedisStore(redisClient)

	s := &Server{
		config:       cfg,
		db:           db,
		redis:        redisClient,
		userRepo:     userRepo,
		postRepo:     postRepo,
		groupRepo:    groupRepo,
		commentRepo:  commentRepo,
		followRepo:   followRepo,
		featureFlags: flags,
	}
	s.feedService = service.NewFeedService(postRepo, userRepo, groupRepo, followRepo, store, flags)
	s.postService = service.NewPostService(postRepo, groupRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	s.followService = service.NewFollowService(followRepo, userRepo)
	s.userService = service.NewUserService(userRepo)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, mr
}

func createUser(t *testing.T, s *Server, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant-hash",
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func createGroup(t *testing.T, s *Server, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: slug, Slug: slug}
	require.NoError(t, s.db.Create(group).Error)
	return group
}

func createPost(t *testing.T, s *Server, userID uint, groupID *uint, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, UserID: userID, GroupID: groupID}
	require.NoError(t, s.db.Create(post).Error)
	return post
}

func authHeader(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, dest))
}

func countRows(t *testing.T, s *Server, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, s.db.Model(model).Count(&count).Error)
	return count
}
