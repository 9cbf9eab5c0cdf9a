package seed

import (
	"fmt"
	"testing"

	"plume/internal/database"
	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestDefaultGroupsIsIdempotent(t *testing.T) {
	db := newSeedDB(t)

	first, err := DefaultGroups(db)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := DefaultGroups(db)
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))

	var count int64
	require.NoError(t, db.Model(&models.Group{}).Count(&count).Error)
	assert.Equal(t, int64(len(first)), count)
}

func TestLoadGroupsRejectsMissingSlug(t *testing.T) {
	db := newSeedDB(t)

	_, err := LoadGroups(db, []byte("- title: No slug here\n"))
	assert.Error(t, err)
}

func TestRunProducesConsistentMesh(t *testing.T) {
	db := newSeedDB(t)

	opts := Options{Users: 4, PostsPerUser: 3, CommentsPerPost: 1, FollowsPerUser: 2}
	require.NoError(t, Run(db, opts))

	var users, posts, comments int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(4), users)
	assert.Equal(t, int64(12), posts)
	assert.Equal(t, int64(12), comments)

	// No self-follows and no duplicate edges.
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("user_id = author_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)

	var edges, distinct int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	require.NoError(t, db.Raw(
		"SELECT COUNT(*) FROM (SELECT DISTINCT user_id, author_id FROM follows)").
		Scan(&distinct).Error)
	assert.Equal(t, edges, distinct)
}
