package seed

import (
	"fmt"

	"plume/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls the size of a demo dataset.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	FollowsPerUser  int
}

// DefaultOptions is a small but lively dataset.
var DefaultOptions = Options{
	Users:           12,
	PostsPerUser:    6,
	CommentsPerPost: 2,
	FollowsPerUser:  3,
}

// Run populates the database with groups, users, posts, comments and a
// follow mesh. It is idempotent for groups and additive for everything else.
func Run(db *gorm.DB, opts Options) error {
	groups, err := DefaultGroups(db)
	if err != nil {
		return err
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			var group *models.Group
			// Roughly a third of posts go without a group.
			if factory.rnd.Intn(3) != 0 {
				group = &groups[factory.rnd.Intn(len(groups))]
			}
			post, err := factory.CreatePost(user, group)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, post := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			commenter := users[factory.rnd.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	for _, user := range users {
		for i := 0; i < opts.FollowsPerUser; i++ {
			author := users[factory.rnd.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			follow := models.Follow{UserID: user.ID, AuthorID: author.ID}
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
				DoNothing: true,
			}).Create(&follow).Error
			if err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	return nil
}
