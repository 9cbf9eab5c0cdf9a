// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"plume/internal/config"
	"plume/internal/database"
	"plume/internal/seed"
)

func main() {
	users := flag.Int("users", seed.DefaultOptions.Users, "number of users to create")
	posts := flag.Int("posts", seed.DefaultOptions.PostsPerUser, "posts per user")
	comments := flag.Int("comments", seed.DefaultOptions.CommentsPerPost, "comments per post")
	follows := flag.Int("follows", seed.DefaultOptions.FollowsPerUser, "follow edges per user")
	groupsOnly := flag.Bool("groups-only", false, "only upsert the default groups")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *groupsOnly {
		groups, err := seed.DefaultGroups(db)
		if err != nil {
			log.Fatalf("Failed to seed groups: %v", err)
		}
		log.Printf("Upserted %d groups", len(groups))
		return
	}

	opts := seed.Options{
		Users:           *users,
		PostsPerUser:    *posts,
		CommentsPerPost: *comments,
		FollowsPerUser:  *follows,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users with %d posts each", opts.Users, opts.PostsPerUser)
}
