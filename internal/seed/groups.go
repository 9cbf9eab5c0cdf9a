package seed

import (
	_ "embed"
	"fmt"

	"plume/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed groups.yml
var defaultGroupsYAML []byte

type groupSpec struct {
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

// LoadGroups parses a YAML group list and upserts the groups by slug.
// Existing groups keep their IDs so reseeding is safe.
func LoadGroups(db *gorm.DB, raw []byte) ([]models.Group, error) {
	var specs []groupSpec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parse groups yaml: %w", err)
	}

	groups := make([]models.Group, 0, len(specs))
	for _, spec := range specs {
		if spec.Slug == "" || spec.Title == "" {
			return nil, fmt.Errorf("group spec needs both title and slug: %+v", spec)
		}
		group := models.Group{
			Title:       spec.Title,
			Slug:        spec.Slug,
			Description: spec.Description,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description"}),
		}).Create(&group).Error
		if err != nil {
			return nil, fmt.Errorf("upsert group %q: %w", spec.Slug, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// DefaultGroups seeds the groups shipped with the binary.
func DefaultGroups(db *gorm.DB) ([]models.Group, error) {
	return LoadGroups(db, defaultGroupsYAML)
}
