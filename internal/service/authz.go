// Package service implements business logic on top of the repository layer.
package service

import "plume/internal/models"

// CanEditPost reports whether the given principal may edit a post. Editing is
// restricted to the author; there is no moderator override.
func CanEditPost(post *models.Post, principalID uint) bool {
	if post == nil || principalID == 0 {
		return false
	}
	return post.UserID == principalID
}
