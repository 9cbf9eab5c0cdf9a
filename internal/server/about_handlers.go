package server

import "github.com/gofiber/fiber/v2"

// AboutAuthor handles GET /about/author
func (s *Server) AboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":  "about_author",
		"title": "About the author",
	})
}

// AboutTech handles GET /about/tech
func (s *Server) AboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":  "about_tech",
		"title": "Technologies",
		"stack": []string{"Go", "Fiber", "GORM", "PostgreSQL", "Redis"},
	})
}
