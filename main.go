package main

import (
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
)

func main() {
	initHashingSalt()
	initDB()

	r := gin.Default()
	r.Use(visitorTrackingMiddleware())
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Informational pages
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{
			"title": "Home",
			"intro": HomeIntro,
		})
	})

	r.GET("/about", func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", gin.H{
			"title":   "About Me",
			"aboutMe": AboutMe,
		})
	})

	r.GET("/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", gin.H{
			"title":    "Projects",
			"projects": Projects,
		})
	})

	r.GET("/contact", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.GET("/skills", func(c *gin.Context) {
		c.HTML(http.StatusOK, "skills.html", gin.H{
			"title":  "Skills",
			"skills": Skills,
		})
	})

	// JSON API
	r.POST("/send_message", handleSendMessage)
	r.POST("/chat", handleChat)
	r.POST("/ai_search", handleAISearch)
	r.GET("/stats", handleStats)

	// Deep-link redirects
	r.GET("/call", handleCall)
	r.GET("/whatsapp", handleWhatsApp)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
