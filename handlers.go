package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const fallbackPhoneNumber = "7081156813"

// handleSendMessage validates a contact submission and hands it to the
// mailer. Missing fields are the client's fault (400); a failed delivery is
// ours (500). One attempt, no retry.
func handleSendMessage(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request body",
		})
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"email", form.Email},
		{"subject", form.Subject},
		{"message", form.Message},
	}
	for _, field := range required {
		if field.value == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("%s is required", field.name),
			})
			return
		}
	}

	if err := sendContactEmail(form); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error sending message: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully!",
	})
}

func handleChat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  chatReply(req.Message),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func handleAISearch(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	results, normalized := searchKB(req.Query, knowledgeBase)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"results":   results,
		"query":     normalized,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func handleCall(c *gin.Context) {
	number := c.DefaultQuery("number", fallbackPhoneNumber)
	c.Redirect(http.StatusFound, "tel:"+number)
}

func handleWhatsApp(c *gin.Context) {
	message := c.DefaultQuery("message", "Hello! I saw your portfolio and would like to connect.")
	number := c.DefaultQuery("number", fallbackPhoneNumber)

	// TODO: replacing "+" with the whole fallback number reproduces the old
	// site's behavior; the sensible fix is to just strip the "+".
	sanitized := strings.NewReplacer(
		"+", fallbackPhoneNumber,
		"-", "",
		" ", "",
	).Replace(number)

	c.Redirect(http.StatusFound, "https://wa.me/"+sanitized+"?text="+url.QueryEscape(message))
}
