package main

import "strings"

// chatRule binds a set of trigger words to one canned reply.
type chatRule struct {
	Category string
	Triggers []string
	Reply    string
}

// chatRules is checked top to bottom; the first rule with a trigger present
// in the message wins. Order matters: "work" appears in both the projects
// and experience trigger sets, and projects must win.
var chatRules = []chatRule{
	{
		Category: "projects",
		Triggers: []string{"project", "work", "portfolio", "build"},
		Reply:    "I have several exciting projects including an E-Commerce website built with Go, a Task Management App with React, and a Data Visualization Dashboard. You can view all my projects on the Projects page!",
	},
	{
		Category: "contact",
		Triggers: []string{"contact", "reach", "email", "phone", "call"},
		Reply:    "You can contact me through multiple channels: Email me at rajat.jaiswalmgs2@gmail.com, call me at 7081156813, or message me on WhatsApp. I'm always happy to connect!",
	},
	{
		Category: "skills",
		Triggers: []string{"skill", "technology", "programming", "language"},
		Reply:    "I specialize in Python, JavaScript, HTML5, CSS3, Go, React, and modern web technologies. I also have experience with databases, APIs, and cloud services.",
	},
	{
		Category: "greeting",
		Triggers: []string{"hello", "hi", "hey", "greeting"},
		Reply:    "Hello! I'm your AI assistant. I can help you learn more about this portfolio, the projects, or how to get in touch. What would you like to know?",
	},
	{
		Category: "experience",
		Triggers: []string{"experience", "work", "job", "career"},
		Reply:    "I have 3+ years of experience in web development, working with various technologies and frameworks. I've completed numerous freelance projects and continue to learn new technologies.",
	},
	{
		Category: "education",
		Triggers: []string{"education", "degree", "study", "learn"},
		Reply:    "I have a Bachelor's degree in Computer Science and a Full Stack Development Certification. I'm passionate about continuous learning and staying updated with the latest technologies.",
	},
}

const defaultChatReply = "That's an interesting question! I'm here to help you learn more about this portfolio. You can ask me about projects, skills, contact information, or anything else you'd like to know."

// chatReply picks the canned response for a user message. Triggers are
// matched by substring against the whole normalized message, not by token,
// so "working" still triggers "work". Always returns a non-empty reply.
func chatReply(message string) string {
	normalized := normalizeText(message)

	for _, rule := range chatRules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(normalized, trigger) {
				return rule.Reply
			}
		}
	}
	return defaultChatReply
}
