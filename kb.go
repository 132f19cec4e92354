package main

// ResponseRecord is one answer the AI search can return. Records are built
// once at startup and never mutated, so handlers may share them freely.
type ResponseRecord struct {
	Title  string `json:"title"`
	Answer string `json:"answer"`
	Type   string `json:"type"`
}

// kbEntry pairs a topic key with its record. The knowledge base is a slice,
// not a map: match order is declaration order and must stay deterministic.
type kbEntry struct {
	Key    string
	Record ResponseRecord
}

var knowledgeBase = []kbEntry{
	// Portfolio related
	{"portfolio", ResponseRecord{
		Title:  "About This Portfolio",
		Answer: "This is a modern, responsive portfolio built with Go, featuring real-time chat, AI search, and interactive animations. It showcases web development skills and projects.",
		Type:   "ai",
	}},
	{"developer", ResponseRecord{
		Title:  "About the Developer",
		Answer: "I am a passionate Full-Stack Developer with expertise in Python, JavaScript, Go, React, and modern web technologies. I love creating innovative digital solutions.",
		Type:   "ai",
	}},
	{"projects", ResponseRecord{
		Title:  "Featured Projects",
		Answer: "My projects include an E-Commerce platform, Task Management app, Data Visualization dashboard, Personal blog, Weather app, and Browser games. Each project demonstrates different technical skills.",
		Type:   "ai",
	}},
	{"skills", ResponseRecord{
		Title:  "Technical Skills",
		Answer: "I specialize in Python, JavaScript, HTML5, CSS3, Go, Bootstrap, React, Node.js, MySQL databases, APIs, cloud services, and modern development tools.",
		Type:   "ai",
	}},
	{"contact", ResponseRecord{
		Title:  "How to Contact",
		Answer: "You can reach me via email at rajat.jaiswalmgs2@gmail.com, phone at 7081156813, WhatsApp, or through the contact form on this website.",
		Type:   "ai",
	}},
	{"experience", ResponseRecord{
		Title:  "Professional Experience",
		Answer: "I have one year of experience in Full Stack Development, working on various projects including personal projects, and continuous learning of new technologies.",
		Type:   "ai",
	}},
	{"education", ResponseRecord{
		Title:  "Education & Certifications",
		Answer: "I hold a Bachelor's degree in Computer Science and a Full Stack Development Certification. I'm committed to continuous learning and staying updated with the latest technologies.",
		Type:   "ai",
	}},
	// Technology related
	{"python", ResponseRecord{
		Title:  "Python Programming",
		Answer: "Python is a versatile programming language used for web development, data science, AI, and automation. It's known for its simple syntax and powerful libraries.",
		Type:   "ai",
	}},
	{"javascript", ResponseRecord{
		Title:  "JavaScript Development",
		Answer: "JavaScript is the language of the web, enabling interactive websites and applications. It's used for both frontend and backend development with frameworks like React and Node.js.",
		Type:   "ai",
	}},
	{"golang", ResponseRecord{
		Title:  "Go Programming",
		Answer: "Go is a statically typed language built for simplicity and concurrency. It powers fast web services with a small runtime footprint and a batteries-included standard library.",
		Type:   "ai",
	}},
	{"react", ResponseRecord{
		Title:  "React Library",
		Answer: "React is a JavaScript library for building user interfaces, particularly single-page applications. It uses a component-based architecture and virtual DOM for efficient rendering.",
		Type:   "ai",
	}},
	{"html", ResponseRecord{
		Title:  "HTML5",
		Answer: "HTML5 is the latest version of HTML, providing semantic elements, multimedia support, and improved accessibility. It's the foundation of modern web development.",
		Type:   "ai",
	}},
	{"css", ResponseRecord{
		Title:  "CSS3",
		Answer: "CSS3 brings advanced styling capabilities including animations, transitions, flexbox, grid, and responsive design features for creating modern, beautiful websites.",
		Type:   "ai",
	}},
	// General questions
	{"web development", ResponseRecord{
		Title:  "Web Development",
		Answer: "Web development involves creating websites and web applications using technologies like HTML, CSS, JavaScript, and various frameworks. It includes both frontend and backend development.",
		Type:   "ai",
	}},
	{"programming", ResponseRecord{
		Title:  "Programming",
		Answer: "Programming is the process of creating instructions for computers to follow. It involves problem-solving, logical thinking, and using programming languages to build software applications.",
		Type:   "ai",
	}},
	{"technology", ResponseRecord{
		Title:  "Technology Trends",
		Answer: "Current technology trends include AI/ML, cloud computing, mobile development, cybersecurity, and modern web frameworks. Staying updated with these trends is crucial for developers.",
		Type:   "ai",
	}},
}

// Fallback records for queries that match nothing in the knowledge base.
var (
	generalInfoRecord = ResponseRecord{
		Title:  "General Information",
		Answer: "I can help you with information about web development, programming, this portfolio, or general technology questions. Try asking about specific topics like Python, JavaScript, or web development.",
		Type:   "ai",
	}

	searchSuggestionRecord = ResponseRecord{
		Title:  "Search Suggestion",
		Answer: "I can provide information about web development, programming languages, this portfolio, or technology topics. Try asking about Python, JavaScript, React, Go, or web development.",
		Type:   "ai",
	}
)
