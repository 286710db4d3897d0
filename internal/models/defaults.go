package models

import "time"

// Default* return fresh copies of the content seeded into an empty store.

func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{
		Name:         "Alex Morgan",
		Title:        "Full Stack Developer",
		Email:        "hello@alexmorgan.dev",
		Phone:        "+1 (555) 010-2030",
		Location:     "Portland, OR",
		Bio:          "I build fast, accessible web applications and the services behind them.",
		Avatar:       "/images/avatar.jpg",
		Resume:       "/files/resume.pdf",
		Availability: "Open to freelance work",
		Social: SocialLinks{
			Github:   "https://github.com/alexmorgan",
			Linkedin: "https://linkedin.com/in/alexmorgan",
			Twitter:  "https://twitter.com/alexmorgan",
			Email:    "mailto:hello@alexmorgan.dev",
		},
		Skills: []Skill{
			{Name: "Go", Level: 90, Category: "Backend"},
			{Name: "TypeScript", Level: 85, Category: "Frontend"},
			{Name: "React", Level: 85, Category: "Frontend"},
			{Name: "PostgreSQL", Level: 75, Category: "Database"},
			{Name: "Docker", Level: 70, Category: "DevOps"},
		},
		Stats: ProfileStats{
			YearsExperience:   6,
			ProjectsCompleted: 42,
			HappyClients:      25,
			Awards:            3,
		},
	}
}

func DefaultProjects() []Project {
	return []Project{
		{
			ID:           1,
			Title:        "Task Board",
			Description:  "Realtime kanban board with drag and drop and offline support.",
			Image:        "/images/projects/task-board.png",
			Technologies: []string{"React", "TypeScript", "Go"},
			Category:     "Web App",
			GithubUrl:    "https://github.com/alexmorgan/task-board",
			LiveUrl:      "https://tasks.alexmorgan.dev",
			Status:       "completed",
			Featured:     true,
			PublishDate:  "2024-03-12",
		},
		{
			ID:           2,
			Title:        "Weather Dashboard",
			Description:  "City forecasts with charts built on a public weather API.",
			Image:        "/images/projects/weather.png",
			Technologies: []string{"Vue", "Chart.js"},
			Category:     "Web App",
			GithubUrl:    "https://github.com/alexmorgan/weather",
			Status:       "completed",
			Featured:     false,
			PublishDate:  "2023-11-02",
		},
		{
			ID:           3,
			Title:        "Link Shortener",
			Description:  "Self-hosted URL shortener with click analytics.",
			Image:        "/images/projects/shortener.png",
			Technologies: []string{"Go", "SQLite", "Docker"},
			Category:     "Backend",
			GithubUrl:    "https://github.com/alexmorgan/short",
			Status:       "in-progress",
			Featured:     true,
			PublishDate:  "2024-07-30",
		},
	}
}

func DefaultBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:          1,
			Title:       "Getting Started with Go Modules",
			Slug:        "getting-started-with-go-modules",
			Excerpt:     "A practical walkthrough of modules, versions and replace directives.",
			Content:     "Go modules are the unit of versioning in Go...",
			Author:      "Alex Morgan",
			Tags:        []string{"go", "tooling"},
			Category:    "Tutorial",
			ReadTime:    "6 min read",
			Featured:    true,
			PublishDate: "2024-05-20",
		},
		{
			ID:          2,
			Title:       "Designing Accessible Forms",
			Slug:        "designing-accessible-forms",
			Excerpt:     "Labels, errors and focus order that work for everyone.",
			Content:     "Accessible forms start with semantic HTML...",
			Author:      "Alex Morgan",
			Tags:        []string{"a11y", "frontend"},
			Category:    "Design",
			ReadTime:    "4 min read",
			Featured:    false,
			PublishDate: "2024-02-08",
		},
	}
}

func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:    "Alex Morgan",
		Description: "Portfolio and blog of Alex Morgan, full stack developer.",
		Keywords:    []string{"portfolio", "developer", "go", "react"},
		Author:      "Alex Morgan",
		Url:         "https://alexmorgan.dev",
		Navigation: []NavItem{
			{Name: "Home", Path: "/"},
			{Name: "About", Path: "/about"},
			{Name: "Portfolio", Path: "/portfolio"},
			{Name: "Blog", Path: "/blog"},
			{Name: "Contact", Path: "/contact"},
		},
		Social: SocialLinks{
			Github:   "https://github.com/alexmorgan",
			Linkedin: "https://linkedin.com/in/alexmorgan",
			Twitter:  "https://twitter.com/alexmorgan",
		},
		Theme: "light",
	}
}

func DefaultAnalytics(now time.Time) Analytics {
	return Analytics{
		PageViews:   make(map[string]int),
		LastUpdated: now,
	}
}
