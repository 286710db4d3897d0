package models

// Snapshot is the backup document: every collection plus the export time.
type Snapshot struct {
	PersonalInfo *PersonalInfo `json:"personalInfo"`
	Projects     []Project     `json:"projects"`
	BlogPosts    []BlogPost    `json:"blogPosts"`
	SiteConfig   *SiteConfig   `json:"siteConfig"`
	Analytics    *Analytics    `json:"analytics"`
	Timestamp    string        `json:"timestamp"`
}
