package models

// Store keys of the content collections.
const (
	KeyPersonalInfo = "personalInfo"
	KeyProjects     = "projects"
	KeyBlogPosts    = "blogPosts"
	KeySiteConfig   = "siteConfig"
	KeyAnalytics    = "analytics"
)

// Store keys of UI preferences written by the front end as opaque JSON.
const (
	KeyProfileSettings = "profileSettings"
	KeyProfileImageUrl = "profileImageUrl"
	KeyTheme           = "theme"
)

var CollectionKeys = []string{KeyPersonalInfo, KeyProjects, KeyBlogPosts, KeySiteConfig, KeyAnalytics}

var PreferenceKeys = []string{KeyProfileSettings, KeyProfileImageUrl, KeyTheme}

func IsPreferenceKey(key string) bool {
	for _, k := range PreferenceKeys {
		if k == key {
			return true
		}
	}
	return false
}
