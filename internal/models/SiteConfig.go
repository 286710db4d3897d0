package models

type NavItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type SiteConfig struct {
	SiteName    string      `json:"siteName" validate:"required"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords"`
	Author      string      `json:"author"`
	Url         string      `json:"url,omitempty"`
	Navigation  []NavItem   `json:"navigation"`
	Social      SocialLinks `json:"social"`
	Theme       string      `json:"theme,omitempty"`
}

type SiteConfigPatch struct {
	SiteName    *string      `json:"siteName,omitempty"`
	Description *string      `json:"description,omitempty"`
	Keywords    *[]string    `json:"keywords,omitempty"`
	Author      *string      `json:"author,omitempty"`
	Url         *string      `json:"url,omitempty"`
	Navigation  *[]NavItem   `json:"navigation,omitempty"`
	Social      *SocialLinks `json:"social,omitempty"`
	Theme       *string      `json:"theme,omitempty"`
}

func (s *SiteConfig) Apply(patch SiteConfigPatch) {
	setIf(&s.SiteName, patch.SiteName)
	setIf(&s.Description, patch.Description)
	setIf(&s.Keywords, patch.Keywords)
	setIf(&s.Author, patch.Author)
	setIf(&s.Url, patch.Url)
	setIf(&s.Navigation, patch.Navigation)
	setIf(&s.Social, patch.Social)
	setIf(&s.Theme, patch.Theme)
}
