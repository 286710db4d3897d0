package models

type Project struct {
	ID              int      `json:"id" validate:"required|int|min:1"`
	Title           string   `json:"title" validate:"required|maxLen:200"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Image           string   `json:"image,omitempty"`
	Technologies    []string `json:"technologies"`
	Category        string   `json:"category,omitempty"`
	GithubUrl       string   `json:"githubUrl,omitempty"`
	LiveUrl         string   `json:"liveUrl,omitempty"`
	Status          string   `json:"status,omitempty"`
	Featured        bool     `json:"featured"`
	PublishDate     string   `json:"publishDate"`
}

// ProjectPatch lists the mutable fields of a Project. Nil fields are left as they are.
type ProjectPatch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	LongDescription *string   `json:"longDescription,omitempty"`
	Image           *string   `json:"image,omitempty"`
	Technologies    *[]string `json:"technologies,omitempty"`
	Category        *string   `json:"category,omitempty"`
	GithubUrl       *string   `json:"githubUrl,omitempty"`
	LiveUrl         *string   `json:"liveUrl,omitempty"`
	Status          *string   `json:"status,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	PublishDate     *string   `json:"publishDate,omitempty"`
}

func (p *Project) Apply(patch ProjectPatch) {
	setIf(&p.Title, patch.Title)
	setIf(&p.Description, patch.Description)
	setIf(&p.LongDescription, patch.LongDescription)
	setIf(&p.Image, patch.Image)
	setIf(&p.Technologies, patch.Technologies)
	setIf(&p.Category, patch.Category)
	setIf(&p.GithubUrl, patch.GithubUrl)
	setIf(&p.LiveUrl, patch.LiveUrl)
	setIf(&p.Status, patch.Status)
	setIf(&p.Featured, patch.Featured)
	setIf(&p.PublishDate, patch.PublishDate)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (p Project) GetID() int { return p.ID }
