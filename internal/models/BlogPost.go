package models

type BlogPost struct {
	ID          int      `json:"id" validate:"required|int|min:1"`
	Title       string   `json:"title" validate:"required|maxLen:200"`
	Slug        string   `json:"slug,omitempty"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category,omitempty"`
	Image       string   `json:"image,omitempty"`
	ReadTime    string   `json:"readTime,omitempty"`
	Featured    bool     `json:"featured"`
	PublishDate string   `json:"publishDate"`
	Views       int      `json:"views" validate:"int|min:0"`
	Likes       int      `json:"likes" validate:"int|min:0"`
}

// BlogPostPatch lists the editable fields of a BlogPost. Counters are only
// changed through the increment operations.
type BlogPostPatch struct {
	Title       *string   `json:"title,omitempty"`
	Slug        *string   `json:"slug,omitempty"`
	Excerpt     *string   `json:"excerpt,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Author      *string   `json:"author,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Image       *string   `json:"image,omitempty"`
	ReadTime    *string   `json:"readTime,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
	PublishDate *string   `json:"publishDate,omitempty"`
}

func (b *BlogPost) Apply(patch BlogPostPatch) {
	setIf(&b.Title, patch.Title)
	setIf(&b.Slug, patch.Slug)
	setIf(&b.Excerpt, patch.Excerpt)
	setIf(&b.Content, patch.Content)
	setIf(&b.Author, patch.Author)
	setIf(&b.Tags, patch.Tags)
	setIf(&b.Category, patch.Category)
	setIf(&b.Image, patch.Image)
	setIf(&b.ReadTime, patch.ReadTime)
	setIf(&b.Featured, patch.Featured)
	setIf(&b.PublishDate, patch.PublishDate)
}

func (b BlogPost) GetID() int { return b.ID }
