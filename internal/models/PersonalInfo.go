package models

type SocialLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
}

type ProfileStats struct {
	YearsExperience   int `json:"yearsExperience"`
	ProjectsCompleted int `json:"projectsCompleted"`
	HappyClients      int `json:"happyClients"`
	Awards            int `json:"awards"`
}

type PersonalInfo struct {
	Name         string       `json:"name" validate:"required"`
	Title        string       `json:"title" validate:"required"`
	Email        string       `json:"email" validate:"email"`
	Phone        string       `json:"phone,omitempty"`
	Location     string       `json:"location,omitempty"`
	Bio          string       `json:"bio"`
	Avatar       string       `json:"avatar,omitempty"`
	Resume       string       `json:"resume,omitempty"`
	Availability string       `json:"availability,omitempty"`
	Social       SocialLinks  `json:"social"`
	Skills       []Skill      `json:"skills"`
	Stats        ProfileStats `json:"stats"`
}

type PersonalInfoPatch struct {
	Name         *string       `json:"name,omitempty"`
	Title        *string       `json:"title,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Location     *string       `json:"location,omitempty"`
	Bio          *string       `json:"bio,omitempty"`
	Avatar       *string       `json:"avatar,omitempty"`
	Resume       *string       `json:"resume,omitempty"`
	Availability *string       `json:"availability,omitempty"`
	Social       *SocialLinks  `json:"social,omitempty"`
	Skills       *[]Skill      `json:"skills,omitempty"`
	Stats        *ProfileStats `json:"stats,omitempty"`
}

func (p *PersonalInfo) Apply(patch PersonalInfoPatch) {
	setIf(&p.Name, patch.Name)
	setIf(&p.Title, patch.Title)
	setIf(&p.Email, patch.Email)
	setIf(&p.Phone, patch.Phone)
	setIf(&p.Location, patch.Location)
	setIf(&p.Bio, patch.Bio)
	setIf(&p.Avatar, patch.Avatar)
	setIf(&p.Resume, patch.Resume)
	setIf(&p.Availability, patch.Availability)
	setIf(&p.Social, patch.Social)
	setIf(&p.Skills, patch.Skills)
	setIf(&p.Stats, patch.Stats)
}
