package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// TeamMember represents a member shown on the team page. Optional fields
// serialize as JSON null when unset.
type TeamMember struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	Image       null.String `json:"image"`
	LinkedinURL null.String `json:"linkedinUrl"`
	GithubURL   null.String `json:"githubUrl"`
	TwitterURL  null.String `json:"twitterUrl"`
	Email       null.String `json:"email"`
	Order       int         `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TeamMemberInput represents the request body for creating or replacing a
// team member. Empty optional strings persist as null, not "".
type TeamMemberInput struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Bio         string `json:"bio" binding:"required"`
	Image       string `json:"image"`
	LinkedinURL string `json:"linkedinUrl"`
	GithubURL   string `json:"githubUrl"`
	TwitterURL  string `json:"twitterUrl"`
	Email       string `json:"email"`
	Order       int    `json:"order"`
}

// SocialLinks groups a member's contact links for the public listing.
type SocialLinks struct {
	Linkedin null.String `json:"linkedin"`
	Github   null.String `json:"github"`
	Twitter  null.String `json:"twitter"`
	Email    null.String `json:"email"`
}

// TeamMemberPublic is the shape the public team listing renders: image
// falls back to a placeholder and links are grouped under "social".
type TeamMemberPublic struct {
	ID     uint        `json:"id"`
	Name   string      `json:"name"`
	Role   string      `json:"role"`
	Bio    string      `json:"bio"`
	Image  string      `json:"image"`
	Social SocialLinks `json:"social"`
}

// PlaceholderImage is served when a member has no image set.
const PlaceholderImage = "/team/placeholder.jpg"

// Public converts a member to its public listing shape.
func (m *TeamMember) Public() TeamMemberPublic {
	image := PlaceholderImage
	if m.Image.Valid && m.Image.String != "" {
		image = m.Image.String
	}
	return TeamMemberPublic{
		ID:    m.ID,
		Name:  m.Name,
		Role:  m.Role,
		Bio:   m.Bio,
		Image: image,
		Social: SocialLinks{
			Linkedin: m.LinkedinURL,
			Github:   m.GithubURL,
			Twitter:  m.TwitterURL,
			Email:    m.Email,
		},
	}
}
