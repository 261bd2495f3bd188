// Package seed holds the fixed fallback records served when the entity
// store is unreachable, so public pages never render empty.
package seed

import (
	"time"

	"github.com/volatiletech/null/v8"

	"sdp-site.backend/internal/domain/entities"
)

// Events returns the fallback events listing.
func Events() []*entities.Event {
	return []*entities.Event{
		{
			ID:          1,
			Title:       "Web Development Workshop",
			Description: "Learn the fundamentals of modern web development with React and Next.js",
			Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Time:        "14:00",
			Location:    "Room 301, Tech Building",
			Category:    "Workshop",
		},
		{
			ID:          2,
			Title:       "AI & Machine Learning Seminar",
			Description: "Explore the latest trends in AI and machine learning with industry experts",
			Date:        time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC),
			Time:        "16:00",
			Location:    "Auditorium Hall",
			Category:    "Seminar",
		},
		{
			ID:          3,
			Title:       "Hackathon 2026",
			Description: "48-hour coding marathon to build innovative solutions",
			Date:        time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
			Time:        "09:00",
			Location:    "Innovation Lab",
			Category:    "Hackathon",
		},
	}
}

// TeamMembers returns the fallback team listing in its public shape.
func TeamMembers() []entities.TeamMemberPublic {
	return []entities.TeamMemberPublic{
		{
			ID:    1,
			Name:  "Alex Johnson",
			Role:  "President",
			Bio:   "Full-stack developer passionate about building scalable applications",
			Image: entities.PlaceholderImage,
			Social: entities.SocialLinks{
				Linkedin: null.StringFrom("https://linkedin.com"),
				Github:   null.StringFrom("https://github.com"),
				Email:    null.StringFrom("alex@sdp.com"),
			},
		},
		{
			ID:    2,
			Name:  "Sarah Chen",
			Role:  "Vice President",
			Bio:   "UI/UX designer focused on creating beautiful user experiences",
			Image: entities.PlaceholderImage,
			Social: entities.SocialLinks{
				Linkedin: null.StringFrom("https://linkedin.com"),
				Twitter:  null.StringFrom("https://twitter.com"),
				Email:    null.StringFrom("sarah@sdp.com"),
			},
		},
		{
			ID:    3,
			Name:  "Michael Brown",
			Role:  "Technical Lead",
			Bio:   "AI/ML enthusiast working on cutting-edge projects",
			Image: entities.PlaceholderImage,
			Social: entities.SocialLinks{
				Github:   null.StringFrom("https://github.com"),
				Linkedin: null.StringFrom("https://linkedin.com"),
				Email:    null.StringFrom("michael@sdp.com"),
			},
		},
		{
			ID:    4,
			Name:  "Emily Davis",
			Role:  "Events Coordinator",
			Bio:   "Organizing amazing events and building community connections",
			Image: entities.PlaceholderImage,
			Social: entities.SocialLinks{
				Linkedin: null.StringFrom("https://linkedin.com"),
				Twitter:  null.StringFrom("https://twitter.com"),
				Email:    null.StringFrom("emily@sdp.com"),
			},
		},
	}
}

// FAQs returns the fallback FAQ listing.
func FAQs() []*entities.FAQ {
	return []*entities.FAQ{
		{
			ID:       1,
			Question: "What is SDP?",
			Answer:   "SDP (Student Development Program) is a student-led initiative helping members grow their software skills through workshops, events, and real projects.",
			Order:    1,
			IsActive: true,
		},
	}
}
