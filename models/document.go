package models

import "time"

const (
	DocumentDraft     = "draft"
	DocumentPublished = "published"
)

// Document is a listed HR document (handbooks, templates, policies).
type Document struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(200)" json:"title"`
	Category     string    `gorm:"type:varchar(100)" json:"category"`
	Status       string    `gorm:"type:varchar(20)" json:"status"`
	Size         string    `gorm:"type:varchar(20)" json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// DefaultDocuments is the catalog seeded into an empty documents table.
func DefaultDocuments() []Document {
	return []Document{
		{
			ID:           "doc-employee-handbook",
			Title:        "Employee Handbook 2024",
			Category:     "Policies",
			Status:       DocumentPublished,
			Size:         "2.5 MB",
			LastModified: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "doc-onboarding-checklist",
			Title:        "Onboarding Checklist",
			Category:     "Templates",
			Status:       DocumentPublished,
			Size:         "1.2 MB",
			LastModified: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "doc-performance-review",
			Title:        "Performance Review Template",
			Category:     "Templates",
			Status:       DocumentDraft,
			Size:         "890 KB",
			LastModified: time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC),
		},
	}
}
