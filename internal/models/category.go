package models

// Category is reference data seeded out-of-band; the API never mutates it.
type Category struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Slug  string `gorm:"unique;not null" json:"slug"`
	Color string `json:"color"`
	Emoji string `json:"emoji,omitempty"`
}
