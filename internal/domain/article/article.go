package article

import "time"

// Article rows are only created through the schema seeds in this service;
// the authoring flows live elsewhere.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Body        string    `json:"body"`
	TagList     []string  `json:"tagList,omitempty"`
	AuthorID    string    `json:"authorId"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
