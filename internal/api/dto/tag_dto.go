package dto

// TagResponse envelope item.
type TagResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	IsActive  bool    `json:"isActive"`
	SortOrder int     `json:"sortOrder"`
}
