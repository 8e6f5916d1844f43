package content

import "gorm.io/gorm"

// Track is a top-level ordered grouping of topics. Content is authored
// externally and read-only at runtime.
type Track struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:true"`
}
