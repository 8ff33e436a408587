package history

import "time"

// TableName is the search history table.
const TableName = "search_history"

// SearchRecord is one recorded nearby search.
type SearchRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Latitude     float64   `gorm:"not null" json:"latitude"`
	Longitude    float64   `gorm:"not null" json:"longitude"`
	RadiusMeters int       `gorm:"not null" json:"radiusMeters"`
	ResultLimit  int       `gorm:"not null" json:"limit"`
	SortByRating bool      `gorm:"not null;default:false" json:"sortByRating"`
	Results      int       `gorm:"not null" json:"results"`
	RayID        string    `gorm:"size:64;index" json:"rayId,omitempty"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

// TableName implements gorm's Tabler.
func (SearchRecord) TableName() string {
	return TableName
}
