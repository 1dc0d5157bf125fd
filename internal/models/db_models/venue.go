package db_models

import "github.com/lib/pq"

// Venue is a stored place record, the backing row behind the candidate
// source. RegionText keeps the raw address line; Region holds the
// canonical identifier resolved at ingest time.
type Venue struct {
	BaseModel
	Name        string `gorm:"index"`
	Category    string
	Region      string `gorm:"index"`
	RegionText  string
	Description string
	Latitude    float64
	Longitude   float64
	Keywords    pq.StringArray `gorm:"type:text[]"`
}
