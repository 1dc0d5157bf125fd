package request_models

type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category"`
	RegionText  string   `json:"region_text"`
	Description string   `json:"description"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Keywords    []string `json:"keywords"`
}
