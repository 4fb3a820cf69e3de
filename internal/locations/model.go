package locations

// Location types from the mobile client.
const (
	TypeHome  = "home"
	TypeWork  = "work"
	TypeOther = "other"
)

// SavedLocation is a named place a rider can request pickups from.
type SavedLocation struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Type      string  `json:"type"`
}

// SaveRequest is the body for POST /api/locations/save.
type SaveRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Type      string  `json:"type"`
}
