package facility

import "time"

type FacilityDB struct {
	ID        int64
	Name      string
	Line      string
	City      string
	Latitude  float64
	Longitude float64
	IsActive  bool
	CreatedAt time.Time
}
