package entities

import "time"

// Facility - склад/точка выдачи, с которой отгружаются food/grocery/retail.
type Facility struct {
	ID        int64
	Name      string
	Line      string
	City      string
	Latitude  float64
	Longitude float64
	IsActive  bool
	CreatedAt time.Time
}

func (f *Facility) Address() Address {
	return Address{
		Name:      f.Name,
		Line:      f.Line,
		City:      f.City,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
	}
}
