package entities

import "time"

type JobKind string

const (
	KindCourier JobKind = "courier"
	KindRide    JobKind = "ride"
	KindFood    JobKind = "food"
	KindGrocery JobKind = "grocery"
	KindRetail  JobKind = "retail"
)

func (k JobKind) String() string {
	return string(k)
}

func (k JobKind) IsValid() bool {
	switch k {
	case KindCourier, KindRide, KindFood, KindGrocery, KindRetail:
		return true
	}
	return false
}

func AllJobKinds() []JobKind {
	return []JobKind{KindCourier, KindRide, KindFood, KindGrocery, KindRetail}
}

type Address struct {
	Name      string
	Line      string
	City      string
	Latitude  float64
	Longitude float64
}

// Job - нормализованное представление заказа в ленте исполнителя.
// Вычисляется на каждый запрос, нигде не сохраняется.
type Job struct {
	ID                  string
	Kind                JobKind
	Pickup              Address
	Dropoff             Address
	Fare                float64
	Distance            float64
	VehicleType         string
	CustomerName        string
	CustomerPhone       string
	ItemDescription     string
	SpecialInstructions string
	CreatedAt           time.Time
}
