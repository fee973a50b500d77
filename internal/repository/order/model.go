package order

import "time"

// OpenOrderDB - строка выборки открытых заказов. Поля, которых нет у
// вертикали, приходят как NULL и заполняются дефолтами дескриптора.
type OpenOrderDB struct {
	ID                  string
	CreatedAt           time.Time
	Pickup              *string
	Dropoff             *string
	Fare                *float64
	Distance            *float64
	VehicleType         *string
	CustomerName        *string
	CustomerPhone       *string
	ItemDescription     *string
	SpecialInstructions *string
}

type SnapshotDB struct {
	ID            string
	Status        string
	PaymentStatus string
	Pickup        *string
	Dropoff       *string
	Fare          *float64
	CustomerName  *string
	CreatedAt     time.Time
}
