package entities

import "time"

const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"

	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

// OrderSnapshot - нормализованный срез записи заказа модуля.
// Status хранит "родной" статус модуля как есть, без перевода.
type OrderSnapshot struct {
	ID            string
	Kind          JobKind
	Status        string
	PaymentStatus string
	Pickup        string
	Dropoff       string
	Fare          float64
	CustomerName  string
	CreatedAt     time.Time
}

// DriverInfo - снепшот исполнителя, записываемый в заказ модуля при захвате.
type DriverInfo struct {
	WorkerID      int64
	Name          string
	Phone         string
	VehicleType   string
	VehicleNumber string
	AssignedAt    time.Time
}

type OrderEventType string

const (
	OrderEventCreated   OrderEventType = "created"
	OrderEventCancelled OrderEventType = "cancelled"
)

func (t OrderEventType) String() string {
	return string(t)
}

// OrderEvent - событие из приложения модуля (Kafka).
type OrderEvent struct {
	OrderID string
	Kind    JobKind
	Type    OrderEventType
	Reason  string
}
