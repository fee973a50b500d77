package registry

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"dispatch/internal/entities"
)

// Registry - чистый справочник дескрипторов, без состояния.
// Неизвестная вертикаль - ошибка программиста, поэтому паника.
type Registry struct{}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) Describe(kind entities.JobKind) Descriptor {
	desc, ok := descriptors()[kind]
	if !ok {
		panic(fmt.Sprintf("registry: unknown job kind %q", kind))
	}
	return desc
}

func (r *Registry) All() []Descriptor {
	all := make([]Descriptor, 0, len(entities.AllJobKinds()))
	for _, kind := range entities.AllJobKinds() {
		all = append(all, r.Describe(kind))
	}
	return all
}

// codOrPaid - оплачено либо наличные при получении (оплата еще pending).
func codOrPaid() sq.Sqlizer {
	return sq.Or{
		sq.Eq{"payment_status": entities.PaymentPaid},
		sq.Eq{"payment_method": entities.PaymentMethodCashOnDelivery},
	}
}

func descriptors() map[entities.JobKind]Descriptor {
	return map[entities.JobKind]Descriptor{
		entities.KindCourier: {
			Kind:         entities.KindCourier,
			Table:        "courier_orders",
			StatusColumn: "status",
			Open: sq.And{
				sq.Eq{"status": "pending"},
				codOrPaid(),
			},
			Columns: ColumnMap{
				Pickup:              FieldSource{Column: "pickup_address"},
				Dropoff:             FieldSource{Column: "drop_address"},
				Fare:                NumericSource{Column: "delivery_charge"},
				Distance:            NumericSource{Column: "distance_km"},
				VehicleType:         FieldSource{Column: "vehicle_type", Default: "bike"},
				CustomerName:        FieldSource{Column: "sender_name"},
				CustomerPhone:       FieldSource{Column: "sender_phone"},
				ItemDescription:     FieldSource{Column: "parcel_contents", Default: "Parcel"},
				SpecialInstructions: FieldSource{Column: "delivery_note"},
			},
			Statuses: map[entities.AssignmentStatus]StatusMapping{
				entities.AssignmentAccepted:  {OrderStatus: "assigned", TimestampColumn: "assigned_at"},
				entities.AssignmentPickedUp:  {OrderStatus: "picked_up", TimestampColumn: "picked_up_at"},
				entities.AssignmentDelivered: {OrderStatus: "delivered", TimestampColumn: "delivered_at"},
				entities.AssignmentCompleted: {OrderStatus: "delivered", Paid: PaidIfCOD},
				entities.AssignmentCancelled: {OrderStatus: "cancelled", TimestampColumn: "cancelled_at"},
			},
		},
		entities.KindRide: {
			Kind:         entities.KindRide,
			Table:        "ride_orders",
			StatusColumn: "status",
			// Поездка выдается в ленту независимо от оплаты:
			// тариф списывается по факту завершения (PaidAlways).
			Open:    sq.Eq{"status": "requested"},
			Columns: ColumnMap{
				Pickup:              FieldSource{Column: "pickup_location"},
				Dropoff:             FieldSource{Column: "drop_location"},
				Fare:                NumericSource{Column: "fare_amount"},
				Distance:            NumericSource{Column: "distance_km"},
				VehicleType:         FieldSource{Column: "cab_type", Default: "sedan"},
				CustomerName:        FieldSource{Column: "rider_name"},
				CustomerPhone:       FieldSource{Column: "rider_phone"},
				ItemDescription:     FieldSource{Default: "Passenger trip"},
				SpecialInstructions: FieldSource{Column: "ride_note"},
			},
			Statuses: map[entities.AssignmentStatus]StatusMapping{
				entities.AssignmentAccepted:  {OrderStatus: "driver_assigned", TimestampColumn: "driver_assigned_at"},
				entities.AssignmentPickedUp:  {OrderStatus: "started", TimestampColumn: "started_at"},
				entities.AssignmentDelivered: {OrderStatus: "completed", TimestampColumn: "completed_at"},
				entities.AssignmentCompleted: {OrderStatus: "completed", Paid: PaidAlways},
				entities.AssignmentCancelled: {OrderStatus: "cancelled", TimestampColumn: "cancelled_at"},
			},
		},
		entities.KindFood: {
			Kind:         entities.KindFood,
			Table:        "food_orders",
			StatusColumn: "status",
			Open: sq.And{
				sq.Eq{"status": "ready"},
				codOrPaid(),
			},
			Columns: ColumnMap{
				Dropoff:             FieldSource{Column: "delivery_address"},
				Fare:                NumericSource{Column: "total_amount"},
				Distance:            NumericSource{},
				VehicleType:         FieldSource{Default: "bike"},
				CustomerName:        FieldSource{Column: "customer_name"},
				CustomerPhone:       FieldSource{Column: "customer_phone"},
				ItemDescription:     FieldSource{Column: "items_summary", Default: "Food order"},
				SpecialInstructions: FieldSource{Column: "cooking_note"},
			},
			UsesFacilityPickup: true,
			Statuses: map[entities.AssignmentStatus]StatusMapping{
				entities.AssignmentAccepted:  {OrderStatus: "awaiting_pickup", TimestampColumn: "driver_assigned_at"},
				entities.AssignmentPickedUp:  {OrderStatus: "out_for_delivery", TimestampColumn: "dispatched_at"},
				entities.AssignmentDelivered: {OrderStatus: "delivered", TimestampColumn: "delivered_at"},
				entities.AssignmentCompleted: {OrderStatus: "delivered", Paid: PaidIfCOD},
				entities.AssignmentCancelled: {OrderStatus: "cancelled", TimestampColumn: "cancelled_at"},
			},
		},
		entities.KindGrocery: {
			Kind:         entities.KindGrocery,
			Table:        "grocery_orders",
			StatusColumn: "status",
			Open: sq.And{
				sq.Eq{"status": "packed"},
				codOrPaid(),
			},
			Columns: ColumnMap{
				Dropoff:             FieldSource{Column: "delivery_address"},
				Fare:                NumericSource{Column: "total_amount"},
				Distance:            NumericSource{},
				VehicleType:         FieldSource{Default: "bike"},
				CustomerName:        FieldSource{Column: "customer_name"},
				CustomerPhone:       FieldSource{Column: "customer_phone"},
				ItemDescription:     FieldSource{Column: "basket_summary", Default: "Grocery basket"},
				SpecialInstructions: FieldSource{Column: "delivery_instruction"},
			},
			UsesFacilityPickup: true,
			Statuses: map[entities.AssignmentStatus]StatusMapping{
				entities.AssignmentAccepted:  {OrderStatus: "driver_assigned", TimestampColumn: "driver_assigned_at"},
				entities.AssignmentPickedUp:  {OrderStatus: "out_for_delivery", TimestampColumn: "out_for_delivery_at"},
				entities.AssignmentDelivered: {OrderStatus: "delivered", TimestampColumn: "delivered_at"},
				entities.AssignmentCompleted: {OrderStatus: "delivered", Paid: PaidIfCOD},
				entities.AssignmentCancelled: {OrderStatus: "cancelled", TimestampColumn: "cancelled_at"},
			},
		},
		entities.KindRetail: {
			Kind:         entities.KindRetail,
			Table:        "retail_orders",
			StatusColumn: "status",
			Open: sq.And{
				sq.Eq{"status": "packed"},
				codOrPaid(),
			},
			Columns: ColumnMap{
				Dropoff:             FieldSource{Column: "shipping_address"},
				Fare:                NumericSource{Column: "shipping_charge"},
				Distance:            NumericSource{},
				VehicleType:         FieldSource{Default: "van"},
				CustomerName:        FieldSource{Column: "customer_name"},
				CustomerPhone:       FieldSource{Column: "customer_phone"},
				ItemDescription:     FieldSource{Column: "item_summary", Default: "Retail shipment"},
				SpecialInstructions: FieldSource{Column: "shipping_note"},
			},
			UsesFacilityPickup: true,
			Statuses: map[entities.AssignmentStatus]StatusMapping{
				entities.AssignmentAccepted:  {OrderStatus: "courier_assigned", TimestampColumn: "courier_assigned_at"},
				entities.AssignmentPickedUp:  {OrderStatus: "shipped", TimestampColumn: "shipped_at"},
				entities.AssignmentDelivered: {OrderStatus: "delivered", TimestampColumn: "delivered_at"},
				entities.AssignmentCompleted: {OrderStatus: "delivered", Paid: PaidIfCOD},
				entities.AssignmentCancelled: {OrderStatus: "cancelled", TimestampColumn: "cancelled_at"},
			},
		},
	}
}
