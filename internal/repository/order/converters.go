package order

import (
	"dispatch/internal/entities"
	"dispatch/internal/registry"
)

func ToJob(desc registry.Descriptor, o *OpenOrderDB) entities.Job {
	cols := desc.Columns
	return entities.Job{
		ID:                  o.ID,
		Kind:                desc.Kind,
		Pickup:              entities.Address{Line: textOrDefault(o.Pickup, cols.Pickup)},
		Dropoff:             entities.Address{Line: textOrDefault(o.Dropoff, cols.Dropoff)},
		Fare:                numberOrDefault(o.Fare, cols.Fare),
		Distance:            numberOrDefault(o.Distance, cols.Distance),
		VehicleType:         textOrDefault(o.VehicleType, cols.VehicleType),
		CustomerName:        textOrDefault(o.CustomerName, cols.CustomerName),
		CustomerPhone:       textOrDefault(o.CustomerPhone, cols.CustomerPhone),
		ItemDescription:     textOrDefault(o.ItemDescription, cols.ItemDescription),
		SpecialInstructions: textOrDefault(o.SpecialInstructions, cols.SpecialInstructions),
		CreatedAt:           o.CreatedAt,
	}
}

func ToSnapshot(desc registry.Descriptor, s *SnapshotDB) *entities.OrderSnapshot {
	if s == nil {
		return nil
	}
	cols := desc.Columns
	return &entities.OrderSnapshot{
		ID:            s.ID,
		Kind:          desc.Kind,
		Status:        s.Status,
		PaymentStatus: s.PaymentStatus,
		Pickup:        textOrDefault(s.Pickup, cols.Pickup),
		Dropoff:       textOrDefault(s.Dropoff, cols.Dropoff),
		Fare:          numberOrDefault(s.Fare, cols.Fare),
		CustomerName:  textOrDefault(s.CustomerName, cols.CustomerName),
		CreatedAt:     s.CreatedAt,
	}
}

func textOrDefault(value *string, src registry.FieldSource) string {
	if value == nil || *value == "" {
		return src.Default
	}
	return *value
}

func numberOrDefault(value *float64, src registry.NumericSource) float64 {
	if value == nil {
		return src.Default
	}
	return *value
}
