package registry

import (
	sq "github.com/Masterminds/squirrel"

	"dispatch/internal/entities"
)

// FieldSource описывает, откуда модуль берет нормализованное поле ленты:
// либо колонка его таблицы, либо константа по умолчанию.
type FieldSource struct {
	Column  string
	Default string
}

type NumericSource struct {
	Column  string
	Default float64
}

type ColumnMap struct {
	Pickup              FieldSource
	Dropoff             FieldSource
	Fare                NumericSource
	Distance            NumericSource
	VehicleType         FieldSource
	CustomerName        FieldSource
	CustomerPhone       FieldSource
	ItemDescription     FieldSource
	SpecialInstructions FieldSource
}

// PaidRule - что делать с payment_status заказа при завершении.
type PaidRule string

const (
	PaidNone   PaidRule = ""
	PaidIfCOD  PaidRule = "cod_only"
	PaidAlways PaidRule = "always"
)

// StatusMapping переводит статус назначения в словарь конкретного модуля:
// значение статуса заказа, колонка таймстампа и правило оплаты.
type StatusMapping struct {
	OrderStatus     string
	TimestampColumn string
	Paid            PaidRule
}

// Descriptor - декларативное описание вертикали. Новая вертикаль - это
// новая запись в реестре, а не новый код.
type Descriptor struct {
	Kind         entities.JobKind
	Table        string
	StatusColumn string

	// Open - предикат "заказ открыт для диспетчеризации":
	// статус + платежные правила, свои у каждой вертикали.
	Open sq.Sqlizer

	Columns            ColumnMap
	UsesFacilityPickup bool

	Statuses map[entities.AssignmentStatus]StatusMapping
}
