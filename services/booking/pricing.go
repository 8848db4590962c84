package booking

import (
	"readycleans/models"
)

// RateTable maps (service, unit size) to a whole-dollar base price and each
// add-on to a flat surcharge. It is immutable once built.
type RateTable struct {
	base   map[models.ServiceType]map[models.UnitSize]int
	addOns map[models.AddOn]int
}

// NewRateTable copies the given maps so later edits by the caller cannot
// change prices.
func NewRateTable(base map[models.ServiceType]map[models.UnitSize]int, addOns map[models.AddOn]int) RateTable {
	t := RateTable{
		base:   make(map[models.ServiceType]map[models.UnitSize]int, len(base)),
		addOns: make(map[models.AddOn]int, len(addOns)),
	}
	for svc, sizes := range base {
		col := make(map[models.UnitSize]int, len(sizes))
		for size, price := range sizes {
			col[size] = price
		}
		t.base[svc] = col
	}
	for a, price := range addOns {
		t.addOns[a] = price
	}
	return t
}

var defaultRates = NewRateTable(
	map[models.ServiceType]map[models.UnitSize]int{
		models.ServiceStandardClean: {
			models.UnitStudio:            125,
			models.UnitOneBedOneBath:     150,
			models.UnitTwoBedOneBath:     200,
			models.UnitTwoBedTwoBath:     250,
			models.UnitThreeBedTwoBath:   300,
			models.UnitThreeBedThreeBath: 325,
			models.UnitFourBedTwoBath:    350,
			models.UnitFourBedThreeBath:  375,
			models.UnitFiveBedTwoBath:    425,
			models.UnitFiveBedThreeBath:  450,
		},
		models.ServiceAirbnbTurnover: {
			models.UnitStudio:            80,
			models.UnitOneBedOneBath:     130,
			models.UnitTwoBedOneBath:     180,
			models.UnitTwoBedTwoBath:     250,
			models.UnitThreeBedTwoBath:   300,
			models.UnitThreeBedThreeBath: 325,
			models.UnitFourBedTwoBath:    350,
			models.UnitFourBedThreeBath:  375,
			models.UnitFiveBedTwoBath:    425,
			models.UnitFiveBedThreeBath:  450,
		},
	},
	map[models.AddOn]int{
		models.AddOnOven:    35,
		models.AddOnFridge:  35,
		models.AddOnWindows: 35,
		models.AddOnSameDay: 75,
	},
)

// DefaultRateTable returns the published ReadyCleans price list.
func DefaultRateTable() RateTable {
	return defaultRates
}

// BasePrice returns the price for the pair, or 0 when the pair is not priced.
func (t RateTable) BasePrice(svc models.ServiceType, size models.UnitSize) int {
	return t.base[svc][size]
}

// HasRate reports whether the pair has an entry in the table.
func (t RateTable) HasRate(svc models.ServiceType, size models.UnitSize) bool {
	_, ok := t.base[svc][size]
	return ok
}

// AddOnPrice returns the surcharge for a, or 0 for unknown add-ons.
func (t RateTable) AddOnPrice(a models.AddOn) int {
	return t.addOns[a]
}

// ComputeTotal is base price plus every add-on surcharge. Duplicate add-ons
// are counted once.
func (t RateTable) ComputeTotal(svc models.ServiceType, size models.UnitSize, addOns models.AddOnSet) int {
	total := t.BasePrice(svc, size)
	for _, a := range models.NewAddOnSet(addOns...) {
		total += t.AddOnPrice(a)
	}
	return total
}

// ComputeTotal prices a selection against the default rate table.
func ComputeTotal(svc models.ServiceType, size models.UnitSize, addOns models.AddOnSet) int {
	return defaultRates.ComputeTotal(svc, size, addOns)
}

// RateRow is one line of the published price list.
type RateRow struct {
	UnitSize  models.UnitSize `json:"unitSize"`
	UnitLabel string          `json:"unitLabel"`
	Price     int             `json:"price"`
}

// ServiceRates is the price list for a single service.
type ServiceRates struct {
	ServiceType  models.ServiceType `json:"serviceType"`
	ServiceLabel string             `json:"serviceLabel"`
	Rates        []RateRow          `json:"rates"`
}

// AddOnRate is the surcharge for one add-on.
type AddOnRate struct {
	AddOn models.AddOn `json:"addOn"`
	Label string       `json:"label"`
	Price int          `json:"price"`
}

// PriceList is the rate table flattened for display.
type PriceList struct {
	Services []ServiceRates `json:"services"`
	AddOns   []AddOnRate    `json:"addOns"`
}

// PriceList lists priced services and add-ons in display order.
func (t RateTable) PriceList() PriceList {
	var list PriceList
	for _, svc := range models.ServiceTypes {
		if _, ok := t.base[svc]; !ok {
			continue
		}
		sr := ServiceRates{ServiceType: svc, ServiceLabel: svc.Label()}
		for _, size := range models.UnitSizes {
			if !t.HasRate(svc, size) {
				continue
			}
			sr.Rates = append(sr.Rates, RateRow{
				UnitSize:  size,
				UnitLabel: size.Label(),
				Price:     t.BasePrice(svc, size),
			})
		}
		list.Services = append(list.Services, sr)
	}
	for _, a := range models.AddOns {
		if price, ok := t.addOns[a]; ok {
			list.AddOns = append(list.AddOns, AddOnRate{AddOn: a, Label: a.Label(), Price: price})
		}
	}
	return list
}
