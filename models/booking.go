package models

import "time"

// ServiceType selects the pricing column for a booking.
type ServiceType string

const (
	ServiceStandardClean  ServiceType = "standard-clean"
	ServiceAirbnbTurnover ServiceType = "airbnb-turnover"
)

// ServiceTypes lists every service in display order.
var ServiceTypes = []ServiceType{ServiceStandardClean, ServiceAirbnbTurnover}

var serviceLabels = map[ServiceType]string{
	ServiceStandardClean:  "Standard Clean",
	ServiceAirbnbTurnover: "Airbnb Turnover",
}

func (s ServiceType) Valid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label returns the display name, or the raw value for unknown services.
func (s ServiceType) Label() string {
	if l, ok := serviceLabels[s]; ok {
		return l
	}
	return string(s)
}

// UnitSize is the bed/bath configuration of the unit being cleaned.
type UnitSize string

const (
	UnitStudio            UnitSize = "studio"
	UnitOneBedOneBath     UnitSize = "1bd-1ba"
	UnitTwoBedOneBath     UnitSize = "2bd-1ba"
	UnitTwoBedTwoBath     UnitSize = "2bd-2ba"
	UnitThreeBedTwoBath   UnitSize = "3bd-2ba"
	UnitThreeBedThreeBath UnitSize = "3bd-3ba"
	UnitFourBedTwoBath    UnitSize = "4bd-2ba"
	UnitFourBedThreeBath  UnitSize = "4bd-3ba"
	UnitFiveBedTwoBath    UnitSize = "5bd-2ba"
	UnitFiveBedThreeBath  UnitSize = "5bd-3ba"
)

// UnitSizes lists every unit size from smallest to largest.
var UnitSizes = []UnitSize{
	UnitStudio,
	UnitOneBedOneBath,
	UnitTwoBedOneBath,
	UnitTwoBedTwoBath,
	UnitThreeBedTwoBath,
	UnitThreeBedThreeBath,
	UnitFourBedTwoBath,
	UnitFourBedThreeBath,
	UnitFiveBedTwoBath,
	UnitFiveBedThreeBath,
}

var unitLabels = map[UnitSize]string{
	UnitStudio:            "Studio",
	UnitOneBedOneBath:     "1 Bed / 1 Bath",
	UnitTwoBedOneBath:     "2 Bed / 1 Bath",
	UnitTwoBedTwoBath:     "2 Bed / 2 Bath",
	UnitThreeBedTwoBath:   "3 Bed / 2 Bath",
	UnitThreeBedThreeBath: "3 Bed / 3 Bath",
	UnitFourBedTwoBath:    "4 Bed / 2 Bath",
	UnitFourBedThreeBath:  "4 Bed / 3 Bath",
	UnitFiveBedTwoBath:    "5 Bed / 2 Bath",
	UnitFiveBedThreeBath:  "5 Bed / 3 Bath",
}

func (u UnitSize) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

func (u UnitSize) Label() string {
	if l, ok := unitLabels[u]; ok {
		return l
	}
	return string(u)
}

// AddOn is an optional extra with a flat surcharge.
type AddOn string

const (
	AddOnOven    AddOn = "oven"
	AddOnFridge  AddOn = "fridge"
	AddOnWindows AddOn = "windows"
	AddOnSameDay AddOn = "same-day"
)

// AddOns lists every add-on in canonical order.
var AddOns = []AddOn{AddOnOven, AddOnFridge, AddOnWindows, AddOnSameDay}

var addOnLabels = map[AddOn]string{
	AddOnOven:    "Inside Oven",
	AddOnFridge:  "Inside Fridge",
	AddOnWindows: "Interior Windows",
	AddOnSameDay: "Same-Day Service",
}

func (a AddOn) Valid() bool {
	_, ok := addOnLabels[a]
	return ok
}

func (a AddOn) Label() string {
	if l, ok := addOnLabels[a]; ok {
		return l
	}
	return string(a)
}

// AddOnSet is a duplicate-free list of add-ons kept in canonical order.
// Build one with NewAddOnSet; the zero value is the empty set.
type AddOnSet []AddOn

// NewAddOnSet collapses duplicates and orders known add-ons canonically.
// Unknown values are kept after the known ones, in first-seen order.
func NewAddOnSet(items ...AddOn) AddOnSet {
	seen := make(map[AddOn]bool, len(items))
	for _, a := range items {
		seen[a] = true
	}
	set := make(AddOnSet, 0, len(seen))
	for _, a := range AddOns {
		if seen[a] {
			set = append(set, a)
			delete(seen, a)
		}
	}
	for _, a := range items {
		if seen[a] {
			set = append(set, a)
			delete(seen, a)
		}
	}
	return set
}

func (s AddOnSet) Has(a AddOn) bool {
	for _, x := range s {
		if x == a {
			return true
		}
	}
	return false
}

// With returns a new set that also contains a.
func (s AddOnSet) With(a AddOn) AddOnSet {
	return NewAddOnSet(append(append([]AddOn{}, s...), a)...)
}

// Without returns a new set with a removed.
func (s AddOnSet) Without(a AddOn) AddOnSet {
	out := make(AddOnSet, 0, len(s))
	for _, x := range s {
		if x != a {
			out = append(out, x)
		}
	}
	return out
}

// Toggle adds a when absent and removes it when present.
func (s AddOnSet) Toggle(a AddOn) AddOnSet {
	if s.Has(a) {
		return s.Without(a)
	}
	return s.With(a)
}

// Contact is collected on the contact step before checkout.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// BookingSelection is the in-progress state of the booking wizard.
type BookingSelection struct {
	City                string      `json:"city"`
	Zip                 string      `json:"zip"`
	ServiceType         ServiceType `json:"serviceType"`
	UnitSize            UnitSize    `json:"unitSize"`
	AddOns              AddOnSet    `json:"addOns"`
	ScheduledDate       *time.Time  `json:"scheduledDate"`
	ScheduledTimeWindow string      `json:"scheduledTimeWindow"`
	Contact             Contact     `json:"contact"`
}

// DefaultBookingSelection is the state of a freshly opened wizard.
func DefaultBookingSelection() BookingSelection {
	return BookingSelection{
		ServiceType: ServiceStandardClean,
		UnitSize:    UnitStudio,
		AddOns:      AddOnSet{},
	}
}

// Clone returns a deep copy so callers cannot reach the original's slice or date.
func (b BookingSelection) Clone() BookingSelection {
	out := b
	out.AddOns = append(AddOnSet{}, b.AddOns...)
	if b.ScheduledDate != nil {
		d := *b.ScheduledDate
		out.ScheduledDate = &d
	}
	return out
}

// BookingPatch carries the fields to merge into a BookingSelection.
// Nil fields are left untouched. ClearSchedule drops the scheduled date,
// since a nil ScheduledDate already means "no change".
type BookingPatch struct {
	City                *string      `json:"city,omitempty"`
	Zip                 *string      `json:"zip,omitempty"`
	ServiceType         *ServiceType `json:"serviceType,omitempty"`
	UnitSize            *UnitSize    `json:"unitSize,omitempty"`
	AddOns              *AddOnSet    `json:"addOns,omitempty"`
	ScheduledDate       *time.Time   `json:"scheduledDate,omitempty"`
	ClearSchedule       bool         `json:"clearSchedule,omitempty"`
	ScheduledTimeWindow *string      `json:"scheduledTimeWindow,omitempty"`
	Contact             *Contact     `json:"contact,omitempty"`
}

func (p BookingPatch) WithCity(city string) BookingPatch {
	p.City = &city
	return p
}

func (p BookingPatch) WithZip(zip string) BookingPatch {
	p.Zip = &zip
	return p
}

func (p BookingPatch) WithServiceType(s ServiceType) BookingPatch {
	p.ServiceType = &s
	return p
}

func (p BookingPatch) WithUnitSize(u UnitSize) BookingPatch {
	p.UnitSize = &u
	return p
}

func (p BookingPatch) WithAddOns(items ...AddOn) BookingPatch {
	set := NewAddOnSet(items...)
	p.AddOns = &set
	return p
}

func (p BookingPatch) WithSchedule(date time.Time, window string) BookingPatch {
	p.ScheduledDate = &date
	p.ClearSchedule = false
	p.ScheduledTimeWindow = &window
	return p
}

func (p BookingPatch) WithContact(c Contact) BookingPatch {
	p.Contact = &c
	return p
}

// Apply merges the patch into sel and returns the result. AddOns are
// normalized so the result is always a set, whatever the caller sent.
func (p BookingPatch) Apply(sel BookingSelection) BookingSelection {
	out := sel.Clone()
	if p.City != nil {
		out.City = *p.City
	}
	if p.Zip != nil {
		out.Zip = *p.Zip
	}
	if p.ServiceType != nil {
		out.ServiceType = *p.ServiceType
	}
	if p.UnitSize != nil {
		out.UnitSize = *p.UnitSize
	}
	if p.AddOns != nil {
		out.AddOns = NewAddOnSet(*p.AddOns...)
	}
	if p.ClearSchedule {
		out.ScheduledDate = nil
	}
	if p.ScheduledDate != nil {
		d := *p.ScheduledDate
		out.ScheduledDate = &d
	}
	if p.ScheduledTimeWindow != nil {
		out.ScheduledTimeWindow = *p.ScheduledTimeWindow
	}
	if p.Contact != nil {
		out.Contact = *p.Contact
	}
	return out
}
