package booking

import (
	"readycleans/models"
)

// Summary is the review-screen view of a selection.
type Summary struct {
	ServiceLabel string   `json:"serviceLabel"`
	UnitLabel    string   `json:"unitLabel"`
	AddOnLabels  []string `json:"addOnLabels"`
	Total        int      `json:"total"`
}

// Project derives the checkout summary. It is rebuilt on every call so a
// change made on an earlier step always shows up here.
func Project(sel models.BookingSelection, rates RateTable) Summary {
	addOns := models.NewAddOnSet(sel.AddOns...)
	labels := make([]string, 0, len(addOns))
	for _, a := range addOns {
		labels = append(labels, a.Label())
	}
	return Summary{
		ServiceLabel: sel.ServiceType.Label(),
		UnitLabel:    sel.UnitSize.Label(),
		AddOnLabels:  labels,
		Total:        rates.ComputeTotal(sel.ServiceType, sel.UnitSize, addOns),
	}
}
