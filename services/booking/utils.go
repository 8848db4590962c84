package booking

import (
	"strings"

	"readycleans/models"
)

// ValidateStep runs the checks a step must pass before the wizard may leave
// it. Checkout re-checks every earlier step.
func ValidateStep(step Step, sel models.BookingSelection, area *ServiceArea, rates RateTable) error {
	switch step {
	case StepLocation:
		if strings.TrimSpace(sel.Zip) == "" {
			return newStepError(step, "zip", "zip code is required")
		}
		if !area.IsServiceable(sel.Zip) {
			return newStepError(step, "zip", "we don't service this zip code yet")
		}
		if strings.TrimSpace(sel.City) == "" {
			return newStepError(step, "city", "city is required")
		}
	case StepServiceSelect:
		if !sel.ServiceType.Valid() {
			return newStepError(step, "serviceType", "select a service")
		}
	case StepSizeSelect:
		if !rates.HasRate(sel.ServiceType, sel.UnitSize) {
			return newStepError(step, "unitSize", "select a unit size")
		}
	case StepAddOnSelect:
		for _, a := range sel.AddOns {
			if !a.Valid() {
				return newStepError(step, "addOns", "unknown add-on "+string(a))
			}
		}
	case StepSchedule:
		if sel.ScheduledDate == nil {
			return newStepError(step, "scheduledDate", "pick a date")
		}
		if strings.TrimSpace(sel.ScheduledTimeWindow) == "" {
			return newStepError(step, "scheduledTimeWindow", "pick a time window")
		}
	case StepContact:
		return validateContact(sel.Contact)
	case StepCheckout:
		for s := StepLocation; s < StepCheckout; s++ {
			if err := ValidateStep(s, sel, area, rates); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateContact(c models.Contact) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return newStepError(StepContact, "firstName", "first name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return newStepError(StepContact, "lastName", "last name is required")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return newStepError(StepContact, "email", "email is required")
	}
	if !strings.Contains(email, "@") {
		return newStepError(StepContact, "email", "email looks invalid")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return newStepError(StepContact, "phone", "phone is required")
	}
	return nil
}
