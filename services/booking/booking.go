package booking

import (
	"readycleans/models"
)

// Snapshot is the wire form of a wizard: where it is and what it holds.
type Snapshot struct {
	Step      int                     `json:"step"`
	Selection models.BookingSelection `json:"selection"`
}

// Flow guards a Store with step validation. Advancing requires the current
// step to validate; going back, jumping and resetting never do.
type Flow struct {
	store *Store
	area  *ServiceArea
	rates RateTable
}

// NewFlow starts a wizard at the first step with default selections.
func NewFlow(area *ServiceArea, rates RateTable) *Flow {
	return &Flow{
		store: NewStore(),
		area:  area,
		rates: rates,
	}
}

// NewDefaultFlow uses the Phoenix service area and the published rates.
func NewDefaultFlow() *Flow {
	return NewFlow(DefaultServiceArea(), DefaultRateTable())
}

func (f *Flow) Store() *Store {
	return f.store
}

func (f *Flow) Step() Step {
	return f.store.Sequencer().Current()
}

func (f *Flow) Update(p models.BookingPatch) {
	f.store.Update(p)
}

// Validate checks the current step without moving.
func (f *Flow) Validate() error {
	return ValidateStep(f.Step(), f.store.Read(), f.area, f.rates)
}

// TryAdvance moves forward only when the current step validates. On
// failure the step is unchanged and a *StepError is returned.
func (f *Flow) TryAdvance() error {
	if err := f.Validate(); err != nil {
		return err
	}
	f.store.Sequencer().Advance()
	return nil
}

func (f *Flow) Back() Step {
	return f.store.Sequencer().Retreat()
}

func (f *Flow) Jump(i int) Step {
	return f.store.Sequencer().JumpTo(i)
}

// Deeplink starts a fresh booking with svc preselected, the way the pricing
// cards on the landing page open the wizard.
func (f *Flow) Deeplink(svc models.ServiceType, step int) Step {
	f.store.Reset()
	f.store.Update(models.BookingPatch{}.WithServiceType(svc))
	return f.Jump(step)
}

func (f *Flow) Reset() {
	f.store.Reset()
}

// Complete finishes a booking once the whole selection validates: the store
// goes back to its defaults and the wizard to the first step. On failure
// nothing changes and the first failing *StepError is returned.
func (f *Flow) Complete() error {
	if err := ValidateStep(StepCheckout, f.store.Read(), f.area, f.rates); err != nil {
		return err
	}
	f.store.Reset()
	return nil
}

// Total is recomputed from the store on every call.
func (f *Flow) Total() int {
	sel := f.store.Read()
	return f.rates.ComputeTotal(sel.ServiceType, sel.UnitSize, sel.AddOns)
}

func (f *Flow) Summary() Summary {
	return Project(f.store.Read(), f.rates)
}

// Snapshot captures the wizard so a client can hold it between requests.
func (f *Flow) Snapshot() Snapshot {
	return Snapshot{
		Step:      f.store.Sequencer().Index(),
		Selection: f.store.Read(),
	}
}

// Restore loads a snapshot sent back by a client. The step is clamped and
// the add-on list is collapsed into a set.
func (f *Flow) Restore(s Snapshot) {
	sel := s.Selection.Clone()
	sel.AddOns = models.NewAddOnSet(sel.AddOns...)
	f.store.selection = sel
	f.store.Sequencer().JumpTo(s.Step)
}
