package booking

// Step identifies one screen of the booking wizard.
type Step int

const (
	StepLocation Step = iota
	StepServiceSelect
	StepSizeSelect
	StepAddOnSelect
	StepSchedule
	StepContact
	StepCheckout
)

// StepCount is the number of wizard steps.
const StepCount = int(StepCheckout) + 1

var stepNames = [StepCount]string{
	"location",
	"service",
	"size",
	"add-ons",
	"schedule",
	"contact",
	"checkout",
}

func (s Step) String() string {
	if s < 0 || int(s) >= StepCount {
		return "unknown"
	}
	return stepNames[s]
}

// ClampStep forces i into the valid step range.
func ClampStep(i int) Step {
	if i < 0 {
		return StepLocation
	}
	if i >= StepCount {
		return StepCheckout
	}
	return Step(i)
}

// Sequencer tracks the active wizard step. It only enforces bounds; whether
// a step may be left is decided by the step's own validation.
type Sequencer struct {
	index Step
}

func NewSequencer() *Sequencer {
	return &Sequencer{index: StepLocation}
}

func (q *Sequencer) Current() Step {
	return q.index
}

func (q *Sequencer) Index() int {
	return int(q.index)
}

// IsTerminal reports whether the wizard sits on checkout. Leaving checkout
// happens through payment, outside the sequencer.
func (q *Sequencer) IsTerminal() bool {
	return q.index == StepCheckout
}

// Advance moves one step forward; it is a no-op on the last step.
func (q *Sequencer) Advance() Step {
	q.index = ClampStep(int(q.index) + 1)
	return q.index
}

// Retreat moves one step back, stopping at the first step.
func (q *Sequencer) Retreat() Step {
	q.index = ClampStep(int(q.index) - 1)
	return q.index
}

// JumpTo sets the step directly. Out-of-range targets are clamped.
func (q *Sequencer) JumpTo(i int) Step {
	q.index = ClampStep(i)
	return q.index
}

func (q *Sequencer) Reset() {
	q.index = StepLocation
}
