package booking

import (
	"testing"
	"time"

	"readycleans/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedPatch() models.BookingPatch {
	return models.BookingPatch{}.
		WithCity("Phoenix").
		WithZip("85004").
		WithServiceType(models.ServiceAirbnbTurnover).
		WithUnitSize(models.UnitTwoBedTwoBath).
		WithAddOns(models.AddOnFridge, models.AddOnOven).
		WithSchedule(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), "10:00 AM - 12:00 PM").
		WithContact(models.Contact{FirstName: "Sam", LastName: "Lee", Email: "sam@example.com", Phone: "602-555-0100"})
}

func TestStore_Defaults(t *testing.T) {
	s := NewStore()
	assert.Equal(t, models.DefaultBookingSelection(), s.Read())
	assert.Equal(t, 0, s.Sequencer().Index())
}

func TestStore_UpdateRoundTripsUnitSize(t *testing.T) {
	s := NewStore()
	for _, size := range models.UnitSizes {
		s.Update(models.BookingPatch{}.WithUnitSize(size))
		assert.Equal(t, size, s.Read().UnitSize)
	}
}

func TestStore_UpdateMergesOnlyGivenFields(t *testing.T) {
	s := NewStore()
	s.Update(populatedPatch())
	s.Update(models.BookingPatch{}.WithCity("Tempe"))

	got := s.Read()
	assert.Equal(t, "Tempe", got.City)
	assert.Equal(t, "85004", got.Zip)
	assert.Equal(t, models.UnitTwoBedTwoBath, got.UnitSize)
	assert.Equal(t, "Sam", got.Contact.FirstName)
}

func TestStore_AddOnsKeepSetSemantics(t *testing.T) {
	s := NewStore()
	dup := models.AddOnSet{models.AddOnSameDay, models.AddOnOven, models.AddOnSameDay}
	s.Update(models.BookingPatch{AddOns: &dup})

	assert.Equal(t, models.AddOnSet{models.AddOnOven, models.AddOnSameDay}, s.Read().AddOns)
}

func TestStore_ReadReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Update(populatedPatch())

	got := s.Read()
	got.AddOns[0] = models.AddOnWindows
	*got.ScheduledDate = time.Time{}
	got.City = "Mesa"

	again := s.Read()
	assert.Equal(t, models.AddOnOven, again.AddOns[0])
	assert.False(t, again.ScheduledDate.IsZero())
	assert.Equal(t, "Phoenix", again.City)
}

func TestStore_RetreatKeepsLaterFields(t *testing.T) {
	s := NewStore()
	s.Update(populatedPatch())
	s.Sequencer().JumpTo(int(StepCheckout))
	s.Sequencer().Retreat()
	s.Sequencer().Retreat()
	s.Sequencer().JumpTo(int(StepCheckout))

	assert.Equal(t, populatedPatch().Apply(models.DefaultBookingSelection()), s.Read())
}

func TestStore_ClearSchedule(t *testing.T) {
	s := NewStore()
	s.Update(populatedPatch())
	s.Update(models.BookingPatch{ClearSchedule: true})
	assert.Nil(t, s.Read().ScheduledDate)
	assert.Equal(t, "10:00 AM - 12:00 PM", s.Read().ScheduledTimeWindow)
}

func TestStore_ResetRestoresDefaults(t *testing.T) {
	s := NewStore()
	s.Update(populatedPatch())
	s.Sequencer().JumpTo(int(StepContact))

	s.Reset()

	got := s.Read()
	def := models.DefaultBookingSelection()
	assert.Equal(t, def.City, got.City)
	assert.Equal(t, def.Zip, got.Zip)
	assert.Equal(t, def.ServiceType, got.ServiceType)
	assert.Equal(t, def.UnitSize, got.UnitSize)
	assert.Empty(t, got.AddOns)
	assert.Nil(t, got.ScheduledDate)
	assert.Empty(t, got.ScheduledTimeWindow)
	assert.Equal(t, models.Contact{}, got.Contact)
	assert.Equal(t, 0, s.Sequencer().Index())
}

func TestStore_SubscribeNotifiesUntilUnsubscribed(t *testing.T) {
	s := NewStore()
	var seen []string
	unsubscribe := s.Subscribe(func(sel models.BookingSelection) {
		seen = append(seen, sel.City)
	})

	s.Update(models.BookingPatch{}.WithCity("Mesa"))
	s.Reset()
	unsubscribe()
	s.Update(models.BookingPatch{}.WithCity("Gilbert"))

	require.Len(t, seen, 2)
	assert.Equal(t, "Mesa", seen[0])
	assert.Equal(t, "", seen[1])
}
