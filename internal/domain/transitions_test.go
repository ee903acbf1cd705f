package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoh/ReservationService/pkg/types"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{StatusConfirmed, StatusSeated, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusConfirmed, StatusConfirmed, false},

		{StatusSeated, StatusCompleted, true},
		{StatusSeated, StatusCancelled, true},
		{StatusSeated, StatusNoShow, false},
		{StatusSeated, StatusConfirmed, false},

		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusSeated, false},
		{StatusCompleted, StatusCancelled, false},

		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusSeated, false},

		{StatusNoShow, StatusConfirmed, false},
		{StatusNoShow, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransitionReturnsTypedError(t *testing.T) {
	err := Transition(StatusCompleted, StatusSeated)
	require.Error(t, err)

	var transitionErr *TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, StatusCompleted, transitionErr.From)
	assert.Equal(t, StatusSeated, transitionErr.To)

	assert.NoError(t, Transition(StatusConfirmed, StatusSeated))
}

func TestTerminalStatusesHaveNoOutgoingTransitions(t *testing.T) {
	for _, status := range TerminalStatuses {
		assert.Empty(t, AllowedTransitions(status), "status %s must be terminal", status)
	}
}

func TestCanModify(t *testing.T) {
	catalog := DefaultSlotCatalog()
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)

	future := &Reservation{Date: types.DateString("2026-10-20"), Slot: 5, Status: StatusConfirmed}
	ok, reason := CanModify(future, catalog, now)
	assert.True(t, ok)
	assert.Empty(t, reason)

	terminal := &Reservation{Date: types.DateString("2026-10-20"), Slot: 5, Status: StatusCancelled}
	ok, reason = CanModify(terminal, catalog, now)
	assert.False(t, ok)
	assert.Equal(t, ReasonTerminalStatus, reason)

	past := &Reservation{Date: types.DateString("2026-10-10"), Slot: 5, Status: StatusConfirmed}
	ok, reason = CanModify(past, catalog, now)
	assert.False(t, ok)
	assert.Equal(t, ReasonPastReservation, reason)
}

func TestCanCancel(t *testing.T) {
	catalog := DefaultSlotCatalog()
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)

	// Посаженное бронирование будущей даты отменить можно
	seated := &Reservation{Date: types.DateString("2026-10-20"), Slot: 5, Status: StatusSeated}
	ok, reason := CanCancel(seated, catalog, now)
	assert.True(t, ok)
	assert.Empty(t, reason)

	for _, status := range []ReservationStatus{StatusCancelled, StatusCompleted, StatusNoShow} {
		r := &Reservation{Date: types.DateString("2026-10-20"), Slot: 5, Status: status}
		ok, reason = CanCancel(r, catalog, now)
		assert.False(t, ok, "status %s", status)
		assert.Equal(t, ReasonTerminalStatus, reason)
	}

	past := &Reservation{Date: types.DateString("2026-10-14"), Slot: 5, Status: StatusConfirmed}
	ok, reason = CanCancel(past, catalog, now)
	assert.False(t, ok)
	assert.Equal(t, ReasonPastReservation, reason)
}
