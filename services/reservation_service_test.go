package services

import (
	"sync"
	"testing"

	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationSvc(t *testing.T) *ReservationService {
	db := newTestDB(t)
	return NewReservationService(db,
		repository.NewReservationRepository(db),
		repository.NewUserRepository(db),
		repository.NewBranchRepository(db),
	)
}

func slotIn(table int) *CreateReservationIn {
	return &CreateReservationIn{
		Table:  table,
		Name:   "Alex",
		People: 4,
		Date:   "2024-06-01",
		Time:   "6:00PM - 6:30PM",
		Branch: "dreamwood",
	}
}

func TestCreateReservation(t *testing.T) {
	svc := newReservationSvc(t)

	res, err := svc.Create("guest-a", slotIn(3))
	require.NoError(t, err)
	assert.Contains(t, res.ReservationID, "RES-")
	assert.False(t, res.Cancelled)

	tables, err := svc.ReservedTables("dreamwood", "2024-06-01", "6:00PM - 6:30PM")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, tables)
}

func TestCreateReservationConflict(t *testing.T) {
	svc := newReservationSvc(t)

	_, err := svc.Create("guest-a", slotIn(3))
	require.NoError(t, err)

	// another user, same (branch, date, time, table)
	_, err = svc.Create("guest-b", slotIn(3))
	assert.ErrorIs(t, err, ErrTableAlreadyReserved)

	// same slot, different table is fine
	_, err = svc.Create("guest-b", slotIn(4))
	assert.NoError(t, err)

	// same table, different slot is fine
	other := slotIn(3)
	other.Time = "7:00PM - 7:30PM"
	_, err = svc.Create("guest-b", other)
	assert.NoError(t, err)
}

// Two writers racing for one slot: exactly one booking may land.
func TestCreateReservationConcurrent(t *testing.T) {
	svc := newReservationSvc(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int, user string) {
			defer wg.Done()
			_, errs[i] = svc.Create(user, slotIn(3))
		}(i, []string{"guest-a", "guest-b"}[i])
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, 1, successes)

	tables, err := svc.ReservedTables("dreamwood", "2024-06-01", "6:00PM - 6:30PM")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, tables)
}

func TestCancelFreesSlot(t *testing.T) {
	svc := newReservationSvc(t)

	res, err := svc.Create("guest-a", slotIn(5))
	require.NoError(t, err)
	require.NoError(t, svc.Cancel("guest-a", res.ReservationID))

	tables, err := svc.ReservedTables("dreamwood", "2024-06-01", "6:00PM - 6:30PM")
	require.NoError(t, err)
	assert.Empty(t, tables)

	// the slot can be rebooked after the cancel
	_, err = svc.Create("guest-b", slotIn(5))
	assert.NoError(t, err)
}

// Cancel writes the flag without reading it first, so cancelling twice
// succeeds.
func TestCancelTwiceSucceeds(t *testing.T) {
	svc := newReservationSvc(t)

	res, err := svc.Create("guest-a", slotIn(6))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel("guest-a", res.ReservationID))
	assert.NoError(t, svc.Cancel("guest-a", res.ReservationID))
}

func TestCancelNotFound(t *testing.T) {
	svc := newReservationSvc(t)

	_, err := svc.Create("guest-a", slotIn(7))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Cancel("guest-a", "RES-missing"), ErrReservationNotFound)
	assert.ErrorIs(t, svc.Cancel("nobody", "RES-missing"), ErrUserNotFound)
}

func TestCreateReservationValidation(t *testing.T) {
	svc := newReservationSvc(t)

	tooSmall := slotIn(1)
	tooSmall.People = 0
	_, err := svc.Create("guest-a", tooSmall)
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	tooBig := slotIn(1)
	tooBig.People = 13
	_, err = svc.Create("guest-a", tooBig)
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	badBranch := slotIn(1)
	badBranch.Branch = "mooncourt"
	_, err = svc.Create("guest-a", badBranch)
	assert.ErrorIs(t, err, ErrUnknownBranch)

	// dreamwood has 12 tables, heavengarden 8
	_, err = svc.Create("guest-a", slotIn(13))
	assert.ErrorIs(t, err, ErrInvalidTable)

	smallBranch := slotIn(9)
	smallBranch.Branch = "heavengarden"
	_, err = svc.Create("guest-a", smallBranch)
	assert.ErrorIs(t, err, ErrInvalidTable)

	badTime := slotIn(1)
	badTime.Time = "6:00PM_-_6:30PM"
	_, err = svc.Create("guest-a", badTime)
	assert.ErrorIs(t, err, ErrInvalidSlotTime)
}

func TestListReservationsForUser(t *testing.T) {
	svc := newReservationSvc(t)

	_, err := svc.Create("guest-a", slotIn(1))
	require.NoError(t, err)
	_, err = svc.Create("guest-a", slotIn(2))
	require.NoError(t, err)

	list, err := svc.ListForUser("guest-a")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.ListForUser("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
