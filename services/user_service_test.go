package services

import (
	"testing"

	"github.com/akhilgolj/plantopiawebsite-final/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfileCreates(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, repository.NewUserRepository(db))

	u, err := svc.UpsertProfile(&UpsertProfileIn{
		ExternalID: "google-1", Name: "Alex", Email: "alex@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", u.Name)
}

// A repeat sign-in with a changed name returns the stored row untouched.
func TestUpsertProfileDoesNotUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, repository.NewUserRepository(db))

	first, err := svc.UpsertProfile(&UpsertProfileIn{
		ExternalID: "google-2", Name: "Alex", Email: "alex@example.com",
	})
	require.NoError(t, err)

	second, err := svc.UpsertProfile(&UpsertProfileIn{
		ExternalID: "google-2", Name: "Alexandra", Email: "new@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alex", second.Name)
	assert.Equal(t, "alex@example.com", second.Email)
}
