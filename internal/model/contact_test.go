package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithVerifiedEmail_Individual(t *testing.T) {
	c := ContactDetails{Individual: &IndividualContact{
		FirstName: "Jane", LastName: "Doe", Email: "old@example.com",
	}}

	updated := c.WithVerifiedEmail("new@example.com")

	require.NotNil(t, updated.Individual)
	assert.Nil(t, updated.Trust)
	assert.Equal(t, "new@example.com", updated.Individual.Email)
	assert.True(t, updated.Individual.EmailVerified)
	assert.Equal(t, "Jane", updated.Individual.FirstName)

	// The original is untouched.
	assert.Equal(t, "old@example.com", c.Individual.Email)
	assert.False(t, c.Individual.EmailVerified)
}

func TestWithVerifiedEmail_Trust(t *testing.T) {
	c := ContactDetails{Trust: &TrustContact{TrustName: "Doe Family Trust", Email: "trust@example.com"}}

	updated := c.WithVerifiedEmail("trust@example.com")

	require.NotNil(t, updated.Trust)
	assert.Nil(t, updated.Individual)
	assert.True(t, updated.Trust.EmailVerified)
	assert.Equal(t, "Doe Family Trust", updated.Trust.TrustName)
}

func TestContactAccessors(t *testing.T) {
	assert.Empty(t, ContactDetails{}.Email())
	assert.False(t, ContactDetails{}.EmailVerified())

	ind := ContactDetails{Individual: &IndividualContact{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}}
	assert.Equal(t, "jane@example.com", ind.Email())
	assert.Equal(t, "Jane Doe", ind.Name())

	tr := ContactDetails{Trust: &TrustContact{TrustName: "Doe Family Trust", Email: "trust@example.com"}}
	assert.Equal(t, "Doe Family Trust", tr.Name())
}
