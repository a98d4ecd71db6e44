package franchise

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnquiry(t *testing.T) {
	now := time.Now()

	e, err := NewEnquiry(" Ravi Kumar ", "9876543210", "", "Pune", "20-30L", "", now)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", e.FullName)
	assert.Equal(t, StatusNew, e.Status)

	_, err = NewEnquiry("Ravi", "9876543210", "", "  ", "", "", now)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusNew.Valid())
	assert.True(t, StatusContacted.Valid())
	assert.False(t, Status("CLOSED").Valid())
}
