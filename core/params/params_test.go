package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		dr, err := ParseDateRange("2025-12-01T00:00:00+00:00", "2025-12-31T23:59:59+00:00")

		require.NoError(t, err)
		require.NotNil(t, dr.StartDate)
		require.NotNil(t, dr.EndDate)
		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), dr.StartDate.UTC())
	})

	t.Run("empty strings leave bounds unset", func(t *testing.T) {
		dr, err := ParseDateRange("", "")

		require.NoError(t, err)
		assert.Nil(t, dr.StartDate)
		assert.Nil(t, dr.EndDate)
	})

	t.Run("offset preserved", func(t *testing.T) {
		dr, err := ParseDateRange("2025-12-01T09:00:00-05:00", "")

		require.NoError(t, err)
		require.NotNil(t, dr.StartDate)
		assert.Equal(t, time.Date(2025, 12, 1, 14, 0, 0, 0, time.UTC), dr.StartDate.UTC())
	})

	t.Run("rejects missing offset", func(t *testing.T) {
		_, err := ParseDateRange("2025-12-01T09:00:00", "")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDateRange("", "next week")
		assert.Error(t, err)
	})
}
