package entity

import (
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	rate, err := NewGoldRate(DefaultRatePerGram)
	require.NoError(t, err)

	t.Run("Valid purchase", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		purchase := NewPurchase(1, 10, rate, mockTime)

		assert.Equal(t, int64(1), purchase.UserID)
		assert.Equal(t, 10.0, purchase.Amount)
		assert.Equal(t, StatusSuccess, purchase.Status)
		assert.Equal(t, fixedTime, purchase.CreatedAt)
		assert.Equal(t, "0.001667", purchase.Grams.StringFixed(GramsPrecision))
		assert.Zero(t, purchase.ID)
		assert.True(t, purchase.IsSuccess())
	})

	t.Run("Zero amount is permitted", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		purchase := NewPurchase(2, 0, rate, mockTime)

		assert.Equal(t, 0.0, purchase.Amount)
		assert.True(t, purchase.Grams.IsZero())
		assert.True(t, purchase.IsSuccess())
	})

	t.Run("Negative amount is stored as given", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		purchase := NewPurchase(3, -12000, rate, mockTime)

		assert.Equal(t, -12000.0, purchase.Amount)
		assert.Equal(t, "-2", purchase.Grams.String())
	})
}

func TestGoldRate(t *testing.T) {
	t.Run("Rejects non-positive rates", func(t *testing.T) {
		for _, value := range []float64{0, -1} {
			_, err := NewGoldRate(value)
			assert.Error(t, err)
		}
	})

	t.Run("Rounds grams to six places", func(t *testing.T) {
		rate, err := NewGoldRate(7)
		require.NoError(t, err)

		assert.Equal(t, "0.142857", rate.GramsFor(1).String())
		assert.Equal(t, "7", rate.PerGram().String())
	})

	t.Run("Zero value rate yields zero grams", func(t *testing.T) {
		var rate GoldRate
		assert.True(t, rate.GramsFor(100).IsZero())
	})
}
