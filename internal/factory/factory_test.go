package factory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/internal/model"
)

func TestFactory_CreateRoom(t *testing.T) {
	f := New(DefaultPriceTable())

	testCases := []struct {
		name      string
		tag       string
		number    string
		wantName  string
		wantPrice int64
		wantErr   error
	}{
		{name: "standard", tag: "standard", number: "301", wantName: "Стандарт", wantPrice: 1000},
		{name: "deluxe mixed case", tag: " Deluxe ", number: "401", wantName: "Делюкс", wantPrice: 2000},
		{name: "unknown tag", tag: "suite", number: "501", wantErr: ErrInvalidCategoryTag},
		{name: "empty tag", tag: "", number: "501", wantErr: ErrInvalidCategoryTag},
		{name: "bad number", tag: "standard", number: " ", wantErr: ErrInvalidRoomNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			room, category, err := f.CreateRoom(tc.tag, tc.number)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.number, room.Number)
			assert.Equal(t, model.RoomStatusAvailable, room.Status)
			assert.Zero(t, room.ID, "room must not be persisted")
			assert.Zero(t, category.ID, "category must not be persisted")
			assert.Equal(t, tc.wantName, category.Name)
			assert.True(t, decimal.NewFromInt(tc.wantPrice).Equal(category.BasePrice))
			assert.Equal(t, category, room.Category)
		})
	}
}

func TestPriceTableFromConfig(t *testing.T) {
	table, err := PriceTableFromConfig(config.CatalogConfig{Tiers: map[string]config.TierConfig{
		"deluxe": {Name: " Deluxe ", BasePrice: 2500.5},
	}})
	require.NoError(t, err)

	assert.Equal(t, "Deluxe", table[Deluxe].Name)
	assert.True(t, decimal.RequireFromString("2500.5").Equal(table[Deluxe].BasePrice))
	assert.Equal(t, "Стандарт", table[Standard].Name, "unset tiers keep their defaults")

	badCases := map[string]config.TierConfig{
		"penthouse": {Name: "Penthouse", BasePrice: 9000},
		"standard":  {Name: "", BasePrice: 1000},
		"deluxe":    {Name: "Deluxe", BasePrice: -1},
	}
	for tag, tc := range badCases {
		_, err := PriceTableFromConfig(config.CatalogConfig{Tiers: map[string]config.TierConfig{tag: tc}})
		assert.Error(t, err, tag)
	}
}

func TestFactory_ConfiguredPrices(t *testing.T) {
	f := New(PriceTable{Standard: {Name: "Economy", BasePrice: decimal.NewFromInt(700)}})

	_, category, err := f.CreateRoom("standard", "1")
	require.NoError(t, err)
	assert.Equal(t, "Economy", category.Name)
	assert.Equal(t, "economy", category.LookupKey)

	_, category, err = f.CreateRoom("deluxe", "2")
	require.NoError(t, err)
	assert.Equal(t, "Делюкс", category.Name)
}
