package factory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/internal/model"
	"hotel-reservation-backend/internal/parse"
)

var (
	ErrInvalidCategoryTag = errors.New("invalid category tag")
	ErrInvalidRoomNumber  = errors.New("invalid room number")
)

// Tier is a default room tier selected by a category tag.
type Tier string

const (
	Standard Tier = "standard"
	Deluxe   Tier = "deluxe"
)

// Tiers lists every known tier in seeding order.
var Tiers = []Tier{Standard, Deluxe}

// ParseTier resolves a category tag such as "standard" or " Deluxe".
func ParseTier(tag string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(tag))); t {
	case Standard, Deluxe:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategoryTag, tag)
}

// TierDefaults is the category a tier creates the first time it is used.
type TierDefaults struct {
	Name      string
	BasePrice decimal.Decimal
}

// PriceTable maps every tier to its default category.
type PriceTable map[Tier]TierDefaults

// DefaultPriceTable returns the built-in tier defaults.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Standard: {Name: "Стандарт", BasePrice: decimal.NewFromInt(1000)},
		Deluxe:   {Name: "Делюкс", BasePrice: decimal.NewFromInt(2000)},
	}
}

// PriceTableFromConfig overlays configured tiers on the defaults.
func PriceTableFromConfig(cfg config.CatalogConfig) (PriceTable, error) {
	table := DefaultPriceTable()
	for tag, tc := range cfg.Tiers {
		tier, err := ParseTier(tag)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(tc.Name) == "" {
			return nil, fmt.Errorf("catalog tier %q: name is empty", tag)
		}
		if tc.BasePrice < 0 {
			return nil, fmt.Errorf("catalog tier %q: base price %v is negative", tag, tc.BasePrice)
		}
		table[tier] = TierDefaults{Name: strings.TrimSpace(tc.Name), BasePrice: decimal.NewFromFloat(tc.BasePrice)}
	}
	return table, nil
}

// Factory builds unpersisted rooms for a tier.
type Factory struct {
	prices PriceTable
}

// New creates a factory over prices. Tiers missing from prices fall back to
// the defaults.
func New(prices PriceTable) *Factory {
	table := DefaultPriceTable()
	for tier, d := range prices {
		table[tier] = d
	}
	return &Factory{prices: table}
}

// Category returns the draft category of a tier.
func (f *Factory) Category(tier Tier) model.RoomCategory {
	d := f.prices[tier]
	return model.RoomCategory{
		LookupKey: parse.CategoryKey(d.Name),
		Name:      d.Name,
		BasePrice: d.BasePrice,
	}
}

// CreateRoom returns an Available room and its draft category. Neither is
// persisted; the category still has to be deduplicated against the registry.
func (f *Factory) CreateRoom(tag, number string) (model.Room, model.RoomCategory, error) {
	tier, err := ParseTier(tag)
	if err != nil {
		return model.Room{}, model.RoomCategory{}, err
	}
	num, err := parse.RoomNumber(number)
	if err != nil {
		return model.Room{}, model.RoomCategory{}, fmt.Errorf("%w: %v", ErrInvalidRoomNumber, err)
	}

	category := f.Category(tier)
	room := model.Room{
		Number:   num,
		Status:   model.RoomStatusAvailable,
		Category: category,
	}
	return room, category, nil
}
