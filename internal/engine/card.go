package engine

import "fmt"

// CardID identifies a card kind. Copies of the same kind share an ID.
type CardID int

const (
	// Producer cards (paid by the active player).
	SushiBar CardID = iota + 1
	CoffeeShop
	LuxuriousRestaurant
	Pizzeria
	BurgerGrill
	Restaurant
	NightClub

	// Shop cards (paid by the bank, everybody's turn).
	WheatField
	Farm
	CornField
	FlowerGarden
	Forest
	Vineyard
	FishingBoat
	Mine
	AppleOrchard
	FishingShip

	// Restaurant cards (paid by the bank, own turn only).
	ConvenienceStore
	Bakery
	Shop
	FlowerShop
	Dairy
	FurnitureFactory
	LogisticsCompany
	Winery
	SodaCompany
	FruitMarket
	FoodWholesale

	// Landmarks.
	Stadium
	TelevisionStudio
	OfficeBuilding
	PublishingHouse
	FinancialOffice
	RenovationCompany
	ITCenter
	Park

	// Milestones.
	TownHall
	Port
	Station
	ShoppingCenter
	AmusementPark
	Transmitter
	Airport
)

var cardNames = map[CardID]string{
	SushiBar:            "sushi_bar",
	CoffeeShop:          "coffee_shop",
	LuxuriousRestaurant: "luxurious_restaurant",
	Pizzeria:            "pizzeria",
	BurgerGrill:         "burger_grill",
	Restaurant:          "restaurant",
	NightClub:           "night_club",
	WheatField:          "wheat_field",
	Farm:                "farm",
	CornField:           "corn_field",
	FlowerGarden:        "flower_garden",
	Forest:              "forest",
	Vineyard:            "vineyard",
	FishingBoat:         "fishing_boat",
	Mine:                "mine",
	AppleOrchard:        "apple_orchard",
	FishingShip:         "fishing_ship",
	ConvenienceStore:    "convenience_store",
	Bakery:              "bakery",
	Shop:                "shop",
	FlowerShop:          "flower_shop",
	Dairy:               "dairy",
	FurnitureFactory:    "furniture_factory",
	LogisticsCompany:    "logistics_company",
	Winery:              "winery",
	SodaCompany:         "soda_company",
	FruitMarket:         "fruit_market",
	FoodWholesale:       "food_wholesale",
	Stadium:             "stadium",
	TelevisionStudio:    "television_studio",
	OfficeBuilding:      "office_building",
	PublishingHouse:     "publishing_house",
	FinancialOffice:     "financial_office",
	RenovationCompany:   "renovation_company",
	ITCenter:            "it_center",
	Park:                "park",
	TownHall:            "town_hall",
	Port:                "port",
	Station:             "station",
	ShoppingCenter:      "shopping_center",
	AmusementPark:       "amusement_park",
	Transmitter:         "transmitter",
	Airport:             "airport",
}

var cardsByName = func() map[string]CardID {
	m := make(map[string]CardID, len(cardNames))
	for id, name := range cardNames {
		m[name] = id
	}
	return m
}()

func (c CardID) String() string {
	if s, ok := cardNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCardID maps a wire name back to its CardID.
func ParseCardID(name string) (CardID, bool) {
	id, ok := cardsByName[name]
	return id, ok
}

// MarshalText encodes the card by name so maps keyed by CardID stay readable.
func (c CardID) MarshalText() ([]byte, error) {
	if c == 0 {
		return []byte{}, nil
	}
	s, ok := cardNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown card id %d", int(c))
	}
	return []byte(s), nil
}

func (c *CardID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*c = 0
		return nil
	}
	id, ok := cardsByName[string(b)]
	if !ok {
		return fmt.Errorf("unknown card %q", string(b))
	}
	*c = id
	return nil
}

// Category decides who pays whom and when a card resolves.
type Category int

const (
	CategoryProducer   Category = iota + 1 // red
	CategoryShop                           // blue
	CategoryRestaurant                     // green
	CategoryLandmark                       // purple
	CategoryMilestone
)

var categoryNames = map[Category]string{
	CategoryProducer:   "producer",
	CategoryShop:       "shop",
	CategoryRestaurant: "restaurant",
	CategoryLandmark:   "landmark",
	CategoryMilestone:  "milestone",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Establishment reports whether cards of this category can be traded,
// renovated and closed.
func (c Category) Establishment() bool {
	return c == CategoryProducer || c == CategoryShop || c == CategoryRestaurant
}

// Symbol is the synergy class printed on a card.
type Symbol int

const (
	SymbolNone Symbol = iota
	SymbolWheat
	SymbolBox
	SymbolPig
	SymbolCoffee
	SymbolCog
	SymbolTower
	SymbolFactory
	SymbolSuitcase
	SymbolBoat
	SymbolFruit
)

var symbolNames = map[Symbol]string{
	SymbolNone:     "none",
	SymbolWheat:    "wheat",
	SymbolBox:      "box",
	SymbolPig:      "pig",
	SymbolCoffee:   "coffee",
	SymbolCog:      "cog",
	SymbolTower:    "tower",
	SymbolFactory:  "factory",
	SymbolSuitcase: "suitcase",
	SymbolBoat:     "boat",
	SymbolFruit:    "fruit",
}

func (s Symbol) String() string {
	if n, ok := symbolNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Tier is the market pool a card is sold from.
type Tier int

const (
	TierNone Tier = iota
	TierLow
	TierHigh
	TierLandmark
)

var tierNames = map[Tier]string{
	TierNone:     "none",
	TierLow:      "low",
	TierHigh:     "high",
	TierLandmark: "landmark",
}

func (t Tier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return "unknown"
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	for tier, name := range tierNames {
		if name == string(b) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", string(b))
}

// MarketTiers lists the tiers that have a pile and a visible pool.
var MarketTiers = []Tier{TierLow, TierHigh, TierLandmark}
