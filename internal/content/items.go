package content

import "kidsplatform/internal/domain"

type ItemCategory string

const (
	CategoryFood     ItemCategory = "food"
	CategoryHygiene  ItemCategory = "hygiene"
	CategoryToys     ItemCategory = "toys"
	CategoryMedicine ItemCategory = "medicine"
)

// Item is one purchasable care consumable. Effects map a need gauge to the
// amount restored when the item is used. Bathroom effects lower the gauge
// instead of raising it.
type Item struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Icon        string                  `json:"icon"`
	Category    ItemCategory            `json:"category"`
	Cost        int                     `json:"cost"`
	Quantity    int                     `json:"quantity"`
	Effects     map[domain.Need]float64 `json:"effects"`
	Description string                  `json:"description"`
}

func allNeeds(amount float64) map[domain.Need]float64 {
	return map[domain.Need]float64{
		domain.NeedHunger:    amount,
		domain.NeedHygiene:   amount,
		domain.NeedSleep:     amount,
		domain.NeedPlay:      amount,
		domain.NeedAffection: amount,
		domain.NeedBathroom:  amount,
	}
}

var items = []Item{
	// food
	{ID: "milk-basic", Name: "LECHE BÁSICA", Icon: "🍼", Category: CategoryFood, Cost: 5, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHunger: 20}, Description: "Leche nutritiva para bebés"},
	{ID: "milk-premium", Name: "LECHE PREMIUM", Icon: "🥛", Category: CategoryFood, Cost: 12, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHunger: 40}, Description: "Leche enriquecida con vitaminas"},
	{ID: "baby-food", Name: "PAPILLA ESPECIAL", Icon: "🥄", Category: CategoryFood, Cost: 20, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHunger: 60}, Description: "Papilla deliciosa y nutritiva"},
	{ID: "gourmet-meal", Name: "COMIDA GOURMET", Icon: "🍽️", Category: CategoryFood, Cost: 35, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHunger: 100}, Description: "Comida de lujo para bebés especiales"},

	// hygiene
	{ID: "diaper-basic", Name: "PAÑAL BÁSICO", Icon: "🧷", Category: CategoryHygiene, Cost: 3, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHygiene: 30}, Description: "Pañal suave y absorbente"},
	{ID: "diaper-premium", Name: "PAÑAL PREMIUM", Icon: "✨", Category: CategoryHygiene, Cost: 8, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHygiene: 50}, Description: "Pañal ultra suave con protección"},
	{ID: "soap-basic", Name: "JABÓN SUAVE", Icon: "🧼", Category: CategoryHygiene, Cost: 10, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHygiene: 40}, Description: "Jabón especial para piel sensible"},
	{ID: "shampoo-deluxe", Name: "CHAMPÚ DELUXE", Icon: "🧴", Category: CategoryHygiene, Cost: 18, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedHygiene: 70}, Description: "Champú con aroma a bebé"},

	// toys
	{ID: "bubbles", Name: "BURBUJAS MÁGICAS", Icon: "🫧", Category: CategoryToys, Cost: 6, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedPlay: 25}, Description: "Burbujas que brillan y flotan"},
	{ID: "ball", Name: "PELOTA SUAVE", Icon: "⚽", Category: CategoryToys, Cost: 12, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedPlay: 35}, Description: "Pelota blandita para jugar"},
	{ID: "teddy-bear", Name: "OSITO DE PELUCHE", Icon: "🧸", Category: CategoryToys, Cost: 25, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedAffection: 50}, Description: "Osito suave para abrazar"},
	{ID: "music-box", Name: "CAJA MUSICAL", Icon: "🎵", Category: CategoryToys, Cost: 30, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedSleep: 60}, Description: "Melodías relajantes para dormir"},

	// medicine
	{ID: "vitamins", Name: "VITAMINAS", Icon: "💊", Category: CategoryMedicine, Cost: 15, Quantity: 1,
		Effects: allNeeds(30), Description: "Vitaminas para crecer fuerte"},
	{ID: "energy-potion", Name: "POCIÓN DE ENERGÍA", Icon: "⚡", Category: CategoryMedicine, Cost: 25, Quantity: 1,
		Effects: map[domain.Need]float64{domain.NeedPlay: 50, domain.NeedAffection: 50}, Description: "Poción que da mucha energía"},
	{ID: "happiness-elixir", Name: "ELIXIR DE FELICIDAD", Icon: "✨", Category: CategoryMedicine, Cost: 40, Quantity: 1,
		Effects: allNeeds(80), Description: "Elixir mágico de pura felicidad"},
}

var itemsByID = func() map[string]Item {
	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}()

func ItemByID(id string) (Item, bool) {
	it, ok := itemsByID[id]
	return it, ok
}

func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
