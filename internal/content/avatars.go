package content

// Avatar is one cosmetic the player can buy with stars. The four starter
// avatars cost nothing and are pre-owned on every new profile.
type Avatar struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Cost  int    `json:"cost"`
}

var avatars = []Avatar{
	{ID: "bebe-abeja", Name: "BEBÉ ABEJA", Image: "/images/bebe-abeja.png", Cost: 0},
	{ID: "bebe-rana", Name: "BEBÉ RANA", Image: "/images/bebe-rana.png", Cost: 0},
	{ID: "bebe-conejo", Name: "BEBÉ CONEJO", Image: "/images/bebe-conejo.png", Cost: 0},
	{ID: "bebe-astronauta", Name: "BEBÉ ASTRONAUTA", Image: "/images/bebe-astronauta.png", Cost: 0},
	{ID: "bebe-conejo-rosa", Name: "BEBÉ CONEJO ROSA", Image: "/images/avatars/bebe-conejo-rosa.png", Cost: 25},
	{ID: "bebe-oveja", Name: "BEBÉ OVEJA", Image: "/images/avatars/bebe-oveja.png", Cost: 30},
	{ID: "bebe-leopardo", Name: "BEBÉ LEOPARDO", Image: "/images/avatars/bebe-leopardo.png", Cost: 40},
	{ID: "bebe-gallo", Name: "BEBÉ GALLO", Image: "/images/avatars/bebe-gallo.png", Cost: 35},
	{ID: "bebe-cactus", Name: "BEBÉ CACTUS", Image: "/images/avatars/bebe-cactus.png", Cost: 45},
	{ID: "bebe-fresa", Name: "BEBÉ FRESA", Image: "/images/avatars/bebe-fresa.png", Cost: 50},
	{ID: "bebe-pinguino", Name: "BEBÉ PINGÜINO", Image: "/images/avatars/bebe-pinguino.png", Cost: 60},
	{ID: "bebe-unicornio", Name: "BEBÉ UNICORNIO", Image: "/images/avatars/bebe-unicornio.png", Cost: 100},
	{ID: "bebe-dragon", Name: "BEBÉ DRAGÓN", Image: "/images/avatars/bebe-dragon.png", Cost: 150},
	{ID: "bebe-cabra", Name: "BEBÉ CABRA", Image: "/images/avatars/bebe-cabra.png", Cost: 80},
}

// StarterAvatarIDs are pre-owned on every new profile.
func StarterAvatarIDs() []string {
	return []string{"bebe-abeja", "bebe-rana", "bebe-conejo", "bebe-astronauta"}
}

var avatarsByID = func() map[string]Avatar {
	m := make(map[string]Avatar, len(avatars))
	for _, a := range avatars {
		m[a.ID] = a
	}
	return m
}()

func AvatarByID(id string) (Avatar, bool) {
	a, ok := avatarsByID[id]
	return a, ok
}

func Avatars() []Avatar {
	out := make([]Avatar, len(avatars))
	copy(out, avatars)
	return out
}
