package content

// PetSpecies is one adoptable pet. Cost is in stars.
type PetSpecies struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Cost  int    `json:"cost"`
}

var pets = []PetSpecies{
	{ID: "bebe-abeja", Name: "BEBÉ ABEJA", Image: "/images/bebe-abeja.png", Cost: 50},
	{ID: "bebe-rana", Name: "BEBÉ RANA", Image: "/images/bebe-rana.png", Cost: 60},
	{ID: "bebe-conejo", Name: "BEBÉ CONEJO", Image: "/images/bebe-conejo.png", Cost: 70},
	{ID: "bebe-elefante", Name: "BEBÉ ELEFANTE", Image: "/images/bebe-elefante.png", Cost: 80},
	{ID: "bebe-astronauta", Name: "BEBÉ ASTRONAUTA", Image: "/images/bebe-astronauta.png", Cost: 90},
	{ID: "bebe-tiburon", Name: "BEBÉ TIBURÓN", Image: "/images/bebe-tiburon.png", Cost: 100},
	{ID: "bebe-dinosaurio", Name: "BEBÉ DINOSAURIO", Image: "/images/bebe-dinosaurio.png", Cost: 110},
	{ID: "bebe-raton", Name: "BEBÉ RATÓN", Image: "/images/bebe-raton.png", Cost: 40},
	{ID: "bebe-dalmata", Name: "BEBÉ DÁLMATA", Image: "/images/bebe-dalmata.png", Cost: 85},
	{ID: "bebe-pollo", Name: "BEBÉ POLLO", Image: "/images/bebe-pollo.png", Cost: 45},
}

var petsByID = func() map[string]PetSpecies {
	m := make(map[string]PetSpecies, len(pets))
	for _, p := range pets {
		m[p.ID] = p
	}
	return m
}()

func PetByID(id string) (PetSpecies, bool) {
	p, ok := petsByID[id]
	return p, ok
}

func Pets() []PetSpecies {
	out := make([]PetSpecies, len(pets))
	copy(out, pets)
	return out
}
