package content

import "kidsplatform/internal/domain"

// Achievement unlock conditions are pure predicates over the profile.
type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`

	Unlocks func(p *domain.UserProfile) bool `json:"-"`
}

var achievements = []Achievement{
	{ID: 1, Name: "Primer Llanto", Description: "Completaste tu primera actividad", Icon: "👶", Requirement: 1,
		Unlocks: func(p *domain.UserProfile) bool { return p.Stars >= 1 }},
	{ID: 2, Name: "Amigo de Bebé Abeja", Description: "Aprendiste 5 letras con Bebé Abeja", Icon: "🐝", Requirement: 10,
		Unlocks: func(p *domain.UserProfile) bool { return p.Stars >= 10 }},
	{ID: 3, Name: "Compañero de Bebé Rana", Description: "Formaste 10 palabras con Bebé Rana", Icon: "🐸", Requirement: 25,
		Unlocks: func(p *domain.UserProfile) bool { return p.Stars >= 25 }},
	{ID: 4, Name: "Cuidador de Bebé Conejo", Description: "Escuchaste 5 cuentos con Bebé Conejo", Icon: "🐰", Requirement: 40,
		Unlocks: func(p *domain.UserProfile) bool { return p.Stars >= 40 }},
	{ID: 5, Name: "Explorador Espacial", Description: "Cantaste 3 canciones con Bebé Astronauta", Icon: "🚀", Requirement: 30,
		Unlocks: func(p *domain.UserProfile) bool { return p.Stars >= 30 }},
	{ID: 6, Name: "Bebé Súper Estrella", Description: "Alcanzaste el nivel 5", Icon: "⭐", Requirement: 50,
		Unlocks: func(p *domain.UserProfile) bool { return p.Level >= 5 }},
	{ID: 7, Name: "Bebé Bilingüe", Description: "Aprendiste en ambos idiomas", Icon: "🌍", Requirement: 20,
		Unlocks: func(p *domain.UserProfile) bool { return p.Language == domain.LanguageBoth && p.Stars >= 20 }},
	{ID: 8, Name: "Corazón de Oro", Description: "Conseguiste 100 corazones", Icon: "💛", Requirement: 100,
		Unlocks: func(p *domain.UserProfile) bool { return p.Stars >= 100 }},
}

func Achievements() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}

var stickers = []string{
	"💕", "👶", "🍼", "🌟", "🎈", "🦄", "🌈", "⭐", "💖", "🎀",
	"🐝", "🐸", "🐰", "🚀", "🌙", "☀️", "🌸", "🦋", "🎵", "🎉",
}

// Stickers returns the full sticker collection. Players unlock the first
// level*3 of them.
func Stickers() []string {
	out := make([]string, len(stickers))
	copy(out, stickers)
	return out
}
