package domain

type Mood string

const (
	MoodFeliz   Mood = "FELIZ"
	MoodNormal  Mood = "NORMAL"
	MoodTriste  Mood = "TRISTE"
	MoodEnfermo Mood = "ENFERMO"
)

type Need string

const (
	NeedHunger    Need = "hunger"
	NeedHygiene   Need = "hygiene"
	NeedSleep     Need = "sleep"
	NeedPlay      Need = "play"
	NeedAffection Need = "affection"
	NeedBathroom  Need = "bathroom"
)

// PetNeeds holds the six care gauges. All range 0..100. Bathroom is
// inverted: 0 means fine, 100 means urgent.
type PetNeeds struct {
	Hunger    float64 `json:"hunger"`
	Hygiene   float64 `json:"hygiene"`
	Sleep     float64 `json:"sleep"`
	Play      float64 `json:"play"`
	Affection float64 `json:"affection"`
	Bathroom  float64 `json:"bathroom"`
}

// Satisfaction is the mean of the five positive gauges. Bathroom is not
// part of the average; it gates the mood on its own.
func (n PetNeeds) Satisfaction() float64 {
	return (n.Hunger + n.Hygiene + n.Sleep + n.Play + n.Affection) / 5
}

type VirtualPet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`

	Needs PetNeeds `json:"needs"`
	Mood  Mood     `json:"mood"`

	Level      int `json:"level"`
	Experience int `json:"experience"`

	// LastCared is a unix-millisecond timestamp of the last decay or
	// care action. Decay is computed from full minutes elapsed since it.
	LastCared int64 `json:"lastCared"`

	// Age in days since adoption, advanced externally.
	Age int `json:"age"`
}
