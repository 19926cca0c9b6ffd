package security

import "golang.org/x/crypto/bcrypt"

// PinHasher protects the optional parent PIN on a profile.
type PinHasher struct{}

func NewPinHasher() *PinHasher {
	return &PinHasher{}
}

func (h *PinHasher) Hash(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(bytes), err
}

func (h *PinHasher) Compare(hash, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
}
