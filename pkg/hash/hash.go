package hash

import "golang.org/x/crypto/bcrypt"

// Hasher is the password-hashing strategy injected into services.
// Hash embeds the salt and cost parameters in the digest, so Verify
// is self-contained.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// Bcrypt hashes passwords with golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	Cost int
}

// NewBcrypt returns a bcrypt hasher with the default cost.
func NewBcrypt() Bcrypt { return Bcrypt{Cost: bcrypt.DefaultCost} }

// Hash generates a salted digest. Two calls with the same plaintext
// yield different digests.
func (b Bcrypt) Hash(plaintext string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. The comparison
// is constant time.
func (b Bcrypt) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
