package password

import "golang.org/x/crypto/bcrypt"

// Hash generates a salted bcrypt hash of plain. A cost outside the
// supported range falls back to bcrypt.DefaultCost.
func Hash(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare returns nil when plain matches hash. Malformed hashes yield an
// error, never a panic; callers treat any error as invalid credentials.
func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
