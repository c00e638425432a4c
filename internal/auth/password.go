package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a signup password with the configured cost. Login never
// checks passwords, so there is no compare counterpart.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
