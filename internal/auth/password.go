package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor applied to every stored password.
const PasswordCost = 10

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), PasswordCost)
	return string(b), err
}

// VerifyPassword returns nil when plain matches the stored hash.
func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
