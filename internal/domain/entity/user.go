package entity

// User is an account that can drive the ledger. Only existence and password
// verification matter here; there is no role model.
type User struct {
	Username     string
	PasswordHash string
}
