package models

// Identity is a generated (username, email) pair used to create one account.
type Identity struct {
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
}

// Account represents a user document in the "users" collection.
type Account struct {
	Base         `bson:",inline"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password" json:"-"` // Store hash, not plaintext
	AvatarURL    string `bson:"avatar" json:"avatar"`
}

// Identity returns the (username, email) pair the account was created from.
func (a *Account) Identity() Identity {
	return Identity{Username: a.Username, Email: a.Email}
}
