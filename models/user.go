package models

// User is the schema for the "user" collection. No route reads or writes it
// yet; it is declared so the collection shape stays documented alongside the
// others.
type User struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Address  string `bson:"address" json:"address"`
	Age      *int   `bson:"age,omitempty" json:"age,omitempty"`
	IsActive bool   `bson:"is_active" json:"is_active"`
}
