package domain

// User описывает покупателя. Email уникален.
type User struct {
	ID    int64
	Name  string
	Email string
}

func NewUser(name string, email string) *User {
	return &User{
		Name:  name,
		Email: email,
	}
}
