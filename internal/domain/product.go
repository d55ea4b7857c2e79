package domain

type Product struct {
	ID          int64
	Title       string
	Price       float64
	Description *string
	Category    *string
	Image       string
}

type User struct {
	ID       int64
	Username *string
	Email    *string
	Name     string
}
