package fakestore

// ProductDTO mirrors a product object served by /products and /products/{id}.
type ProductDTO struct {
	ID          int64
	Title       string
	Price       float64
	Description *string
	Category    *string
	Image       string
}

// UserDTO mirrors a user object served by /users.
type UserDTO struct {
	ID       int64
	Username *string
	Email    *string
	Name     *NameDTO
}

type NameDTO struct {
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
}

// productWire is the raw product payload. Mandatory fields are pointers so
// that only absent or null values are rejected; zero values are valid.
type productWire struct {
	ID          *int64   `json:"id" validate:"required"`
	Title       *string  `json:"title" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image" validate:"required"`
}

func (w productWire) toDTO() ProductDTO {
	return ProductDTO{
		ID:          *w.ID,
		Title:       *w.Title,
		Price:       *w.Price,
		Description: w.Description,
		Category:    w.Category,
		Image:       *w.Image,
	}
}

type userWire struct {
	ID       *int64   `json:"id" validate:"required"`
	Username *string  `json:"username"`
	Email    *string  `json:"email"`
	Name     *NameDTO `json:"name"`
}

func (w userWire) toDTO() UserDTO {
	return UserDTO{
		ID:       *w.ID,
		Username: w.Username,
		Email:    w.Email,
		Name:     w.Name,
	}
}
