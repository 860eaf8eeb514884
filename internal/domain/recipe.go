package domain

// Tag is a user-owned label attachable to recipes.
type Tag struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

// Ingredient is a user-owned ingredient attachable to recipes.
type Ingredient struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

// Recipe is a user-owned recipe. UserID is set once at creation and never
// changes afterwards. Attached tags and ingredients are referenced by ID and
// are not required to belong to the same user.
type Recipe struct {
	ID          int64
	UserID      int64
	Title       string
	TimeMinutes int
	Price       float64
	Link        string
	Tags        []Tag
	Ingredients []Ingredient
	Image       *string
}
