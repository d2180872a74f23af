package restaurants

type Restaurant struct {
	ID         int64
	Name       string
	CoverImg   string
	Address    string
	CategoryID *int64
	OwnerID    int64
	Category   *Category
	Menu       []Dish
}

type Category struct {
	ID              int64
	Name            string
	CoverImg        string
	Slug            string
	RestaurantCount int64
}

type DishChoice struct {
	Name  string `json:"name"`
	Extra *int   `json:"extra,omitempty"`
}

type DishOption struct {
	Name    string       `json:"name" validate:"required"`
	Choices []DishChoice `json:"choices,omitempty"`
	Extra   *int         `json:"extra,omitempty"`
}

type Dish struct {
	ID           int64
	Name         string
	Price        int
	Photo        string
	Description  string
	RestaurantID int64
	Options      []DishOption
}

// Page selects a window of a listing. Number starts at 1.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Output is the {ok, error} result every catalogue operation returns.
type Output struct {
	OK    bool
	Error string
}

func ok() Output {
	return Output{OK: true}
}

func fail(msg string) Output {
	return Output{Error: msg}
}

type CreateRestaurantInput struct {
	Name         string `validate:"required,min=2,max=60"`
	CoverImg     string `validate:"omitempty,url"`
	Address      string `validate:"required"`
	CategoryName string `validate:"required"`
}

type CreateRestaurantOutput struct {
	Output
	RestaurantID int64
}

// EditRestaurantInput leaves nil fields untouched.
type EditRestaurantInput struct {
	RestaurantID int64   `validate:"required"`
	Name         *string `validate:"omitnil,min=2,max=60"`
	CoverImg     *string `validate:"omitnil,url"`
	Address      *string `validate:"omitnil,min=1"`
	CategoryName *string `validate:"omitnil,min=1"`
}

type AllCategoriesOutput struct {
	Output
	Categories []Category
}

type CategoryOutput struct {
	Output
	Category     *Category
	Restaurants  []Restaurant
	TotalPages   int
	TotalResults int64
}

type RestaurantsOutput struct {
	Output
	Results      []Restaurant
	TotalPages   int
	TotalResults int64
}

type RestaurantOutput struct {
	Output
	Restaurant *Restaurant
}

type CreateDishInput struct {
	RestaurantID int64        `validate:"required"`
	Name         string       `validate:"required,min=5"`
	Price        int          `validate:"min=0"`
	Photo        string       `validate:"omitempty,url"`
	Description  string       `validate:"max=140"`
	Options      []DishOption `validate:"dive"`
}

type CreateDishOutput struct {
	Output
	DishID int64
}

// EditDishInput leaves nil fields untouched; a non-nil Options replaces the set.
type EditDishInput struct {
	DishID      int64         `validate:"required"`
	Name        *string       `validate:"omitnil,min=5"`
	Price       *int          `validate:"omitnil,min=0"`
	Photo       *string       `validate:"omitnil,url"`
	Description *string       `validate:"omitnil,max=140"`
	Options     *[]DishOption `validate:"omitnil"`
}
