package handler

import (
	"time"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/internal/service"

	"github.com/shopspring/decimal"
)

// Food позиция каталога
type Food struct {
	ID          int64           `json:"id"`
	CategoryID  string          `json:"category_id,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ImagePath   string          `json:"image_path,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Star        float64         `json:"star,omitempty"`
	TimeValue   int             `json:"time_value,omitempty"`
	Calorie     int             `json:"calorie,omitempty"`
	BestFood    bool            `json:"best_food,omitempty"`
}

func FoodEntityToJSON(f entities.Food) Food {
	return Food{
		ID:          f.ID,
		CategoryID:  f.CategoryID,
		Title:       f.Title,
		Description: f.Description,
		ImagePath:   f.ImagePath,
		Price:       f.Price,
		Star:        f.Star,
		TimeValue:   f.TimeValue,
		Calorie:     f.Calorie,
		BestFood:    f.BestFood,
	}
}

func FoodsEntityToJSON(foods []entities.Food) []Food {
	out := make([]Food, 0, len(foods))
	for _, f := range foods {
		out = append(out, FoodEntityToJSON(f))
	}
	return out
}

// CartLine строка корзины
type CartLine struct {
	FoodID    int64           `json:"food_id"`
	Title     string          `json:"title"`
	ImagePath string          `json:"image_path,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartSummary итоговые суммы корзины
type CartSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

type CartResponse struct {
	Lines   []CartLine  `json:"lines"`
	Summary CartSummary `json:"summary"`
}

func CartEntityToJSON(cart entities.Cart, summary entities.CartSummary) CartResponse {
	lines := make([]CartLine, 0, len(cart))
	for _, l := range cart {
		lines = append(lines, CartLine{
			FoodID:    l.FoodID,
			Title:     l.Title,
			ImagePath: l.ImagePath,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return CartResponse{Lines: lines, Summary: CartSummaryEntityToJSON(summary)}
}

func CartSummaryEntityToJSON(s entities.CartSummary) CartSummary {
	return CartSummary{
		Subtotal:    s.Subtotal,
		Tax:         s.Tax,
		DeliveryFee: s.DeliveryFee,
		Total:       s.Total,
	}
}

// Address адрес доставки
type Address struct {
	ID            string `json:"id"`
	RecipientName string `json:"recipient_name,omitempty"`
	Street        string `json:"street"`
	Locality      string `json:"locality,omitempty"`
	District      string `json:"district,omitempty"`
	City          string `json:"city,omitempty"`
	Region        string `json:"region,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Category      string `json:"category,omitempty"`
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		ID:            a.ID,
		RecipientName: a.RecipientName,
		Street:        a.Street,
		Locality:      a.Locality,
		District:      a.District,
		City:          a.City,
		Region:        a.Region,
		Country:       a.Country,
		PostalCode:    a.PostalCode,
		Category:      string(a.Category),
	}
}

func AddressesEntityToJSON(addresses []entities.Address) []Address {
	out := make([]Address, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, AddressEntityToJSON(a))
	}
	return out
}

// OrderLine строка заказа
type OrderLine struct {
	ID        string          `json:"id"`
	FoodID    int64           `json:"food_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Order заказ
type Order struct {
	ID            string          `json:"id"`
	AddressID     string          `json:"address_id,omitempty"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	Lines         []OrderLine     `json:"lines,omitempty"`
	Address       *Address        `json:"address,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	out := Order{
		ID:            o.ID,
		AddressID:     o.AddressID,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
	}
	if !o.CancelledAt.IsZero() {
		at := o.CancelledAt
		out.CancelledAt = &at
	}
	for _, l := range o.Lines {
		out.Lines = append(out.Lines, OrderLine{
			ID:        l.ID,
			FoodID:    l.FoodID,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return out
}

func OrderWithAddressToJSON(o service.OrderWithAddress) Order {
	out := OrderEntityToJSON(o.Order)
	if o.Address != nil {
		a := AddressEntityToJSON(*o.Address)
		out.Address = &a
	}
	return out
}

// User профиль пользователя
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Image    string `json:"image,omitempty"`
	Birthday string `json:"birthday,omitempty"`
	Role     string `json:"role,omitempty"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Phone:    u.Phone,
		Image:    u.Image,
		Birthday: u.Birthday,
		Role:     string(u.Role),
	}
}
