package repo

import (
	"database/sql"
	"time"

	"github.com/mealio/food-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string          `db:"id"`
	UserID        string          `db:"user_id"`
	AddressID     string          `db:"address_id"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
	CreatedAt     time.Time       `db:"created_at"`
	CancelledAt   sql.NullTime    `db:"cancelled_at"`
}

type OrderLine struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	FoodID    int64           `db:"food_id"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Quantity  int             `db:"quantity"`
}

type CartLine struct {
	FoodID    int64           `db:"food_id"`
	Title     string          `db:"title"`
	ImagePath sql.NullString  `db:"image_path"`
	UnitPrice decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
}

type Address struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	RecipientName string         `db:"recipient_name"`
	Street        string         `db:"street"`
	Locality      sql.NullString `db:"locality"`
	District      sql.NullString `db:"district"`
	City          string         `db:"city"`
	Region        sql.NullString `db:"region"`
	Country       string         `db:"country"`
	PostalCode    sql.NullString `db:"postal_code"`
	Category      string         `db:"category"`
}

type Food struct {
	ID          int64           `db:"id"`
	CategoryID  string          `db:"category_id"`
	Title       string          `db:"title"`
	Description sql.NullString  `db:"description"`
	ImagePath   sql.NullString  `db:"image_path"`
	Price       decimal.Decimal `db:"price"`
	Star        float64         `db:"star"`
	TimeValue   int             `db:"time_value"`
	Calorie     int             `db:"calorie"`
	BestFood    bool            `db:"best_food"`
}

type User struct {
	ID       string         `db:"id"`
	Email    string         `db:"email"`
	Name     string         `db:"name"`
	Phone    sql.NullString `db:"phone"`
	Image    sql.NullString `db:"image"`
	Birthday sql.NullString `db:"birthday"`
	Role     string         `db:"role"`
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	out := entities.Order{
		ID:            o.ID,
		UserID:        o.UserID,
		AddressID:     o.AddressID,
		TotalPrice:    o.TotalPrice,
		Status:        entities.OrderStatus(o.Status),
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
	}
	if o.CancelledAt.Valid {
		out.CancelledAt = o.CancelledAt.Time
	}
	out.Lines = make([]entities.OrderLine, 0, len(lines))
	for _, l := range lines {
		out.Lines = append(out.Lines, OrderLineToEntity(l))
	}
	return out
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID:        l.ID,
		OrderID:   l.OrderID,
		FoodID:    l.FoodID,
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
	}
}

func CartLineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		FoodID:    l.FoodID,
		Title:     l.Title,
		ImagePath: l.ImagePath.String,
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:            a.ID,
		UserID:        a.UserID,
		RecipientName: a.RecipientName,
		Street:        a.Street,
		Locality:      a.Locality.String,
		District:      a.District.String,
		City:          a.City,
		Region:        a.Region.String,
		Country:       a.Country,
		PostalCode:    a.PostalCode.String,
		Category:      entities.AddressCategory(a.Category),
	}
}

func FoodToEntity(f Food) entities.Food {
	return entities.Food{
		ID:          f.ID,
		CategoryID:  f.CategoryID,
		Title:       f.Title,
		Description: f.Description.String,
		ImagePath:   f.ImagePath.String,
		Price:       f.Price,
		Star:        f.Star,
		TimeValue:   f.TimeValue,
		Calorie:     f.Calorie,
		BestFood:    f.BestFood,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Phone:    u.Phone.String,
		Image:    u.Image.String,
		Birthday: u.Birthday.String,
		Role:     entities.UserRole(u.Role),
	}
}
