package devbackend

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/fudr-web/models"
	"gorm.io/gorm"
)

const RoleCustomer = "customer"

type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Username  string `gorm:"type:varchar(255); not null"`
	Email     string `gorm:"type:varchar(255); uniqueIndex; not null"`
	Password  string `gorm:"type:varchar(255); not null"`
	Role      string `gorm:"type:varchar(50); not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u User) toCurrentUser() models.CurrentUser {
	return models.CurrentUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

type MenuItem struct {
	ID          string  `gorm:"primaryKey;type:varchar(36)"`
	Name        string  `gorm:"type:varchar(255); not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"type:text"`
	Category    string  `gorm:"type:varchar(50); not null"`
	Image       string  `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m MenuItem) toModel() models.MenuItem {
	return models.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Category:    models.Category(m.Category),
		Image:       m.Image,
	}
}

type Order struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	UserID      string `gorm:"type:varchar(36); index"`
	TableNumber *int
	Status      string      `gorm:"type:varchar(20); not null; default:'open'"`
	TotalAmount float64     `gorm:"not null"`
	Lines       []OrderLine `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderLine menyimpan nama dan harga menu saat order dibuat.
type OrderLine struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	OrderID    string `gorm:"type:varchar(36); index; not null"`
	Position   int
	MenuItemID string  `gorm:"type:varchar(36)"`
	Name       string  `gorm:"type:varchar(255)"`
	Quantity   int     `gorm:"not null"`
	Price      float64 `gorm:"not null"`
}

func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

func (o Order) toModel() models.Order {
	lines := make([]models.OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, models.OrderLine{
			ID:       l.MenuItemID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.Price,
		})
	}
	return models.Order{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		OrderItems:  lines,
		TotalAmount: o.TotalAmount,
		Status:      models.OrderStatus(o.Status),
	}
}
