package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Цена в JSON - число (800.5), а не строка ("800.5")
	decimal.MarshalJSONWithoutQuotes = true
}

// Category представляет категорию товаров
// Products не сериализуется: товары категории доступны по /api/products/category/{id}
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string    `json:"description"`
	Products    []Product `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName указывает имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// Product представляет товар в каталоге
// Category всегда загружается вместе с товаром
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string          `json:"description" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null"`
	CategoryID  uint            `json:"-" gorm:"not null;index"`
	Category    Category        `json:"category" gorm:"foreignKey:CategoryID"`
}

// TableName указывает имя таблицы для GORM
func (Product) TableName() string {
	return "products"
}

// CatalogEvent событие изменения каталога для Kafka
type CatalogEvent struct {
	EventID    string           `json:"event_id"`
	EventType  EventType        `json:"event_type"`
	EntityID   uint             `json:"entity_id"`
	Name       string           `json:"name,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	CategoryID uint             `json:"category_id,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

type EventType string

const (
	EventProductCreated  EventType = "PRODUCT_CREATED"
	EventProductUpdated  EventType = "PRODUCT_UPDATED"
	EventProductDeleted  EventType = "PRODUCT_DELETED"
	EventCategoryDeleted EventType = "CATEGORY_DELETED"
)
