package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article is a catalogue entry sold by the boutiques.
type Article struct {
	ID          uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:nom_articles;not null;index:ux_articles_nom_live,unique,where:del = false"`
	Description string          `gorm:"column:description_articles;not null"`
	Price       decimal.Decimal `gorm:"column:prix_articles;type:numeric(12,2);not null"`
	Stock       int             `gorm:"column:stock_articles;not null"`
	Del         bool            `gorm:"column:del;not null;default:false"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Article) TableName() string { return "articles" }

func (a Article) PrimaryKey() uint64 { return a.ID }
