package models

import "time"

type Boutique struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:nom_boutique;not null;index:ux_boutique_nom_live,unique,where:del = false"`
	Address   string    `gorm:"column:adresse_boutique;not null"`
	Phone     string    `gorm:"column:telephone_boutique;not null"`
	Del       bool      `gorm:"column:del;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Boutique) TableName() string { return "boutique" }

func (b Boutique) PrimaryKey() uint64 { return b.ID }
