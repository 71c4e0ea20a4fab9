package models

import "time"

type Role struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:nom_role;not null;index:ux_role_nom_live,unique,where:del = false"`
	Acronym   string    `gorm:"column:acronyme_role;not null;index:ux_role_acronyme_live,unique,where:del = false"`
	Del       bool      `gorm:"column:del;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Role) TableName() string { return "role" }

func (r Role) PrimaryKey() uint64 { return r.ID }
