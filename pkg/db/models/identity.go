package models

import "time"

// Identity is the personal record an admin account points at.
type Identity struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	LastName  string    `gorm:"column:nom_admin;not null"`
	FirstName string    `gorm:"column:prenom_admin;not null"`
	Email     string    `gorm:"column:email_admin;not null;index:ux_identity_email_live,unique,where:del = false"`
	Phone     string    `gorm:"column:telephone_admin;not null;index:ux_identity_telephone_live,unique,where:del = false"`
	Del       bool      `gorm:"column:del;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Identity) TableName() string { return "identity" }

func (i Identity) PrimaryKey() uint64 { return i.ID }
