package models

import "time"

// AdminUser is a back-office account. PasswordHash holds a bcrypt digest and
// is never serialised.
type AdminUser struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username_admin;not null;index:ux_user_admin_username_live,unique,where:del = false"`
	PasswordHash string    `gorm:"column:password_admin;not null" json:"-"`
	IdentityID   uint64    `gorm:"column:identity_ididentity;not null;index:idx_user_admin_identity"`
	Del          bool      `gorm:"column:del;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AdminUser) TableName() string { return "user_admin" }

func (u AdminUser) PrimaryKey() uint64 { return u.ID }
