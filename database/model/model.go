package model

import "strings"

// Product is a catalog record. The identifier is assigned by the store and
// immutable once created.
type Product struct {
	Id            int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string  `json:"name" form:"name"`
	Description   string  `json:"description" form:"description"`
	Price         float64 `json:"price" form:"price" gorm:"type:decimal(10,2)"`
	StockQuantity int     `json:"stockQuantity" form:"stockQuantity"`
}

// User is a credential record. Passwords are stored only as bcrypt hashes.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Roles        string `json:"-" gorm:"not null"` // comma-separated role labels, e.g. "admin,reader"
}

// RoleList splits the stored role labels into a set-like slice.
func (u *User) RoleList() []string {
	parts := strings.Split(u.Roles, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.TrimSpace(p); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}
