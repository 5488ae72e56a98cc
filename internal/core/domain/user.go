package domain

// User is a registered visitor. A row is created the first time a name is
// submitted through the form and never mutated afterwards.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	RoleID   *uint  `gorm:"index" json:"role_id,omitempty"`
}

func (User) TableName() string { return "users" }

// Role groups users. The relationship is part of the schema but nothing
// assigns or queries it yet.
type Role struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"unique;size:64;not null" json:"name"`
	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}

func (Role) TableName() string { return "roles" }
