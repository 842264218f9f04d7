package models

type Role struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"foreignKey:role_id" json:"users,omitempty"`
}

// DefaultRoles are seeded on boot; ids are referenced by types.ROLE_*.
var DefaultRoles = []Role{
	{ID: 1, Name: "super administrator"},
	{ID: 2, Name: "travel administrator"},
	{ID: 3, Name: "travel team member"},
	{ID: 4, Name: "accommodation supplier"},
	{ID: 5, Name: "requester"},
	{ID: 6, Name: "manager"},
}
