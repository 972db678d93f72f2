package entity

// User is the identity principal. Users are provisioned by the identity
// subsystem (see cmd/usertool); the API only reads them.
type User struct {
	ID          int64      `gorm:"primaryKey"`
	Username    string     `gorm:"not null;uniqueIndex"`
	FirstName   string     `gorm:"not null;default:''"`
	LastName    string     `gorm:"not null;default:''"`
	Email       string     `gorm:"not null"`
	Permissions Permission `gorm:"not null;type:bigint;default:0"`
	Active      bool       `gorm:"not null;default:true"`
	DateJoined  int64      `gorm:"not null"`

	// Relations
	Profile *Profile `gorm:"foreignKey:OwnerID;references:ID"`
	Posts   []*Post  `gorm:"foreignKey:OwnerID;references:ID"`
}

// IsAdmin reports whether the user may manage global resources such as categories.
func (u *User) IsAdmin() bool {
	return u != nil && u.Permissions.HasEffective(PermissionManageCategories)
}
