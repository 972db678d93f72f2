package entity

// Profile holds the free-text settings of a user. A user owns at most one,
// enforced by the unique index on OwnerID.
type Profile struct {
	ID          int64  `gorm:"primaryKey"`
	OwnerID     int64  `gorm:"not null;uniqueIndex"` // References: users(id)
	Bio         string `gorm:"not null;default:''"`
	Preferences string `gorm:"not null;default:''"`
}

func (p *Profile) OwnedBy() int64 {
	return p.OwnerID
}
