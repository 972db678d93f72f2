package entity

// Category is a global tag. The tag is both its primary key and its public identity.
type Category struct {
	Tag  string `gorm:"primaryKey;size:10"`
	Name string `gorm:"not null;size:100"`
}
