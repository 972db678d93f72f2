package entity

type Post struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Title     string `gorm:"not null;size:200"`
	Content   string `gorm:"not null;default:''"`
	OwnerID   int64  `gorm:"not null;index"` // References: users(id)
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Owner      User        `gorm:"foreignKey:OwnerID;references:ID"`
	Categories []*Category `gorm:"many2many:post_categories;joinForeignKey:PostID;joinReferences:CategoryTag"`
}

// OwnedBy returns the id of the user allowed to mutate the post.
func (p *Post) OwnedBy() int64 {
	return p.OwnerID
}
