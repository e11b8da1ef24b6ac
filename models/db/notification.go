package dbmodels

// Notification is a per-user event. It stays in the feed until the user
// marks it read; websocket delivery does not remove it.
type Notification struct {
	BaseModel
	UserID  string `gorm:"type:varchar(36);index"`
	Message string
	Url     string `gorm:"type:varchar(500)"`
}
