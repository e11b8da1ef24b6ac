package dbmodels

type HseDocument struct {
	BaseCompanyModel
	Name      string `gorm:"type:varchar(255)"`
	FileName  string `gorm:"type:varchar(255)"`
	ObjectKey string `gorm:"type:varchar(500)"`
	Size      int64
}
