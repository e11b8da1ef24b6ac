package dbmodels

type Company struct {
	BaseModel
	Name           string `gorm:"type:varchar(255)"`
	OrgNumber      string `gorm:"type:varchar(9);index"` // organisasjonsnummer
	Address        string `gorm:"type:varchar(500)"`
	PostalCode     string `gorm:"type:varchar(10)"`
	City           string `gorm:"type:varchar(100)"`
	ContactEmail   string `gorm:"type:varchar(255)"`
	ContactPhone   string `gorm:"type:varchar(15)"`
	HseHandbookKey string `gorm:"type:varchar(500)"` // object key of the uploaded HSE handbook, empty when none
	IsActive       bool
}
