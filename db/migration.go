package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "bygg-tools-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"Company", &dbmodels.Company{}},
		{"CompanyUser", &dbmodels.CompanyUser{}},
		{"EmailVerify", &dbmodels.EmailVerify{}},
		{"Project", &dbmodels.Project{}},
		{"Task", &dbmodels.Task{}},
		{"TaskComment", &dbmodels.TaskComment{}},
		{"TaskFile", &dbmodels.TaskFile{}},
		{"TimeEntry", &dbmodels.TimeEntry{}},
		{"DeviationForm", &dbmodels.DeviationForm{}},
		{"ChangeForm", &dbmodels.ChangeForm{}},
		{"SJAForm", &dbmodels.SJAForm{}},
		{"HseDocument", &dbmodels.HseDocument{}},
		{"Notification", &dbmodels.Notification{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration of %s failed", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
