package initializers

import (
	"context"

	"bygg-tools-backend/config"
	"bygg-tools-backend/fiberlog"
	authhandler "bygg-tools-backend/lib/auth"
	companyhandler "bygg-tools-backend/lib/company"
	emailverify "bygg-tools-backend/lib/email-verify"
	xlsexport "bygg-tools-backend/lib/export/xls"
	filestorage "bygg-tools-backend/lib/file-storage"
	formshandler "bygg-tools-backend/lib/forms"
	hsehandler "bygg-tools-backend/lib/hse"
	notification "bygg-tools-backend/lib/notification"
	projecthandler "bygg-tools-backend/lib/project"
	"bygg-tools-backend/lib/rbac"
	taskhandler "bygg-tools-backend/lib/task"
	timesheethandler "bygg-tools-backend/lib/timesheet"
	usershandler "bygg-tools-backend/lib/users"
	workflowhandler "bygg-tools-backend/lib/workflow"
	connectionhub "bygg-tools-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	emailverify.NewHandler()
	notification.NewHandler()
	usershandler.NewHandler()
	companyhandler.NewHandler()
	authhandler.NewHandler()
	projecthandler.NewHandler()
	taskhandler.NewHandler()
	timesheethandler.NewHandler()
	formshandler.NewHandler()
	workflowhandler.NewHandler()
	hsehandler.NewHandler()
	xlsexport.NewHandler()
	rbac.NewHandler()
}
