// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tracegraph/registry/dao"
	"github.com/tracegraph/registry/util"
)

type Services struct {
	Device IDeviceService
	Report IReportService
	Org    IOrganizationService
	User   IUserService
}

func InitializeServices(
	driver neo4j.Driver,
	phoneValidator *util.PhoneValidator,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *Services {
	deviceDAO := dao.NewDeviceDAO(driver)
	reportDAO := dao.NewReportDAO(driver)
	organizationDAO := dao.NewOrganizationDAO(driver, phoneValidator)
	userDAO := dao.NewUserDAO(driver, phoneValidator)

	return &Services{
		Device: NewDeviceService(deviceDAO),
		Report: NewReportService(reportDAO, validationUtil),
		Org:    NewOrganizationService(organizationDAO, validationUtil, notificationSvc, eventBus),
		User:   NewUserService(userDAO, validationUtil),
	}
}
