package system_healthcheck

import (
	"jobtracker/internal/downdetect"
)

var healthcheckService = &HealthcheckService{
	downdetect.GetDowndetectService(),
	"/",
}
var healthcheckController = &HealthcheckController{
	healthcheckService,
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
