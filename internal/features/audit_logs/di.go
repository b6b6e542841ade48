package audit_logs

import (
	groups_services "jobtracker/internal/features/groups/services"
	jobs_services "jobtracker/internal/features/jobs/services"
	users_services "jobtracker/internal/features/users/services"
	"jobtracker/internal/features/workers"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository: auditLogRepository,
}
var auditLogController = &AuditLogController{
	auditLogService: auditLogService,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
	users_services.GetSettingsService().SetAuditLogWriter(auditLogService)
	users_services.GetManagementService().SetAuditLogWriter(auditLogService)

	groups_services.GetGroupService().SetAuditLogWriter(auditLogService)
	groups_services.GetMembershipService().SetAuditLogWriter(auditLogService)
	groups_services.GetJoinRequestService().SetAuditLogWriter(auditLogService)

	jobs_services.GetJobService().SetAuditLogWriter(auditLogService)
	workers.GetWorkerService().SetAuditLogWriter(auditLogService)
}
