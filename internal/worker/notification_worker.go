package worker

import (
	"github.com/spec-kit/interaction-service/internal/service"
)

// StartNotificationWorker registers notification handlers. Delivery is
// synchronous on the publishing request; nothing runs in the background.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
