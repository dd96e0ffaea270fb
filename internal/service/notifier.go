package service

import (
	"fmt"

	"driverpro-service/internal/model"
)

// notifyTransition emits the notification side effect of a status transition.
// Every transition except into CANCELLED notifies the solicitor; cancellation
// notifies the bound driver instead. Notifications are append-only and never
// retracted by later transitions.
func (s *RequestService) notifyTransition(req *model.TaskRequest, target model.RequestStatus, restart bool) {
	if target == model.RequestStatusCancelled {
		if req.DriverID == "" {
			return
		}
		s.store.InsertNotification(model.AppNotification{
			UserID:  req.DriverID,
			Title:   "Task Cancelled",
			Message: fmt.Sprintf("Task #%s to %s was cancelled by the solicitor.", req.ID, req.Destination),
			Type:    model.NotificationTypeError,
		})
		return
	}

	if req.SolicitorID == "" {
		return
	}

	var (
		title    string
		message  string
		noteType model.NotificationType
	)
	switch target {
	case model.RequestStatusAccepted:
		if restart {
			title = "Task Restarted"
			message = fmt.Sprintf("The driver restarted the task. Reason: %s", req.RestartReason)
			noteType = model.NotificationTypeWarning
		} else {
			title = "Request Accepted"
			message = fmt.Sprintf("The driver accepted your task for: %s", req.Destination)
			noteType = model.NotificationTypeInfo
		}
	case model.RequestStatusInTransit:
		title = "Driver En Route"
		message = fmt.Sprintf("The driver started the route to: %s", req.Destination)
		noteType = model.NotificationTypeInfo
	case model.RequestStatusExecuting:
		title = "Task In Progress"
		message = "The driver arrived on site and started the task."
		noteType = model.NotificationTypeWarning
	case model.RequestStatusCompleted:
		title = "Task Completed"
		message = fmt.Sprintf("The task at %s was completed successfully.", req.Destination)
		noteType = model.NotificationTypeSuccess
	case model.RequestStatusRejected:
		title = "Request Rejected"
		message = fmt.Sprintf("Your request for %s could not be fulfilled.", req.Destination)
		noteType = model.NotificationTypeWarning
	case model.RequestStatusPending, model.RequestStatusCancelled:
		return
	default:
		return
	}

	s.store.InsertNotification(model.AppNotification{
		UserID:  req.SolicitorID,
		Title:   title,
		Message: message,
		Type:    noteType,
	})
}
