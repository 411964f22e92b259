package submission

import "cropai-modelhub/internal/services"

type SubmitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type NotificationListResponse struct {
	Notifications []services.Notification `json:"notifications"`
}
