package meeting

import (
	"context"
	"encoding/json"

	"sponlink-api/core/constants"
	"sponlink-api/core/database"
	"sponlink-api/core/logger"
	"sponlink-api/core/middleware"
	"sponlink-api/core/worker"
	"sponlink-api/modules/event"
	"sponlink-api/modules/meeting/controller"
	"sponlink-api/modules/meeting/dto"
	"sponlink-api/modules/meeting/repository"
	"sponlink-api/modules/meeting/router"
	"sponlink-api/modules/meeting/service"
	"sponlink-api/modules/notification"
	notifdto "sponlink-api/modules/notification/dto"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the meeting module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, enqueuer worker.Enqueuer) {
	repo := repository.NewMeetingRepository(db)
	svc := service.NewMeetingService(repo, event.GetService(db), enqueuer)
	ctrl := controller.NewMeetingController(svc)
	rtr := router.NewMeetingRouter(ctrl)

	rtr.Setup(e, mw)
}

// RegisterWorker wires the meeting notification task handler.
func RegisterWorker(w *worker.Worker, db database.IDatabase) {
	repo := repository.NewMeetingRepository(db)
	notifSvc := notification.GetService(db)

	w.HandleFunc(constants.TaskMeetingNotify, func(ctx context.Context, task *asynq.Task) error {
		var payload dto.MeetingNotifyPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("MeetingWorker:Notify:Payload", err)
			return err
		}

		meetingID, err := uuid.Parse(payload.MeetingID)
		if err != nil {
			return err
		}
		recipientID, err := uuid.Parse(payload.RecipientID)
		if err != nil {
			return err
		}

		meeting, err := repo.GetMeetingByID(ctx, meetingID)
		if err != nil {
			return err
		}
		if meeting == nil {
			// Meeting deleted since enqueue, nothing to notify about.
			return nil
		}

		var title, message string
		switch payload.Kind {
		case "CONFIRMED":
			title = "Meeting confirmed"
			message = "Your meeting \"" + meeting.Title + "\" has been confirmed"
		case "CANCELLED":
			title = "Meeting cancelled"
			message = "The meeting \"" + meeting.Title + "\" has been cancelled"
		default:
			title = "New meeting request"
			message = "You have a new meeting request: \"" + meeting.Title + "\""
		}

		return notifSvc.Create(ctx, &notifdto.CreateNotificationRequest{
			UserID:  recipientID,
			Title:   title,
			Message: message,
			Type:    "MEETING_" + payload.Kind,
			Data: map[string]any{
				"meeting_id": meeting.ID.String(),
				"event_id":   meeting.EventID.String(),
			},
		})
	})
}
