package importer

import (
	"context"
	"encoding/json"

	"sponlink-api/core/config"
	"sponlink-api/core/constants"
	"sponlink-api/core/database"
	"sponlink-api/core/logger"
	"sponlink-api/core/middleware"
	"sponlink-api/core/worker"
	"sponlink-api/modules/event"
	"sponlink-api/modules/importer/controller"
	"sponlink-api/modules/importer/dto"
	"sponlink-api/modules/importer/service"
	"sponlink-api/modules/notification"
	notifdto "sponlink-api/modules/notification/dto"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the importer module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, enqueuer worker.Enqueuer) {
	svc := service.NewImporterService(config.Get().Luma.ScrapeBaseURL, event.GetService(db))
	ctrl := controller.NewImporterController(svc, enqueuer)

	v1 := e.Group("/api/v1")
	importRoutes := v1.Group("/private/import", mw.AuthMiddleware())
	importRoutes.POST("/luma", ctrl.ScrapeLumaEvent)
	importRoutes.POST("/luma/async", ctrl.ScrapeLumaEventAsync)
}

// RegisterWorker wires the background import task handler.
func RegisterWorker(w *worker.Worker, db database.IDatabase) {
	svc := service.NewImporterService(config.Get().Luma.ScrapeBaseURL, event.GetService(db))
	notifSvc := notification.GetService(db)

	w.HandleFunc(constants.TaskLumaImport, func(ctx context.Context, task *asynq.Task) error {
		var payload dto.LumaImportPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Error("ImporterWorker:Payload", err)
			return err
		}

		organizerID, err := uuid.Parse(payload.OrganizerID)
		if err != nil {
			return err
		}

		created, appErr := svc.ImportAsDraft(ctx, organizerID, &dto.ImportLumaRequest{
			URL:      payload.URL,
			Timezone: payload.Timezone,
		})
		if appErr != nil {
			logger.Error("ImporterWorker:Import", appErr)
			return appErr
		}

		return notifSvc.Create(ctx, &notifdto.CreateNotificationRequest{
			UserID:  organizerID,
			Title:   "Event import finished",
			Message: "\"" + created.Title + "\" was imported as a draft",
			Type:    "EVENT_IMPORTED",
			Data: map[string]any{
				"event_id":   created.ID,
				"source_url": payload.URL,
			},
		})
	})
}
