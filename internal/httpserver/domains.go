package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	focusHTTP "personal-task-management/internal/focus/delivery/http"
	focusRepo "personal-task-management/internal/focus/repository/postgre"
	focusUC "personal-task-management/internal/focus/usecase"
	insightHTTP "personal-task-management/internal/insight/delivery/http"
	insightRepo "personal-task-management/internal/insight/repository/postgre"
	insightUC "personal-task-management/internal/insight/usecase"
	"personal-task-management/internal/middleware"
	reminderHTTP "personal-task-management/internal/reminder/delivery/http"
	reminderRepo "personal-task-management/internal/reminder/repository/postgre"
	reminderUC "personal-task-management/internal/reminder/usecase"
	taskHTTP "personal-task-management/internal/task/delivery/http"
	taskRepo "personal-task-management/internal/task/repository/postgre"
	taskUC "personal-task-management/internal/task/usecase"
	"personal-task-management/pkg/nlparse"
)

// setupDomains initializes every domain and registers its routes.
//
// Pattern per domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Shared repositories. The daily-stat store is written by the task and
	// focus domains and read by the insight domain.
	statRepository := insightRepo.New(srv.postgresDB, srv.l)
	taskRepository := taskRepo.New(srv.postgresDB, srv.l)

	parser, err := nlparse.NewParser(srv.parser.Timezone)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", srv.parser.Timezone, err)
		parser, _ = nlparse.NewParser("UTC")
	}

	// Task domain
	tUC := taskUC.New(taskRepository, statRepository, parser, srv.l)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tUC), mw)
	srv.l.Infof(ctx, "Task domain registered")

	// Reminder domain
	rUC := reminderUC.New(reminderRepo.New(srv.postgresDB, srv.l), taskRepository, srv.l)
	reminderHTTP.RegisterRoutes(api, reminderHTTP.New(srv.l, rUC), mw)
	srv.l.Infof(ctx, "Reminder domain registered")

	// Focus domain
	fUC := focusUC.New(focusRepo.New(srv.postgresDB, srv.l), statRepository, srv.l)
	focusHTTP.RegisterRoutes(api, focusHTTP.New(srv.l, fUC), mw)
	srv.l.Infof(ctx, "Focus domain registered")

	// Insight domain
	iUC := insightUC.New(statRepository, taskRepository, srv.l)
	insightHTTP.RegisterRoutes(api, insightHTTP.New(srv.l, iUC), mw)
	srv.l.Infof(ctx, "Insight domain registered")

	return nil
}
