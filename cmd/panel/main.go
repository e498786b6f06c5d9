package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"schedule-admin-panel/internal/config"
	"schedule-admin-panel/internal/draft"
	"schedule-admin-panel/internal/handler"
	"schedule-admin-panel/internal/service"
	"schedule-admin-panel/pkg/scheduleapi"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetPanelConfig()
	logrus.Info("Config initialized...")

	// Клиент remote API графиков
	apiClient := scheduleapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)

	// Сервисы редакторов
	employeeService := service.NewEmployeeService(apiClient)
	basePlanService := service.NewBasePlanService(apiClient)
	adjustmentService := service.NewAdjustmentService(apiClient)
	reportService := service.NewReportService(apiClient)

	// Сессии черновиков правок
	drafts := draft.NewStore()

	panelHandler := handler.NewHandler(
		employeeService,
		basePlanService,
		adjustmentService,
		reportService,
		drafts,
	)

	router := gin.Default()
	router.SetFuncMap(handler.TemplateFuncMap())
	router.LoadHTMLGlob("web/templates/*.html")
	panelHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		logrus.Infof("Panel started on %s. Press Ctrl+C to stop.", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}

	logrus.Info("Panel stopped gracefully")
}
