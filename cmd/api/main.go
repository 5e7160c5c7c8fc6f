package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/cantiere-paghe/payslip-backend-go/internal/config"
	appHTTP "github.com/cantiere-paghe/payslip-backend-go/internal/handler/http"
	"github.com/cantiere-paghe/payslip-backend-go/internal/pkg/storage"
	payslipService "github.com/cantiere-paghe/payslip-backend-go/internal/service/payslip"
	reportService "github.com/cantiere-paghe/payslip-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payslip-backend"),
	)

	payslipSvc := payslipService.NewPayslipService(logger)
	reportSvc := reportService.NewReportService(fileStorage)

	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc, reportSvc)

	router := appHTTP.NewRouter(cfg, payslipHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
