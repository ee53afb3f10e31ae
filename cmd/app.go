package cmd

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/MMN3003/swapproxy/src/Infrastructure/oneinch"
	auditAdapter "github.com/MMN3003/swapproxy/src/audit/adapter"
	auditRepo "github.com/MMN3003/swapproxy/src/audit/repository"
	"github.com/MMN3003/swapproxy/src/config"
	"github.com/MMN3003/swapproxy/src/logger"
	"github.com/MMN3003/swapproxy/src/swap/adapter/gateway"
	"github.com/MMN3003/swapproxy/src/swap/adapter/refdata"
	"github.com/MMN3003/swapproxy/src/swap/usecase"
)

// app is the wired dependency graph shared by every command.
type app struct {
	cfg     *config.Config
	logg    *logger.Logger
	service *usecase.Service
	audit   *auditAdapter.Transport
	closers []func() error
}

func newApp(cfg *config.Config, logg *logger.Logger) (*app, error) {
	a := &app{cfg: cfg, logg: logg}

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	if cfg.DatabaseURL != "" {
		repo, closeDB, err := openAuditRepo(cfg.DatabaseURL, logg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closeDB)
		httpClient, a.audit = auditAdapter.NewHTTPClient(cfg.Upstream.Timeout, repo, logg)
		logg.Infof("upstream call audit enabled")
	}

	client, err := oneinch.NewClient(cfg.Upstream.BaseURL,
		oneinch.WithAPIKey(cfg.Upstream.APIKey),
		oneinch.WithHTTPClient(httpClient),
		oneinch.WithTimeout(cfg.Upstream.Timeout),
		oneinch.WithFee(cfg.Upstream.Fee),
		oneinch.WithLogger(logg.Zerolog()),
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("upstream client: %w", err)
	}

	gw := gateway.New(client)
	ref, err := refdata.FromConfig(cfg.TokenSource, gw, logg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.service = usecase.NewService(gw, ref, logg)
	return a, nil
}

// Close flushes pending audit writes and releases the database.
func (a *app) Close() {
	if a.audit != nil {
		a.audit.Wait()
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logg.Errorf("close: %v", err)
		}
	}
}

func openAuditRepo(dsn string, logg *logger.Logger) (*auditRepo.AuditRepo, func() error, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get generic DB handle: %w", err)
	}

	// Connection pool tuning
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	repo, err := auditRepo.NewAuditRepo(gormDB, logg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return repo, sqlDB.Close, nil
}
