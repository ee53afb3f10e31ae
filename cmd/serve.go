package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	_ "github.com/MMN3003/swapproxy/docs" // Swagger docs
	"github.com/MMN3003/swapproxy/src/config"
	"github.com/MMN3003/swapproxy/src/logger"
	swapHD "github.com/MMN3003/swapproxy/src/swap/delivery/http"
	"github.com/MMN3003/swapproxy/src/swap/usecase"
)

const requestIDHeader = "X-Request-ID"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP proxy",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	logg := logger.New(cfg.Env)

	a, err := newApp(cfg, logg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := newRouter(cfg, logg, a.service)

	logg.Infof("Starting service on %s (env=%s, tokens=%s)", cfg.ListenAddr, cfg.Env, cfg.TokenSource)
	logg.Infof("Swagger UI available at http://localhost%s/swagger/index.html", cfg.ListenAddr)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      writeTimeout(cfg.Upstream.Timeout),
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, srv, logg)
}

// writeTimeout leaves room for a quote and a swap call. An unbounded upstream
// means an unbounded write.
func writeTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		return 0
	}
	return upstream*2 + 5*time.Second
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, logg *logger.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newRouter(cfg *config.Config, logg *logger.Logger, svc *usecase.Service) *gin.Engine {
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(logg))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	swapHD.NewHandler(svc, logg).RegisterRoutes(r)
	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logg.WithRequestID(c.GetString("request_id")).Infof("%s %s status:%d duration:%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

func corsConfig(origins []string) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", requestIDHeader)
	cc.ExposeHeaders = []string{requestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = origins
	return cc
}
