// Package portal implements the HTTP controller serving the DGA fault
// analysis dashboard and its REST API.
package portal

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gridsentry/dgaportal/internal/log"
	"github.com/gridsentry/dgaportal/internal/observability"
	"github.com/gridsentry/dgaportal/pkg/config"
	"github.com/gridsentry/dgaportal/pkg/faultmap"
	"go.uber.org/zap"
)

// defaultPageTitle is used when the config does not set portal.page_title.
const defaultPageTitle = "DGA Transformer Fault Portal"

// Controller represents the portal HTTP controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	configProvider config.ConfigProvider
	portalConfig   config.PortalData
	gasDefaults    config.GasDefaultsData
	Server         http.Server
	FS             *fs.FS
	metrics        *observability.Metrics
	started        time.Time
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new portal controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, pc config.PortalData, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		configProvider: configProvider,
		portalConfig:   pc,
		metrics:        observability.NewMetrics(),
		started:        time.Now(),
		logger:         logger,
	}

	// Load the default form gas values
	defaults, err := configProvider.GetGasDefaults()
	if err != nil {
		return nil, fmt.Errorf("error loading gas defaults: %v", err)
	}
	ctrl.gasDefaults = *defaults

	// The region catalog ships with the binary; refuse to start if it is defective
	for _, tri := range []faultmap.Triangle{faultmap.Triangle1(), faultmap.Triangle4()} {
		if err := tri.Validate(); err != nil {
			return nil, fmt.Errorf("fault region catalog %q failed validation: %w", tri.Name, err)
		}
	}

	// If a listen address was not provided, listen on all interfaces
	if ctrl.portalConfig.ListenAddr == "" {
		logger.Info("portal.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.portalConfig.ListenAddr = "0.0.0.0"
	}

	// Set default HTTP port if not specified
	if ctrl.portalConfig.Port == 0 {
		logger.Info("portal.port not provided; defaulting to 8080")
		ctrl.portalConfig.Port = 8080
	}

	if ctrl.portalConfig.PageTitle == "" {
		ctrl.portalConfig.PageTitle = defaultPageTitle
	}

	// Set up the assets filesystem (embedded, or on-disk during development)
	assets := GetAssets()
	ctrl.FS = &assets

	// Create handlers
	ctrl.handlers = NewHandlers(ctrl)

	// Set up router
	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.portalConfig.ListenAddr, ctrl.portalConfig.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the portal server
func (c *Controller) StartController() error {
	log.Info("Starting portal controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.portalConfig.Cert != "" && c.portalConfig.Key != "" {
			if err := c.Server.ListenAndServeTLS(c.portalConfig.Cert, c.portalConfig.Key); err != http.ErrServerClosed {
				log.Errorf("portal server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("portal server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the portal server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() http.Handler {
	router := mux.NewRouter()

	// API endpoints
	router.Handle("/api/diagnose", c.metrics.WrapHandler("/api/diagnose", http.HandlerFunc(c.handlers.Diagnose)))
	router.Handle("/api/plot/{triangle}", c.metrics.WrapHandler("/api/plot/{triangle}", http.HandlerFunc(c.handlers.GetPlotData)))
	router.Handle("/plot/{triangle}.svg", c.metrics.WrapHandler("/plot/{triangle}.svg", http.HandlerFunc(c.handlers.GetPlotSVG)))
	router.Handle("/api/status", c.metrics.WrapHandler("/api/status", http.HandlerFunc(c.handlers.GetStatus)))

	// Prometheus exposition
	router.Handle("/metrics", c.metrics.Handler())

	// Dashboard
	router.Handle("/", c.metrics.WrapHandler("/", http.HandlerFunc(c.handlers.ServeDashboard)))

	// Static file serving
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(*c.FS))))

	var handler http.Handler = handlers.LoggingHandler(os.Stdout, router)

	if c.portalConfig.EnableCORS {
		handler = handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(handler)
	}

	return handler
}
