package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/textseal/internal/api/rest/v1"
	"github.com/MGTheTrain/textseal/internal/app"
	"github.com/MGTheTrain/textseal/internal/domain/keys"
	"github.com/MGTheTrain/textseal/internal/pkg/config"
	"github.com/MGTheTrain/textseal/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

// HTTPCommandHandler encapsulates logic for serving a directory over HTTP.
type HTTPCommandHandler struct {
	commandBase
}

// NewHTTPCommandHandler returns an HTTPCommandHandler
func NewHTTPCommandHandler() *HTTPCommandHandler {
	return &HTTPCommandHandler{}
}

// ServeCmd serves --dir until SIGINT or SIGTERM
func (commandHandler *HTTPCommandHandler) ServeCmd(cmd *cobra.Command, _ []string) error {
	if err := commandHandler.setup(cmd); err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	port, _ := cmd.Flags().GetInt("port")
	origins, _ := cmd.Flags().GetStringSlice("allow-origin")

	settings := &config.HTTPSettings{Dir: dir, Port: port, AllowOrigins: origins}
	if err := settings.Validate(); err != nil {
		return err
	}

	repo, closeCatalog, err := commandHandler.openKeyCatalog()
	if err != nil {
		return err
	}
	defer closeCatalog()

	var keyMetadataService keys.KeyMetadataService
	if repo != nil {
		keyMetadataService, err = app.NewKeyMetadataService(repo, commandHandler.logger)
		if err != nil {
			return err
		}
	}

	router, err := newRouter(settings, keyMetadataService, commandHandler.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", ":"+strconv.Itoa(settings.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", settings.Port, err)
	}

	commandHandler.logger.Info("Serving ", settings.Dir, " on ", listener.Addr().String())
	return serveHTTP(ctx, listener, router, commandHandler.logger)
}

func newRouter(settings *config.HTTPSettings, keyMetadataService keys.KeyMetadataService, log logger.Logger) (*gin.Engine, error) {
	corsConfig := cors.Config{
		AllowOrigins:  settings.AllowOrigins,
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}
	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cors settings: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), cors.New(corsConfig))
	v1.SetupRoutes(r, settings.Dir, keyMetadataService, log)
	return r, nil
}

// serveHTTP serves handler on listener until ctx is done, then shuts down gracefully
func serveHTTP(ctx context.Context, listener net.Listener, handler http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// InitHTTPCommands registers the http command group
func InitHTTPCommands(rootCmd *cobra.Command) error {
	handler := NewHTTPCommandHandler()

	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "HTTP server",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory over HTTP",
		RunE:  handler.ServeCmd,
	}
	serveCmd.Flags().StringP("dir", "d", ".", "Directory to serve")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringSlice("allow-origin", []string{"*"}, "CORS origins allowed to fetch files")
	httpCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(httpCmd)
	return nil
}
