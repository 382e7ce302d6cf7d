// Command invctl administra el documento de inventario sin levantar la API:
// siembra/reinicio, reporte del tablero y exportación de órdenes de compra.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/freshstock-api/internal/infrastructure/storage"
	"github.com/jhoicas/freshstock-api/pkg/config"
	"github.com/jhoicas/freshstock-api/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env estado compartido por los subcomandos; se abre en PersistentPreRunE.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	handle *storage.Handle
	now    func() time.Time
}

func rootCmd() *cobra.Command {
	e := &env{now: time.Now}
	var logLevel string

	cmd := &cobra.Command{
		Use:           "invctl",
		Short:         "Herramienta de operación de FreshStock",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if logLevel == "" {
				logLevel = cfg.App.LogLevel
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: logLevel, Output: cmd.ErrOrStderr()}).Zerolog()
			e.handle, err = storage.Open(cmd.Context(), cfg.Store, cfg.DB, e.now, e.log)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.handle != nil {
				e.handle.Close()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log (por defecto LOG_LEVEL)")

	cmd.AddCommand(seedCmd(e), reportCmd(e), exportCmd(e))
	return cmd
}

func (e *env) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
