package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/nexus-pos/internal/application/assistant"
	"github.com/jhoicas/nexus-pos/internal/application/navigation"
	"github.com/jhoicas/nexus-pos/internal/application/onboarding"
	"github.com/jhoicas/nexus-pos/internal/application/pos"
	"github.com/jhoicas/nexus-pos/internal/application/session"
	"github.com/jhoicas/nexus-pos/internal/application/usecase"
	"github.com/jhoicas/nexus-pos/internal/domain/cart"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/nexus"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/sessionstore"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/setup"
	"github.com/jhoicas/nexus-pos/internal/interfaces/term"
	"github.com/jhoicas/nexus-pos/pkg/config"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nexus-pos",
	Short: "Terminal de venta NexusRetail",
	Long:  "nexus-pos es la terminal interactiva del punto de venta NexusRetail: catálogo, carrito, cobro, inventario y asistente, contra el backend remoto.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
	SilenceUsage: true,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Borra el estado local (sesión, tienda, configuración inicial)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, err := sessionstore.New(cfg.App.DataDir)
		if err != nil {
			return err
		}
		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Println("Estado local borrado")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nexus-pos", version)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// runShell cablea todas las capas y arranca la terminal interactiva.
func runShell() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env})

	store, err := sessionstore.New(cfg.App.DataDir)
	if err != nil {
		return err
	}

	client := nexus.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	nav := navigation.NewController()
	sess := session.NewUseCase(client, store, nav, log)
	catalog := pos.NewCatalog(client, log)
	carrito := cart.New()
	receipts := pdf.NewReceiptWriter(cfg.App.ReceiptsDir)
	checkout := pos.NewCheckout(client, catalog, receipts, log)
	flow := onboarding.NewFlow(store, setup.NewSimulator(log), catalog, log)
	asst := assistant.New(client, nav, log)

	sh := term.NewShell(term.Deps{
		Session:   sess,
		Flow:      flow,
		Nav:       nav,
		Catalog:   catalog,
		Cart:      carrito,
		Checkout:  checkout,
		Assistant: asst,
		Products:  usecase.NewProductUseCase(client, catalog, log),
		Staff:     usecase.NewStaffUseCase(client, log),
		Reports:   usecase.NewReportsUseCase(client, log),
		Dashboard: usecase.NewDashboardUseCase(catalog),
		Store:     store,
		Timeout:   cfg.API.Timeout,
		In:        os.Stdin,
		Out:       os.Stdout,
		Log:       log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("backend", cfg.API.BaseURL).Dur("timeout", cfg.API.Timeout).Msg("terminal iniciada")
	start := time.Now()
	err = sh.Run(ctx)
	log.Info().Dur("session", time.Since(start)).Msg("terminal cerrada")
	return err
}
