package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ignite/contact-directory/internal/api"
	"github.com/ignite/contact-directory/internal/config"
	"github.com/ignite/contact-directory/internal/domain"
	"github.com/ignite/contact-directory/internal/metrics"
	"github.com/ignite/contact-directory/internal/pkg/logger"
	"github.com/ignite/contact-directory/internal/repository/memory"
	"github.com/ignite/contact-directory/internal/service/contact"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
	appName = "contacts"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Contact directory web server",
		Long: `Serves a contact directory: a sorted listing of contacts and a form
for adding new ones. Contacts live in memory for the lifetime of the process.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "Config file path (YAML)")

	cmd.AddCommand(checkCmd(&configPath))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// checkCmd runs one submission against a freshly seeded directory and
// prints the outcome without starting a server.
func checkCmd(configPath *string) *cobra.Command {
	var sub domain.Submission

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a contact submission against the seeded directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			svc, err := newService(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}

			res, err := svc.Create(cmd.Context(), sub)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Accepted() {
				fmt.Fprintf(out, "accepted: %s %s %s\n", res.Contact.FirstName, res.Contact.LastName, res.Contact.PhoneNumber)
				return nil
			}
			for _, e := range res.Errors {
				fmt.Fprintf(out, "%s\t%s\n", e.Field, e.Message)
			}
			return fmt.Errorf("submission rejected with %d error(s)", len(res.Errors))
		},
	}
	cmd.Flags().StringVar(&sub.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&sub.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&sub.PhoneNumber, "phone-number", "", "Phone number")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFromEnv(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	logger.SetRedactPII(cfg.Logging.Redact())
	return cfg, nil
}

// newService builds the in-memory directory and loads the configured seed
// through the normal submission path, so seeds obey the same rules.
func newService(ctx context.Context, cfg *config.Config, rec *metrics.Recorder) (*contact.Service, error) {
	svc := contact.NewService(memory.NewContactRepo(), rec)
	for _, s := range cfg.Contacts.Submissions() {
		res, err := svc.Create(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("seed contacts: %w", err)
		}
		if !res.Accepted() {
			logger.Warn("seed contact rejected", "first_name", s.FirstName, "last_name", s.LastName, "reason", res.Errors[0].Message)
		}
	}
	return svc, nil
}

// checkPortAvailable verifies that the target port is not already in use.
func checkPortAvailable(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("address %s is already in use: %w", addr, err)
	}
	return ln.Close()
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
	if err := checkPortAvailable(addr); err != nil {
		return fmt.Errorf("pre-flight check failed: %w", err)
	}

	var rec *metrics.Recorder
	if cfg.Metrics.Enabled {
		rec = metrics.NewRecorder(cfg.Metrics.Namespace, cfg.Metrics.Runtime)
	}

	svc, err := newService(ctx, cfg, rec)
	if err != nil {
		return err
	}
	logger.Info("directory loaded", "contacts", svc.Count(ctx))

	server, err := api.NewServer(cfg.Server, svc, rec)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
