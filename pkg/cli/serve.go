package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ojhahemant/nhs-triage-app/pkg/cli/config"
	httpctrl "github.com/ojhahemant/nhs-triage-app/pkg/controller/http"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/assistant"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/letter"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
	"github.com/ojhahemant/nhs-triage-app/pkg/usecase"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/logging"
	"github.com/ojhahemant/nhs-triage-app/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var openaiCfg config.OpenAI
	var geminiCfg config.Gemini
	var keywordCfg config.Keywords

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TRIAGE_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, openaiCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, keywordCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			oracleClient, err := openaiCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure classifier client")
			}
			if oracleClient == nil {
				logging.Default().Warn("OpenAI API key not configured, categorization falls back to the default result")
			}

			keywords, err := keywordCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load keyword configuration")
			}

			triageSvc, err := triage.New(oracleClient, keywords)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize triage service")
			}

			letterSvc, err := letter.New()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize letter service")
			}

			ucOpts := []usecase.Option{
				usecase.WithTriage(triageSvc),
				usecase.WithLetters(letterSvc),
				usecase.WithOracle(oracleClient),
				usecase.WithDefaultModel(openaiCfg.Model()),
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				assistantSvc, err := assistant.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize assistant service")
				}
				ucOpts = append(ucOpts, usecase.WithAssistant(assistantSvc))
				logging.Default().Info("Assistant service enabled")
			} else {
				logging.Default().Info("Gemini project not configured, assistant endpoint will be unavailable")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "backend", repoCfg.Backend())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
