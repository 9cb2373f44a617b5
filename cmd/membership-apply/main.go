// cmd/membership-apply/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"membership-portal/internal/common/config"
	commonhttp "membership-portal/internal/common/http"
	"membership-portal/internal/common/logger"
	"membership-portal/internal/common/observability"
	processsubmission "membership-portal/internal/membership/process-submission"
	submitapplication "membership-portal/internal/membership/submit-application"
	validateform "membership-portal/internal/membership/validate-form"
)

var (
	app       *cli.App
	gitCommit string
	gitDate   string
	gitTag    string

	metricsRegisterer prometheus.Registerer = prometheus.DefaultRegisterer
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML config file (default: configs/config.yaml lookup)",
	}
	endpointFlag = &cli.StringFlag{
		Name:  "endpoint",
		Usage: "Override the membership API base URL",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

func init() {
	app = cli.NewApp()
	app.Name = "membership-apply"
	app.EnableBashCompletion = true
	app.Usage = "Validate and submit a membership application"
	app.Flags = append([]cli.Flag{configFileFlag, endpointFlag, debugFlag}, formFlags()...)
	app.Commands = []*cli.Command{
		{
			Name:   "validate",
			Usage:  "Check the application without sending it",
			Flags:  formFlags(),
			Action: validate,
		},
		{
			Name: "version",
			Action: func(ctx *cli.Context) error {
				fmt.Fprintln(ctx.App.Writer, versionString())
				return nil
			},
		},
	}
	app.Action = run
}

func versionString() string {
	version := gitTag
	if version == "" {
		version = "dev"
	}
	if len(gitCommit) >= 8 {
		version += "-" + gitCommit[:8]
	}
	if gitDate != "" {
		version += " (" + gitDate + ")"
	}
	return version
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := ctx.String(configFileFlag.Name); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if endpoint := ctx.String(endpointFlag.Name); endpoint != "" {
		cfg.API.BaseURL = strings.TrimRight(endpoint, "/")
	}
	if ctx.Bool(debugFlag.Name) {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func validate(ctx *cli.Context) error {
	report := validateform.ValidateForm(newFlagSource(ctx).ReadForm())
	if report.Valid {
		fmt.Fprintln(ctx.App.Writer, "Application is valid")
		return nil
	}
	return cli.Exit(strings.Join(report.Errors, "\n"), 1)
}

func run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("config load failed: %v", err), 1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs, err := observability.NewWithRegisterer(app.Name, metricsRegisterer)
	if err != nil {
		return cli.Exit(fmt.Sprintf("observability init failed: %v", err), 1)
	}
	defer obs.Shutdown()

	apiConfig := submitapplication.ConfigFrom(cfg.API)
	svc := submitapplication.NewService(submitapplication.ServiceDependencies{
		Client:        commonhttp.NewClient(apiConfig.Timeout).WithUserAgent(app.Name + "/" + versionString()),
		Logger:        log,
		Observability: obs,
	}, apiConfig)

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLog.Debug("submitting application", zap.String("endpoint", cfg.API.BaseURL))
	out := processsubmission.NewHandler(svc, log).HandleSubmit(signalCtx, newFlagSource(ctx), printNotifier(ctx))
	if out.Outcome != processsubmission.OutcomeSubmitted {
		return cli.Exit("", 1)
	}
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
