package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/leofalp/oaikit/config"
	"github.com/leofalp/oaikit/core/client"
	"github.com/leofalp/oaikit/core/client/middleware"
	"github.com/leofalp/oaikit/providers/observability"
	"github.com/leofalp/oaikit/providers/observability/promobs"
	"github.com/leofalp/oaikit/providers/observability/slogobs"
	"github.com/leofalp/oaikit/providers/storage"
)

// app holds the global flags and what PersistentPreRunE derives from them.
type app struct {
	configPath      string
	credentialsPath string
	logLevel        string
	logFormat       string
	imageDir        string
	noSave          bool
	verbose         bool
	metrics         bool
	timeout         time.Duration

	fs         afero.Fs
	httpClient *http.Client
	logErr     io.Writer

	file     config.File
	logger   *slog.Logger
	registry *prometheus.Registry
}

func newApp() *app {
	return &app{
		fs:              afero.NewOsFs(),
		logErr:          os.Stderr,
		credentialsPath: config.DefaultCredentialPath(),
		timeout:         2 * time.Minute,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "oaikit",
		Short:         "Send completion, chat and image requests to the OpenAI API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (.yaml, .toml or .json)")
	flags.StringVar(&a.credentialsPath, "credentials", a.credentialsPath, "credential file read when no key is configured")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (defaults OAIKIT_LOG_LEVEL or info)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text|json (defaults OAIKIT_LOG_FORMAT or text)")
	flags.StringVar(&a.imageDir, "image-dir", "", "directory generated images are saved to")
	flags.BoolVar(&a.noSave, "no-save", false, "keep generated images in memory only")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every request and response body")
	flags.BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics when the command ends")
	flags.DurationVar(&a.timeout, "timeout", a.timeout, "HTTP client timeout")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup()
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if !a.metrics {
			return nil
		}
		return a.writeMetrics(cmd.OutOrStdout())
	}

	root.AddCommand(
		a.completeCmd(),
		a.chatCmd(),
		a.imageCmd(),
		a.sendCmd(),
		a.modelsCmd(),
		a.authCmd(),
	)
	return root
}

// setup loads the settings file and builds the logger. Flags win over the
// file, the file wins over the environment.
func (a *app) setup() error {
	if a.configPath != "" {
		file, err := config.LoadFileFS(a.fs, a.configPath)
		if err != nil {
			return err
		}
		a.file = file
	}

	level := firstNonEmpty(a.logLevel, a.file.LogLevel)
	format := firstNonEmpty(a.logFormat, a.file.LogFormat)
	opts := []slogobs.Option{slogobs.WithOutput(a.logErr)}
	if level != "" {
		opts = append(opts, slogobs.WithLevel(slogobs.ParseLogLevel(level)))
	}
	if format != "" {
		opts = append(opts, slogobs.WithFormat(slogobs.ParseFormat(format)))
	}
	a.logger = slogobs.NewLogger(opts...)

	if a.metrics {
		a.registry = prometheus.NewRegistry()
	}
	return nil
}

// credentials resolves the key: settings file, then environment, then the
// credential file.
func (a *app) credentials() config.Configuration {
	return a.file.Configuration(config.Resolve(a.fs, a.credentialsPath))
}

func (a *app) newClient() *client.Client {
	cfg := a.credentials()

	httpClient := a.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: a.timeout}
	}

	var observer observability.Provider = slogobs.New(slogobs.WithLogger(a.logger))
	if a.registry != nil {
		observer = promobs.Wrap(a.registry, observer)
	}

	opts := []func(*client.ClientOptions){
		client.WithConfiguration(cfg),
		client.WithHTTPClient(httpClient),
		client.WithLogger(a.logger),
		client.WithObserver(observer),
	}
	if a.verbose {
		opts = append(opts, client.WithMiddleware(middleware.NewLoggingMiddleware(a.logger, middleware.LogLevelVerbose)))
	}

	switch dir := firstNonEmpty(a.imageDir, a.file.ImageDir); {
	case a.noSave || !a.file.PersistImages():
		opts = append(opts, client.WithoutImagePersistence())
	case dir != "":
		opts = append(opts, client.WithImageStore(storage.NewFileStore(a.fs, dir)))
	}
	return client.New(opts...)
}

func (a *app) writeMetrics(w io.Writer) error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
