package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/secretboot/secretboot/auth"
	"github.com/secretboot/secretboot/bootstrap"
	"github.com/secretboot/secretboot/cmd/secretbootd/handlers"
	"github.com/secretboot/secretboot/health"
	"github.com/secretboot/secretboot/observe"
	"github.com/secretboot/secretboot/secret"
)

const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2

	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"

	// signingKeyVar holds the /envz bearer token key; when absent the
	// endpoint is disabled.
	signingKeyVar = "ENVZ_SIGNING_KEY"

	shutdownTimeout = 15 * time.Second
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func printVersion() {
	fmt.Printf("secretbootd version %s\n", version)
	fmt.Printf("commit: %s\n", commit)
	fmt.Printf("built: %s\n", buildDate)
	fmt.Printf("go version: %s\n", runtime.Version())
	fmt.Printf("os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func run(args []string) int {
	flags := flag.NewFlagSet("secretbootd", flag.ContinueOnError)
	addr := flags.String("addr", DefaultAddr, "Listen address; the default binds all interfaces as the container contract requires")
	secretsPath := flags.String("secrets-file", bootstrap.DefaultSecretsPath, "Path of the agent-materialized secrets file")
	setProcessEnv := flags.Bool("set-process-env", true, "Also apply parsed secrets via os.Setenv")
	logLevel := flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	tracingExporter := flags.String("tracing-exporter", "none", "Tracing exporter (otlp, stdout, none)")
	samplePct := flags.Float64("trace-sample-pct", 1.0, "Trace sampling percentage (0.0-1.0)")
	metricsExporter := flags.String("metrics-exporter", "none", "Metrics exporter (otlp, prometheus, stdout, none)")
	showVersion := flags.Bool("version", false, "Print version and exit")

	if err := flags.Parse(args); err != nil {
		return ExitUsageError
	}
	if *showVersion {
		printVersion()
		return ExitSuccess
	}

	log := observe.NewLogger(*logLevel)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Bootstrap runs before anything else touches configuration: the
	// environment snapshot handed to the handlers is complete, and no
	// route is registered until it is.
	env := bootstrap.Run(ctx, bootstrap.Config{
		Path:          *secretsPath,
		SetProcessEnv: *setProcessEnv,
		Logger:        log,
	})

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: "secretboot",
		Version:     version,
		Tracing: observe.TracingConfig{
			Enabled:   *tracingExporter != "none",
			Exporter:  *tracingExporter,
			SamplePct: *samplePct,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  *metricsExporter != "none",
			Exporter: *metricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   *logLevel,
		},
	})
	if err != nil {
		log.Error(ctx, "failed to initialize observability", observe.Field{Key: "error", Value: err.Error()})
		return ExitFailure
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			log.Warn(shutdownCtx, "telemetry shutdown incomplete", observe.Field{Key: "error", Value: err.Error()})
		}
	}()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		log.Error(ctx, "failed to build request middleware", observe.Field{Key: "error", Value: err.Error()})
		return ExitFailure
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(mw.Handler())

	agg := health.NewAggregator()
	agg.Register("secrets_file", health.NewSecretsFileChecker(*secretsPath))
	agg.Register("memory", health.NewMemoryChecker(health.MemoryCheckerConfig{}))
	health.RegisterHandlers(e, agg)

	e.GET("/", handlers.GreetingHandler(env))

	if *metricsExporter == "prometheus" {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	registerEnvz(ctx, e, env, *secretsPath, log)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(ctx, "server starting",
			observe.Field{Key: "addr", Value: *addr},
			observe.Field{Key: "version", Value: version})
		if err := e.Start(*addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info(shutdownCtx, "shutting down")
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(context.Background(), "server exited with error", observe.Field{Key: "error", Value: err.Error()})
		return ExitFailure
	}
	return ExitSuccess
}

// registerEnvz wires the bearer-guarded /envz diagnostic endpoint. The
// signing key setting may itself be a secretref resolved through the
// provider registry, so operators can point it at the secrets file or at
// Vault directly. No key, no endpoint.
func registerEnvz(ctx context.Context, e *echo.Echo, env *bootstrap.Environment, secretsPath string, log observe.Logger) {
	setting, ok := env.Lookup(signingKeyVar)
	if !ok || setting == "" {
		log.Debug(ctx, "envz endpoint disabled: no signing key configured")
		return
	}

	resolver, err := buildResolver(env, secretsPath)
	if err != nil {
		log.Warn(ctx, "envz endpoint disabled: secret providers unavailable",
			observe.Field{Key: "error", Value: err.Error()})
		return
	}
	defer resolver.Close()

	key, err := resolver.ResolveValue(ctx, setting)
	if err != nil || key == "" {
		fields := []observe.Field{{Key: "setting", Value: signingKeyVar}}
		if err != nil {
			fields = append(fields, observe.Field{Key: "error", Value: err.Error()})
		}
		log.Warn(ctx, "envz endpoint disabled: signing key did not resolve", fields...)
		return
	}

	verifier := auth.NewVerifier(auth.VerifierConfig{}, auth.NewStaticKeyProvider([]byte(key)))
	e.GET("/envz", handlers.EnvzHandler(env), auth.RequireBearer(verifier))
	log.Info(ctx, "envz endpoint enabled")
}

// buildResolver assembles the secret resolver from the builtin provider
// registry: env and file always, vault only when VAULT_ADDR is set.
func buildResolver(env *bootstrap.Environment, secretsPath string) (*secret.Resolver, error) {
	registry := secret.NewBuiltinRegistry()
	resolver := secret.NewResolver(true, env.Lookup)

	envProvider, err := registry.Create("env", map[string]any{
		"lookup": secret.LookupFunc(env.Lookup),
	})
	if err != nil {
		return nil, err
	}
	resolver.Register(envProvider)

	fileProvider, err := registry.Create("file", map[string]any{"path": secretsPath})
	if err != nil {
		return nil, err
	}
	resolver.Register(fileProvider)

	if addr, ok := env.Lookup("VAULT_ADDR"); ok && addr != "" {
		vaultProvider, err := registry.Create("vault", map[string]any{
			"address": addr,
			"token":   env.Get("VAULT_TOKEN"),
			"mount":   env.Get("VAULT_KV_MOUNT"),
		})
		if err != nil {
			return nil, err
		}
		resolver.Register(vaultProvider)
	}

	return resolver, nil
}
