package app

import (
	"io"
	"os"

	"cosmossdk.io/depinject"
	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"

	"wasmcrypto/app/metrics"
	"wasmcrypto/crypto/pqc/dilithium"
)

const (
	Name      = "wasmcrypto"
	EnvPrefix = "WASMCRYPTO"
)

// App bundles the adapter with the ambient services the binary needs.
type App struct {
	Adapter  *dilithium.Adapter
	Logger   log.Logger
	Registry *prometheus.Registry
	Config   Config
}

// Output is the destination of the application logger.
type Output struct {
	io.Writer
}

// AppConfig is the dependency graph that assembles an App.
func AppConfig() depinject.Config {
	return depinject.Provide(
		ProvideLogger,
		ProvideRegistry,
		ProvidePrimitive,
		ProvideAdapter,
	)
}

func ProvideLogger(cfg Config, out Output) (log.Logger, error) {
	w := out.Writer
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(cfg, w)
}

func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// ProvidePrimitive returns the linked Dilithium2 engine, wrapped with metrics
// when enabled and with debug logging.
func ProvidePrimitive(cfg Config, logger log.Logger, reg *prometheus.Registry) (dilithium.Primitive, error) {
	p := dilithium.Default()
	if cfg.Metrics {
		m, err := metrics.New(reg)
		if err != nil {
			return nil, err
		}
		p = metrics.Instrument(p, m)
	}
	return withLogging(p, logger), nil
}

func ProvideAdapter(p dilithium.Primitive) (*dilithium.Adapter, error) {
	return dilithium.NewAdapter(p)
}

// New validates cfg and assembles an App whose logger writes to w.
func New(cfg Config, w io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{Config: cfg}
	if err := depinject.Inject(
		depinject.Configs(
			AppConfig(),
			depinject.Supply(cfg, Output{Writer: w}),
		),
		&app.Adapter,
		&app.Logger,
		&app.Registry,
	); err != nil {
		return nil, err
	}

	app.Logger.Debug("adapter ready", "backend", dilithium.ActiveBackend(), "scheme", app.Adapter.Primitive().Name(), "metrics", cfg.Metrics)
	return app, nil
}
