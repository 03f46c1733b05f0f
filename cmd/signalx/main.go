// Command signalx loads a circuit document, drives it and prints the result.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/comalice/signalx"
	"github.com/comalice/signalx/internal/logging"
	"github.com/comalice/signalx/internal/metrics"
	"github.com/comalice/signalx/internal/platform/config"
	"github.com/comalice/signalx/internal/production"
	"github.com/comalice/signalx/internal/schema"
	"github.com/comalice/signalx/realtime"
)

// assignment is one -set name=bool flag.
type assignment struct {
	name  string
	state bool
}

type assignments []assignment

func (a *assignments) String() string {
	parts := make([]string, len(*a))
	for i, as := range *a {
		parts[i] = fmt.Sprintf("%s=%t", as.name, as.state)
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(value string) error {
	name, raw, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=bool, got %q", value)
	}
	state, err := signalx.ParseState(raw)
	if err != nil {
		return err
	}
	*a = append(*a, assignment{name: name, state: state})
	return nil
}

type options struct {
	circuit     string
	sets        assignments
	dot         bool
	json        bool
	events      bool
	verbose     bool
	run         time.Duration
	clock       string
	period      time.Duration
	metricsAddr string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "signalx: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, env config.Config, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("signalx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: signalx -circuit file.yaml [-set name=bool]... [-dot|-json] [-run d -clock name -period p]")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.circuit, "circuit", "", "circuit document (.yaml, .yml or .json)")
	fs.Var(&opts.sets, "set", "drive a node, as name=bool (repeatable, applied in order)")
	fs.BoolVar(&opts.dot, "dot", false, "print the circuit as Graphviz DOT")
	fs.BoolVar(&opts.json, "json", false, "print the circuit as a JSON document")
	fs.BoolVar(&opts.events, "events", false, "print every state change as a JSON line")
	fs.BoolVar(&opts.verbose, "v", false, "log every notification, not just changes (at debug level)")
	fs.DurationVar(&opts.run, "run", 0, "run the tick runtime for this long instead of applying -set directly")
	fs.StringVar(&opts.clock, "clock", "", "node toggled by a clock while running")
	fs.DurationVar(&opts.period, "period", 100*time.Millisecond, "clock period")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", env.MetricsAddr, "serve Prometheus metrics on this address")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.circuit == "" {
		fs.Usage()
		return options{}, errors.New("-circuit is required")
	}
	if opts.dot && opts.json {
		return options{}, errors.New("-dot and -json are mutually exclusive")
	}
	if opts.clock != "" && opts.run <= 0 {
		return options{}, errors.New("-clock needs -run")
	}
	if opts.period <= 0 {
		return options{}, fmt.Errorf("-period must be positive, got %s", opts.period)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	env, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := parseFlags(args, env, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr, env.LogLevel, env.LogFormat)
	if err != nil {
		return err
	}
	mode, err := env.Mode()
	if err != nil {
		return err
	}

	doc, err := schema.LoadFile(opts.circuit)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("circuit", doc.ID), slog.String("version", schema.ComputeVersion(&doc)))

	reg := metrics.NewRegistry(doc.ID)
	probes := []signalx.Probe{reg, logging.NewProbe(logger, opts.verbose)}

	var (
		publisher *production.ChannelPublisher
		printed   sync.WaitGroup
	)
	if opts.events {
		ch := make(chan production.PublishedEvent, 1024)
		publisher = production.NewChannelPublisher(doc.ID, ch, production.WithBlocking(ctx))
		probes = append(probes, publisher)

		printed.Add(1)
		go func() {
			defer printed.Done()
			enc := json.NewEncoder(stdout)
			for ev := range ch {
				if err := enc.Encode(ev); err != nil {
					logger.Warn("event not printed", slog.Any("error", err))
				}
			}
		}()
	}

	c, err := schema.Build(doc, signalx.WithMode(mode), signalx.WithProbe(signalx.MultiProbe(probes...)))
	if err != nil {
		return err
	}
	logger.Info("circuit loaded", slog.Int("nodes", c.Len()), slog.String("path", opts.circuit))

	if opts.metricsAddr != "" {
		shutdown := serveMetrics(opts.metricsAddr, reg, logger)
		defer shutdown()
	}

	if opts.run > 0 {
		err = runRealtime(ctx, c, env, opts, logger)
	} else {
		err = applyDirect(c, opts.sets)
	}
	if publisher != nil {
		publisher.Close()
		printed.Wait()
		if n := publisher.Dropped(); n > 0 {
			logger.Warn("events not printed", slog.Uint64("dropped", n))
		}
	}
	if err != nil {
		return err
	}

	return printCircuit(stdout, c, opts)
}

func applyDirect(c *signalx.Circuit, sets assignments) error {
	for _, as := range sets {
		if err := c.Set(as.name, as.state); err != nil {
			return err
		}
	}
	return nil
}

func runRealtime(ctx context.Context, c *signalx.Circuit, env config.Config, opts options, logger *slog.Logger) error {
	rt := realtime.NewRuntime(c, realtime.Config{
		TickRate:           env.TickRate,
		MaxRequestsPerTick: env.MaxRequests,
		Logger:             logger,
	})

	if opts.clock != "" {
		if _, ok := c.Node(opts.clock); !ok {
			return fmt.Errorf("clock: %w: %q", signalx.ErrUnknownNode, opts.clock)
		}
		clk := realtime.NewClock(opts.clock, opts.period)
		defer clk.Stop()
		rt.Attach(clk)
	}

	for _, as := range opts.sets {
		if err := rt.Set(as.name, as.state); err != nil {
			return err
		}
	}

	if err := rt.Start(ctx); err != nil {
		return err
	}

	timer := time.NewTimer(opts.run)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		logger.Info("interrupted")
	}
	return rt.Stop()
}

func serveMetrics(addr string, reg *metrics.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", slog.Any("error", err))
		}
	}
}

func printCircuit(w io.Writer, c *signalx.Circuit, opts options) error {
	vis := &production.DefaultVisualizer{}
	switch {
	case opts.dot:
		_, err := io.WriteString(w, vis.ExportDOT(c))
		return err
	case opts.json:
		data, err := vis.ExportJSON(c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	for _, n := range c.Nodes() {
		if _, err := fmt.Fprintf(w, "%s=%t\n", n.Name(), n.State()); err != nil {
			return err
		}
	}
	return nil
}
