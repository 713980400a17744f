package main

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/benz9527/dsviz/observability"
)

const (
	envLogLevel = "DSVIZ_LOG_LVL"
	envMetrics  = "DSVIZ_METRICS"
)

type config struct {
	logLevel        string
	logText         bool
	metrics         observability.MetricsExporterType
	metricsAddr     string
	metricsInterval time.Duration
	// Command lines given as arguments. Read from the input when empty.
	commands []string
}

// parseConfig reads flags from args. The environment supplies the defaults
// of the log level and the metrics exporter.
func parseConfig(args []string, getenv func(string) string, errOut io.Writer) (config, error) {
	var (
		cfg       config
		metrics   string
		fs        = flag.NewFlagSet("dsviz", flag.ContinueOnError)
		defLvl    = getenv(envLogLevel)
		defMetric = getenv(envMetrics)
	)
	if len(strings.TrimSpace(defLvl)) == 0 {
		defLvl = "WARN"
	}
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.logLevel, "log-level", defLvl, "log level, DEBUG|INFO|WARN|ERROR")
	fs.BoolVar(&cfg.logText, "log-text", false, "plain text logs instead of JSON")
	fs.StringVar(&metrics, "metrics", defMetric, "metrics exporter, none|stdout|prometheus")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", ":9464", "prometheus scrape address")
	fs.DurationVar(&cfg.metricsInterval, "metrics-interval", 10*time.Second, "stdout metrics export interval")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	typ, err := observability.ParseMetricsExporterType(metrics)
	if err != nil {
		return cfg, err
	}
	cfg.metrics = typ
	cfg.commands = fs.Args()
	return cfg, nil
}
