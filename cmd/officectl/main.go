// officectl runs the office device workflow.
//
// It loads the configuration, builds the device registry, wires the status
// stream to the configured outputs (console, log, SQLite journal, MQTT and
// InfluxDB) and drives every copier through a power, scan and print cycle.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/nerrad567/gray-logic-office/migrations"

	"github.com/nerrad567/gray-logic-office/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-office/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-office/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-office/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-office/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-office/internal/journal"
	"github.com/nerrad567/gray-logic-office/internal/office"
	"github.com/nerrad567/gray-logic-office/internal/status"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the application logic, separated from main for testability.
// Status lines go to stdout when the console output is enabled.
func run(ctx context.Context, stdout io.Writer) error {
	log := logging.Default()
	log.Info("starting office devices",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	log = logging.New(cfg.Logging, version)

	var sinks []office.Sink
	if cfg.Status.Log {
		sinks = append(sinks, status.Log(log.With("component", "status")))
	}
	if cfg.Status.Console {
		sinks = append(sinks, status.Console(stdout, cfg.Status.TimestampLayout))
	}

	var repo journal.Repository
	if cfg.Journal.Enabled {
		db, openErr := database.Open(ctx, database.Config{
			Path:        cfg.Journal.Path,
			WALMode:     cfg.Journal.WALMode,
			BusyTimeout: cfg.Journal.BusyTimeout,
		})
		if openErr != nil {
			return fmt.Errorf("opening journal: %w", openErr)
		}
		defer func() {
			log.Info("closing journal")
			if closeErr := db.Close(); closeErr != nil {
				log.Error("error closing journal", "error", closeErr)
			}
		}()

		if migrateErr := db.Migrate(ctx); migrateErr != nil {
			return fmt.Errorf("running migrations: %w", migrateErr)
		}
		repo = journal.NewSQLiteRepository(db.DB)
		sinks = append(sinks, status.Journal(repo, 0))
		log.Info("journal ready", "path", cfg.Journal.Path)
	}

	if cfg.MQTT.Enabled {
		mqttClient, connErr := mqtt.Connect(cfg.MQTT)
		if connErr != nil {
			return fmt.Errorf("connecting to MQTT: %w", connErr)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetLogger(log)
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
		sinks = append(sinks, status.MQTT(mqttClient, mqttClient.QoS()))
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
	}

	if cfg.InfluxDB.Enabled {
		influxClient, connErr := influxdb.Connect(ctx, cfg.InfluxDB)
		if connErr != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", connErr)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		sinks = append(sinks, status.Metrics(influxClient))
		log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)
	}

	registry, err := buildRegistry(cfg, status.Multi(sinks...), log)
	if err != nil {
		return err
	}
	log.Info("device registry initialised", "devices", registry.Count())

	for _, u := range registry.ListByKind(office.KindCopier) {
		if ctx.Err() != nil {
			log.Info("shutdown signal received, stopping")
			break
		}
		c, copierErr := registry.Copier(u.ID())
		if copierErr != nil {
			return copierErr
		}
		if workErr := runCopier(c); workErr != nil {
			return fmt.Errorf("device %s: %w", c.ID(), workErr)
		}
	}

	stats := registry.GetStats()
	log.Info("workflow complete",
		"devices", stats.TotalDevices,
		"power_cycles", stats.PowerCycles,
		"prints", stats.Prints,
		"scans", stats.Scans,
	)

	if repo != nil {
		entries, listErr := repo.List(ctx, journal.Filter{})
		if listErr != nil {
			return fmt.Errorf("reading journal: %w", listErr)
		}
		log.Info("journal entries", "recent", len(entries))
	}

	return nil
}

// getConfigPath returns OFFICE_CONFIG if set, otherwise the default path.
func getConfigPath() string {
	if path := os.Getenv("OFFICE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// buildRegistry creates one device per configured entry, all sharing sink.
func buildRegistry(cfg *config.Config, sink office.Sink, log *logging.Logger) (*office.Registry, error) {
	registry := office.NewRegistry()
	registry.SetLogger(log)

	for _, d := range cfg.Devices {
		var u office.Unit
		switch d.Kind {
		case config.KindCopier:
			opts := []office.Option{
				office.WithSink(sink),
				office.WithLogger(log),
			}
			if d.Name != "" {
				opts = append(opts, office.WithName(d.Name))
			}
			u = office.NewCopier(d.ID, opts...)
		default:
			return nil, fmt.Errorf("device %s: unsupported kind %q", d.ID, d.Kind)
		}

		if err := registry.Add(u); err != nil {
			return nil, fmt.Errorf("registering device: %w", err)
		}
	}
	return registry, nil
}

// runCopier powers the copier on, scans one document per format, prints the
// last one, runs a scan-and-print and powers off again.
func runCopier(c *office.Copier) error {
	c.PowerOn()

	var last *office.Document
	for _, f := range []office.Format{office.FormatImage, office.FormatPDF, office.FormatText} {
		doc, err := c.Scan(f)
		if err != nil {
			return err
		}
		last = doc
	}
	if err := c.Print(last); err != nil {
		return err
	}
	if err := c.ScanAndPrint(); err != nil {
		return err
	}

	c.PowerOff()
	return nil
}
