package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"climatesim"
	"climatesim/internal/handlers"
	"climatesim/internal/logger"
	"climatesim/internal/metrics"
	"climatesim/internal/repository"
	"climatesim/internal/server"
	"climatesim/internal/service"
	"climatesim/internal/sim"
)

const defaultSimTick = 4 * time.Second

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// wire dependencies
	repos := repository.NewRepository(db)
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	simCfg := simConfig()
	engine, err := service.BootstrapEngine(ctx, simCfg, repos.KV, log)
	if err != nil {
		log.Fatalw("failed to bootstrap engine", "err", err)
	}

	services := service.NewService(engine, repos, m, log)
	apiHandler := handlers.NewHandler(services, log, registry)

	// start simulator (via composed service)
	go services.Simulator.Run(ctx, simCfg.TickInterval)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// simConfig assembles the simulation parameters from configuration,
// falling back to sensible defaults for anything unset.
func simConfig() sim.Config {
	tick := viper.GetDuration("sim.tick_interval")
	if tick <= 0 {
		tick = defaultSimTick
	}
	wattage := viper.GetFloat64("sim.wattage_w")
	if wattage <= 0 {
		wattage = 1500
	}
	tariff := viper.GetFloat64("sim.tariff_per_kwh")
	if tariff <= 0 {
		tariff = 0.12
	}

	initial := climatesim.Settings{
		SelectedRoom: climatesim.RoomLivingRoom,
		Location:     sim.DefaultLocation,
		Mode:         climatesim.ModeOff,
		Fan:          climatesim.FanAuto,
		Unit:         climatesim.UnitCelsius,
		DesiredTempC: 22,
		InsideTempC:  25,
	}
	if room := climatesim.Room(viper.GetString("sim.room")); room.Valid() {
		initial.SelectedRoom = room
	}
	if loc := viper.GetString("sim.location"); loc != "" {
		if _, err := sim.LookupEnvelope(loc); err == nil {
			initial.Location = loc
		}
	}
	if desired := viper.GetFloat64("sim.desired_temp_c"); desired >= sim.DesiredMinC && desired <= sim.DesiredMaxC {
		initial.DesiredTempC = desired
	}

	return sim.Config{
		TickInterval: tick,
		WattageW:     wattage,
		TariffPerKWh: tariff,
		Initial:      initial,
	}
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
