package main

import (
	"log"
	"os"
	"time"

	"micfinder/config"
	"micfinder/di"
	"micfinder/util"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type options struct {
	Env            string `long:"env" env:"MICFINDER_ENV" default:"dev" description:"Runtime environment (dev uses mocked Redis and the bundled mic fixture, prod uses the real backends)"`
	Addr           string `long:"addr" env:"MICFINDER_ADDR" default:":8080" description:"HTTP listen address"`
	DataDir        string `long:"data-dir" env:"MICFINDER_DATA_DIR" default:"./data" description:"Directory for the local document store"`
	Source         string `long:"source" env:"MICFINDER_SOURCE" description:"Override the published mic sheet base URL"`
	UserID         string `long:"user" env:"MICFINDER_USER" description:"User id for remote favorites sync (empty means local only)"`
	RefreshMinutes int    `long:"refresh-minutes" default:"0" description:"Catalog refresh interval in minutes (0 uses the built-in schedule)"`
	Plot           string `long:"plot" description:"Write an HTML map of the current results to the given path and exit"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[MAIN] No .env file loaded: %v", err)
	}

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.Fatalf("[MAIN] Failed to parse flags: %v", err)
	}

	container := di.NewContainer(di.Params{
		Env:        opts.Env,
		Addr:       opts.Addr,
		DataDir:    opts.DataDir,
		SourceBase: opts.Source,
		UserID:     opts.UserID,
	})

	log.Println("[MAIN] Refreshing mic catalog")
	if err := container.MicsRefresherService.RefreshMicData(); err != nil {
		// The refresher already fell back to the last snapshot; the server
		// still starts and surfaces the load-error state.
		log.Printf("[MAIN] Initial catalog refresh failed: %v", err)
	}

	if opts.Plot != "" {
		results := container.RenderService.Results(time.Now())
		if err := util.PlotMicMap(results, nil, opts.Plot); err != nil {
			log.Fatalf("[MAIN] Failed to plot mic map: %v", err)
		}
		log.Printf("[MAIN] Wrote mic map to %s", opts.Plot)
		return
	}

	refreshEvery := time.Duration(opts.RefreshMinutes) * time.Minute
	if opts.RefreshMinutes <= 0 {
		refreshEvery = config.MICS_REFRESHER_SERVICE_SCHEDULE_MINUTES * time.Minute
	}
	log.Printf("[MAIN] Starting periodic refresh every %v", refreshEvery)
	container.MicsRefresherService.StartPeriodicJob(refreshEvery)

	log.Println("[MAIN] Starting server")
	container.MicFinderHttpServer.Start()
}
