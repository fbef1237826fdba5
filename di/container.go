package di

import (
	"context"
	"fmt"
	"log"

	"micfinder/api"
	"micfinder/api/sheets"
	"micfinder/config"
	redisdao "micfinder/dao/redis"
	"micfinder/db"
	"micfinder/localstore"
	"micfinder/server"
	"micfinder/server/handlers"
	services "micfinder/service"
	"micfinder/state"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Params are the wiring knobs main collects from flags and env.
type Params struct {
	Env        string // "prod" uses the real Redis and mic source
	Addr       string
	DataDir    string
	SourceBase string
	UserID     string
}

// Container holds all application dependencies.
type Container struct {
	AppState             *state.AppState
	RedisClient          db.RedisClient
	RedisFavoritesDao    *redisdao.RedisFavoritesDAO
	LocalStore           *localstore.Store
	MicSource            sheets.MicSourceAPI
	FavoritesService     *services.FavoritesService
	FilterStateService   *services.FilterStateService
	RenderService        *services.RenderService
	MicsRefresherService *services.MicsRefresherService
	MicHandler           *handlers.MicHandler
	FavoritesHandler     *handlers.FavoritesHandler
	FilterStateHandler   *handlers.FilterStateHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	MicFinderHttpServer  *server.MicFinderHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(params Params) *Container {
	log.Printf("initializing container - env: %s", params.Env)
	ctx := context.Background()

	// Initialize Redis client - mock outside prod, like the mic source
	var redisClient db.RedisClient
	if params.Env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.RedisPassword(),
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewDocRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis favorites DAO
	redisFavoritesDao := redisdao.NewRedisFavoritesDAO(redisClient)

	// Initialize local document store
	localStore, err := localstore.NewStore(params.DataDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to open local store: %v", err))
	}

	// Initialize mic source - fixture-backed mock outside prod
	var micSource sheets.MicSourceAPI
	if params.Env != "prod" {
		micSource = sheets.NewMicSourceClientMock(config.GetResourcePath(config.MICS_STATIC_RESOURCE))
		log.Printf("Using mock mic source")
	} else {
		log.Printf("Using prod mic source")
		base := params.SourceBase
		if base == "" {
			base = config.MIC_SOURCE_ENDPOINT_BASE
		}
		httpClient := api.NewHTTPClient(base)
		micSource = sheets.NewMicSourceClient(httpClient, config.MIC_SOURCE_CSV_PATH)
	}

	// Initialize app state and restore persisted selections
	appState := state.NewAppState()

	filterStateService := services.NewFilterStateService(localStore)
	appState.SetActiveFilters(filterStateService.Load())

	favoritesService := services.NewFavoritesService(redisFavoritesDao, localStore, params.UserID)
	appState.SetFavorites(favoritesService.Load())

	// Render orchestrator runs headless here; map/list collaborators
	// attach in embedded setups.
	renderService := services.NewRenderService(appState, nil, nil)

	micsRefresherService := services.NewMicsRefresherService(micSource, appState, localStore, renderService)

	// Initialize handlers
	micHandler := handlers.NewMicHandler(appState)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService, appState, renderService)
	filterStateHandler := handlers.NewFilterStateHandler(filterStateService, appState, renderService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(micHandler, favoritesHandler, filterStateHandler, muxRouter)

	// Initialize mic finder server
	micFinderHttpServer := server.NewMicFinderHttpServer(router, muxRouter, params.Addr)

	return &Container{
		AppState:             appState,
		RedisClient:          redisClient,
		RedisFavoritesDao:    redisFavoritesDao,
		LocalStore:           localStore,
		MicSource:            micSource,
		FavoritesService:     favoritesService,
		FilterStateService:   filterStateService,
		RenderService:        renderService,
		MicsRefresherService: micsRefresherService,
		MicHandler:           micHandler,
		FavoritesHandler:     favoritesHandler,
		FilterStateHandler:   filterStateHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		MicFinderHttpServer:  micFinderHttpServer,
	}
}
