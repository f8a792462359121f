package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"itam/providers"
	calendarprovider "itam/providers/calendarProvider"
	configprovider "itam/providers/configProvider"
	"itam/providers/databaseProvider"
	"itam/providers/loggerProvider"
	"itam/providers/middlewareprovider"
	redisprovider "itam/providers/redisProvider"
	allocationservice "itam/services/allocation"
	directoryservice "itam/services/directory"
	registryservice "itam/services/registry"
	witnessservice "itam/services/witness"
	"itam/utils"
)

type Server struct {
	Config            providers.ConfigProvider
	DB                providers.DBProvider
	Redis             providers.RedisProvider
	Logger            providers.ZapLoggerProvider
	Middleware        providers.AuthMiddlewareService
	DirectoryHandler  *directoryservice.DirectoryHandler
	AllocationHandler *allocationservice.AllocationHandler
	RegistryHandler   *registryservice.RegistryHandler
	WitnessHandler    *witnessservice.WitnessHandler
	httpServer        *http.Server
}

func SrvInit() *Server {
	utils.InitLogger()

	logger := loggerProvider.NewLogProvider()
	logger.InitLogger()

	cfg := configprovider.NewConfigProvider()
	cfg.LoadEnv()

	db := databaseProvider.NewDBProvider(cfg.GetDatabaseString())
	middleware := middlewareprovider.NewAuthMiddlewareService(db.DB())

	var redis providers.RedisProvider
	var calendar providers.HolidayCalendar
	if addr := cfg.GetRedisAddr(); addr != "" {
		redis = redisprovider.NewRedisProvider(addr)
		calendar = calendarprovider.NewHolidayCalendar(redis, cfg.GetHolidayDates())
	} else {
		calendar = calendarprovider.NewStaticHolidayCalendar(cfg.GetHolidayDates())
	}
	clock := calendarprovider.NewSystemClock()

	// repositories
	directoryRepo := directoryservice.NewDirectoryRepository(db.DB())
	allocationRepo := allocationservice.NewAllocationRepository(db.DB())
	registryRepo := registryservice.NewRegistryRepository(db.DB())
	witnessRepo := witnessservice.NewWitnessRepository(db.DB())

	// services
	directoryService := directoryservice.NewDirectoryService(directoryRepo)
	allocationService := allocationservice.NewAllocationService(
		allocationRepo, directoryService, db.DB(), clock, calendar,
		allocationservice.DefaultWitnessPolicy())
	registryService := registryservice.NewRegistryService(registryRepo)
	witnessService := witnessservice.NewWitnessService(witnessRepo)

	// handlers
	directoryHandler := directoryservice.NewDirectoryHandler(directoryService, middleware)
	allocationHandler := allocationservice.NewAllocationHandler(allocationService, middleware)
	registryHandler := registryservice.NewRegistryHandler(registryService, middleware)
	witnessHandler := witnessservice.NewWitnessHandler(witnessService, middleware)

	return &Server{
		Config:            cfg,
		DB:                db,
		Redis:             redis,
		Logger:            logger,
		Middleware:        middleware,
		DirectoryHandler:  directoryHandler,
		AllocationHandler: allocationHandler,
		RegistryHandler:   registryHandler,
		WitnessHandler:    witnessHandler,
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	fmt.Println("server running on", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func (s *Server) Stop() {
	fmt.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("error shutting down server: %v", err)
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	if err := s.DB.Close(); err != nil {
		log.Printf("error closing DB: %v", err)
	}

	fmt.Println("Server shutdown complete.")
}
