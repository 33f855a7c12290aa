package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"querydeck/internal/backend"
	"querydeck/internal/config"
	"querydeck/internal/logging"
	"querydeck/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var baseURL string
	var debug bool
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&baseURL, "base-url", "", "Search backend base URL (overrides config)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Error loading config %s: %v\n", configPath, err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.Backend.BaseURL = baseURL
	}

	// Set up logging
	logger, closeLogger, err := logging.New("querydeck.log", debug || cfg.Debug)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLogger()

	logger.Info("starting querydeck",
		zap.String("base_url", cfg.Backend.BaseURL),
		zap.String("config", configPath))

	client := backend.NewClient(backend.Options{
		BaseURL:      cfg.Backend.BaseURL,
		SuggestPath:  cfg.Backend.SuggestPath,
		SearchPath:   cfg.Backend.SearchPath,
		PageSize:     cfg.Backend.PageSize,
		SuggestCount: cfg.Backend.SuggestCount,
		Timeout:      time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}, logger)

	// Create UI model
	uiModel := ui.NewModel(cfg, client, logger)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Run the UI
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exited normally")
}
