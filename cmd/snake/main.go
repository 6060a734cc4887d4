package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"snake/internal/app"
	"snake/internal/audio"
	"snake/internal/config"
	"snake/internal/storage"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	settings, err := config.Parse("snake", os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Failed to load settings: %v", err)
	}

	store, err := storage.OpenFileStore(settings.DataPath)
	if err != nil {
		log.Fatalf("Failed to open save file: %v", err)
	}

	player := audio.NewPlayer(audio.Config{
		Enabled:    settings.Audio.Enabled,
		Volume:     settings.Audio.Volume,
		SampleRate: audio.DefaultSampleRate,
	})

	application, err := app.NewApp(app.Options{
		Settings: settings,
		Store:    store,
		Cues:     player,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	engine := graphics.NewEngine(application, settings.Window.Width, settings.Window.Height)

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewSettingsScreen(engine),
		screens.NewGameScreen(engine),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		if err := store.Flush(); err != nil {
			log.Printf("Failed to flush save file: %v", err)
		}
		os.Exit(0)
	}()

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	if err := application.Flush(); err != nil {
		log.Printf("Failed to flush save file: %v", err)
	}
}
