package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sidescroller/game"
	"sidescroller/screen"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (or set SIDESCROLLER_CONFIG env var)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	debug := flag.Bool("debug", false, "Log game events and show FPS")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("SIDESCROLLER_CONFIG")
	}

	config := game.DefaultConfig()
	if path != "" {
		var err error
		config, err = game.LoadConfig(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("Loaded config from %s", path)
	}
	if *debug {
		config.Debug = true
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if config.Debug {
		log.Printf("Random seed %d", *seed)
	}

	app, err := screen.NewApp(config, *seed)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer app.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(*fullscreen)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
