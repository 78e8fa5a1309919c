package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"sidescroller/art"
	"sidescroller/game"
)

func main() {
	outDir := flag.String("out", "assets", "Directory to write the PNG files to")
	configPath := flag.String("config", "", "YAML config file for sprite sizes")
	seed := flag.Int64("seed", 1, "Seed for the star fields")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = game.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	sprites := map[string]image.Image{
		"player.png":     art.Player(int(config.Player.Width), int(config.Player.Height)),
		"projectile.png": art.Projectile(int(config.Weapon.ProjectileWidth), int(config.Weapon.ProjectileHeight)),
	}
	for _, t := range game.EnemyTypes {
		sprites[fmt.Sprintf("enemy_%s.png", t)] = art.Enemy(t, int(config.Enemy.Width), int(config.Enemy.Height))
	}
	layers := art.Background(len(config.Background.Parallax), int(config.FieldWidth), int(config.FieldHeight), *seed)
	for i, img := range layers {
		sprites[fmt.Sprintf("background_%d.png", i)] = img
	}

	for name, img := range sprites {
		path := filepath.Join(*outDir, name)
		if err := writePNG(path, img); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s", path)
	}
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode: %w", err)
	}
	return file.Close()
}
