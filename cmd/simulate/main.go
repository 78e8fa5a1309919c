package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"sidescroller/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 1, "Random seed")
	duration := flag.Duration("duration", 5*time.Minute, "Maximum simulated play time")
	fps := flag.Int("fps", 60, "Simulated frames per second")
	enemyFire := flag.Bool("enemy-fire", false, "Let shooters fire back")
	debug := flag.Bool("debug", false, "Log game events")
	cpuProfile := flag.String("cpuprofile", "", "Write a CPU profile to this file")
	tracePath := flag.String("trace", "", "Write an execution trace to this file")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = game.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	config.EnemyFire = config.EnemyFire || *enemyFire
	config.Debug = config.Debug || *debug

	profiler, err := StartProfiler(*cpuProfile, *tracePath)
	if err != nil {
		log.Fatalf("Failed to start profiler: %v", err)
	}
	defer profiler.Stop()

	pilot := NewAutopilot()
	assets := game.NopAssets{Layers: len(config.Background.Parallax)}
	session, err := game.NewSession(config, pilot, assets, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	pilot.Attach(session)

	deltaTime := 1 / float64(*fps)
	maxFrames := int(duration.Seconds() * float64(*fps))

	start := time.Now()
	frames := 0
	for ; frames < maxFrames && !session.GameOver(); frames++ {
		pilot.Think()
		session.Update(deltaTime)
	}
	wall := time.Since(start)

	log.Printf("Simulated %.1fs in %d frames (%v wall, %.0f frames/s)",
		session.Elapsed(), frames, wall.Round(time.Millisecond), float64(frames)/wall.Seconds())
	log.Printf("Score %d, level %d, lives %d, %d enemies destroyed, game over: %v",
		session.Score(), session.Level(), session.Lives(), session.Kills(), session.GameOver())
}
