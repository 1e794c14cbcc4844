package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/handiism/tiktok-downloader/internal/config"
	"github.com/handiism/tiktok-downloader/internal/tui"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if settings.FfmpegPath == "" {
		if path, err := exec.LookPath("ffmpeg"); err == nil {
			settings.FfmpegPath = path
		}
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
