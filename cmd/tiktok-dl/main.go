package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/handiism/tiktok-downloader/internal/config"
	"github.com/handiism/tiktok-downloader/internal/download"
	ioutils "github.com/handiism/tiktok-downloader/internal/io"
	"github.com/handiism/tiktok-downloader/internal/model"
	"github.com/handiism/tiktok-downloader/internal/tiktok"
	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	// A .env next to the binary can hold defaults for the env-backed
	// flags below; absence is fine.
	_ = godotenv.Load()

	// Command line flags
	var (
		listFileFlag    = flag.String("list-file", "", "Path to a text file with one TikTok URL per line")
		outputNameFlag  = flag.String("output-name", envOr("TIKTOK_DL_OUTPUT_NAME", ""), "Output file name template, e.g. \"%author_name% - %media_id%\"")
		outputDirFlag   = flag.String("output-dir", envOr("TIKTOK_DL_OUTPUT_DIR", ""), "Download directory (overrides config)")
		archiveFlag     = flag.String("archive-file", envOr("TIKTOK_DL_ARCHIVE", ""), "Archive file recording downloaded ids; recorded ids are skipped")
		ffmpegFlag      = flag.String("ffmpeg-path", envOr("TIKTOK_DL_FFMPEG", ""), "Path to the ffmpeg binary used for tagging (default: found on PATH)")
		concurrencyFlag = flag.Int("concurrency", 0, "Number of URLs to process in parallel (overrides config)")
		configFlag      = flag.String("config", "", "Path to config file")
		verboseFlag     = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag      = flag.Bool("dry-run", false, "Parse URLs without downloading")
	)
	var versionFlag bool
	flag.BoolVar(&versionFlag, "version", false, "Print the version and exit")
	flag.BoolVar(&versionFlag, "v", false, "Print the version and exit (shorthand)")

	flag.Parse()

	if versionFlag {
		fmt.Println("tiktok-dl " + version)
		return
	}

	urls := flag.Args()
	if *listFileFlag != "" {
		fromFile, err := ioutils.ReadURLList(*listFileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading list file: %v\n", err)
			os.Exit(1)
		}
		urls = append(urls, fromFile...)
	}

	if len(urls) == 0 {
		fmt.Println("TikTok Downloader - Download videos and photo galleries from TikTok")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tiktok-dl [options] <URL> [<URL> ...]")
		fmt.Println("  tiktok-dl [options] -list-file urls.txt")
		fmt.Println()
		fmt.Println("For interactive mode, use: tiktok-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputNameFlag != "" {
		settings.OutputTemplate = *outputNameFlag
	}
	if *outputDirFlag != "" {
		settings.DownloadDir = *outputDirFlag
	}
	if *archiveFlag != "" {
		settings.ArchivePath = *archiveFlag
	}
	if *concurrencyFlag > 0 {
		settings.MaxConcurrentDownloads = *concurrencyFlag
	}
	switch {
	case *ffmpegFlag != "":
		settings.FfmpegPath = *ffmpegFlag
	case settings.FfmpegPath == "":
		if path, err := exec.LookPath("ffmpeg"); err == nil {
			settings.FfmpegPath = path
		} else {
			fmt.Println("ffmpeg not found, downloads will not be tagged")
		}
	}

	if *dryRunFlag {
		for _, url := range urls {
			if ref, ok := tiktok.ParseMediaURL(url); ok {
				fmt.Printf("%s: %s %s\n", url, ref.Kind, ref.ID)
			} else {
				fmt.Printf("%s: unsupported\n", url)
			}
		}
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("⬇ TikTok Downloader")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	outcomes, err := manager.Run(ctx, urls)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during download: %v\n", err)
		os.Exit(1)
	}

	var succeeded, skipped, failed int
	for _, outcome := range outcomes {
		switch outcome.Kind {
		case model.OutcomeSuccess:
			succeeded++
		case model.OutcomeAlreadyDownloaded:
			skipped++
		case model.OutcomeFailed:
			failed++
		}
	}

	_, _, receivedBytes := manager.GetProgress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ All done! Downloaded %d, skipped %d, failed %d (%.2f MB)\n",
		succeeded, skipped, failed, float64(receivedBytes)/1024/1024)

	if failed > 0 {
		for _, outcome := range outcomes {
			if outcome.Kind == model.OutcomeFailed {
				fmt.Fprintf(os.Stderr, "   failed: %s (%v)\n", outcome.URL, outcome.Err)
			}
		}
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
