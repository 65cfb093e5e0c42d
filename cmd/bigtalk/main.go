package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/thebigtalk/bigtalk/internal/config"
	"github.com/thebigtalk/bigtalk/internal/search"
	"github.com/thebigtalk/bigtalk/internal/seed"
	"github.com/thebigtalk/bigtalk/internal/storage"
	"github.com/thebigtalk/bigtalk/internal/strapi"
	syncer "github.com/thebigtalk/bigtalk/internal/sync"
	"github.com/thebigtalk/bigtalk/internal/web"
)

var (
	dataDir   string
	dbPath    string
	indexPath string
)

func main() {
	globalFlags := flag.NewFlagSet("global", flag.ExitOnError)
	dataDirFlag := globalFlags.String("data-dir", "./data", "Directory for the content mirror and search index")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Find where the command starts (skip global flags)
	commandIdx := 1
	for i := 1; i < len(os.Args); i++ {
		if !strings.HasPrefix(os.Args[i], "-") {
			commandIdx = i
			break
		}
	}

	if commandIdx > 1 {
		globalFlags.Parse(os.Args[1:commandIdx])
	}

	dataDir = *dataDirFlag
	dbPath = dataDir + "/content.db"
	indexPath = dataDir + "/bleve"

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	command := os.Args[commandIdx]

	switch command {
	case "serve":
		serveFlags := flag.NewFlagSet("serve", flag.ExitOnError)
		addr := serveFlags.String("addr", cfg.Addr, "Address to listen on")
		serveFlags.Parse(os.Args[commandIdx+1:])

		runServe(cfg, *addr)
	case "seed":
		runSeed(cfg)
	case "sync":
		runSync(cfg)
	case "search":
		searchFlags := flag.NewFlagSet("search", flag.ExitOnError)
		limit := searchFlags.Int("limit", 10, "Maximum number of results")
		searchFlags.Parse(os.Args[commandIdx+1:])

		if searchFlags.NArg() < 1 {
			fmt.Println("Error: search query required")
			fmt.Println("Usage: bigtalk [--data-dir=<dir>] search [flags] <query>")
			os.Exit(1)
		}

		runSearch(strings.Join(searchFlags.Args(), " "), *limit)
	case "reindex":
		runReindex()
	case "stats":
		runStats()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("The Big Talk - civic education site")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bigtalk [global-flags] <command> [flags]")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --data-dir=<dir>  Directory for the content mirror and search index (default: ./data)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve [flags]            Start the web server")
	fmt.Println("  seed                     Populate the CMS with initial content (requires STRAPI_API_TOKEN)")
	fmt.Println("  sync                     Mirror published articles and videos for site search")
	fmt.Println("  search [flags] <query>   Search mirrored content from the command line")
	fmt.Println("  reindex                  Rebuild the search index from the mirror")
	fmt.Println("  stats                    Show mirror statistics")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  STRAPI_URL        CMS base URL (default: http://localhost:1337)")
	fmt.Println("  STRAPI_API_TOKEN  Bearer token for authenticated/write access")
	fmt.Println("  SITE_URL          Public URL of this site, for absolute links")
	fmt.Println("  ADDR              Listen address for serve (default: localhost:8080)")
}

func runServe(cfg config.Config, addr string) {
	cms := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken)

	// The mirror is optional for serving: without it only /search is disabled.
	var db *storage.DB
	var idx *search.Index

	d, err := storage.Open(dbPath)
	if err != nil {
		log.Printf("Warning: content mirror unavailable (%v), search disabled", err)
	} else {
		defer d.Close()
		i, err := search.Open(indexPath)
		if err != nil {
			log.Printf("Warning: search index unavailable (%v), search disabled", err)
		} else {
			defer i.Close()
			db, idx = d, i
		}
	}

	server, err := web.NewServer(cfg, cms, db, idx)
	if err != nil {
		log.Fatalf("Error creating server: %v", err)
	}

	log.Printf("Serving on http://%s (CMS: %s)", addr, cfg.StrapiURL)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

func runSeed(cfg config.Config) {
	if cfg.StrapiToken == "" {
		log.Fatal("Error: STRAPI_API_TOKEN environment variable required (create one in Strapi Admin > Settings > API Tokens)")
	}

	fmt.Println("=== The Big Talk - CMS Content Seed ===")
	fmt.Printf("Strapi URL: %s\n\n", cfg.StrapiURL)

	cms := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken)
	seeder := seed.NewSeeder(cms)

	stats, err := seeder.Run(context.Background())
	if err != nil {
		log.Fatalf("Error seeding: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Seed Complete ===")
	fmt.Printf("Created:  %d\n", stats.Created)
	fmt.Printf("Existing: %d\n", stats.Existing)
	fmt.Printf("Failed:   %d\n", stats.Failed)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Upload team member images via the CMS media library")
	fmt.Println("2. Replace sample explainer video URLs with real links")
	fmt.Println("3. Publish all draft entries")

	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func runSync(cfg config.Config) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Error creating data directory: %v", err)
	}

	cms := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken)

	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	idx, err := search.Open(indexPath)
	if err != nil {
		log.Fatalf("Error opening search index: %v", err)
	}
	defer idx.Close()

	worker := syncer.NewWorker(cms, db, idx)

	stats, err := worker.Sync(context.Background())
	if err != nil {
		log.Fatalf("Error syncing: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Sync Complete ===")
	fmt.Printf("Total entries: %d\n", stats.TotalEntries)
	fmt.Printf("New:           %d\n", stats.NewEntries)
	fmt.Printf("Updated:       %d\n", stats.UpdatedEntries)
	fmt.Printf("Skipped:       %d\n", stats.SkippedEntries)
	fmt.Printf("Removed:       %d\n", stats.RemovedEntries)
	fmt.Printf("Errors:        %d\n", stats.Errors)
	fmt.Printf("Duration:      %v\n", stats.Duration)
}

func runSearch(query string, limit int) {
	idx, err := search.Open(indexPath)
	if err != nil {
		log.Fatalf("Error opening search index: %v", err)
	}
	defer idx.Close()

	results, err := idx.Search(query, limit)
	if err != nil {
		log.Fatalf("Error searching: %v", err)
	}

	if len(results) == 0 {
		fmt.Println("No results found")
		return
	}

	fmt.Printf("Found %d results:\n\n", len(results))
	for i, result := range results {
		fmt.Printf("%d. [%s] %s\n", i+1, result.Kind, result.Title)
		if result.Category != "" {
			fmt.Printf("   Category: %s\n", result.Category)
		}
		fmt.Printf("   Path: %s\n", result.Path)
		fmt.Printf("   Score: %.3f\n", result.Score)
		if snippets, ok := result.Fragments["Body"]; ok && len(snippets) > 0 {
			fmt.Printf("   Preview: %s\n", snippets[0])
		}
		fmt.Println()
	}
}

func runReindex() {
	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	idx, err := search.Open(indexPath)
	if err != nil {
		log.Fatalf("Error opening search index: %v", err)
	}
	defer idx.Close()

	fmt.Println("Rebuilding search index from mirror...")
	if err := idx.Rebuild(db); err != nil {
		log.Fatalf("Error rebuilding index: %v", err)
	}

	count, err := idx.Count()
	if err != nil {
		log.Fatalf("Error getting index count: %v", err)
	}
	fmt.Printf("Entries indexed: %d\n", count)
}

func runStats() {
	db, err := storage.Open(dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	idx, err := search.Open(indexPath)
	if err != nil {
		log.Fatalf("Error opening search index: %v", err)
	}
	defer idx.Close()

	dbCount, err := db.Count()
	if err != nil {
		log.Fatalf("Error getting mirror count: %v", err)
	}

	indexCount, err := idx.Count()
	if err != nil {
		log.Fatalf("Error getting index count: %v", err)
	}

	fmt.Println("=== Mirror Statistics ===")
	fmt.Printf("Entries in mirror: %d\n", dbCount)
	fmt.Printf("Entries in index:  %d\n", indexCount)
}
