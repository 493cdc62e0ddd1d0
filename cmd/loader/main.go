package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AliJone/Gaza/internal/cache"
	"github.com/AliJone/Gaza/internal/config"
	"github.com/AliJone/Gaza/internal/database"
	"github.com/AliJone/Gaza/internal/loader"
	"github.com/AliJone/Gaza/internal/repository"
)

// main bulk-loads pre-formed catalog entries from a JSON seed file.
// This tool is administrative: it bypasses submission validation and is
// never exposed over HTTP.
func main() {
	seedPath := flag.String("file", "seed/entries.json", "path to JSON seed file")
	flag.Parse()

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// The API caches the public listing; loaded entries must push it
	// out. Redis only matters for that freshness, so an offline load
	// proceeds without it.
	var listCache loader.ListingCache
	if redisClient, err := cache.NewRedisClient(&cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, loaded entries stay hidden until the cached listing expires")
	} else {
		defer redisClient.Close()
		listCache = cache.NewCatalogCache(redisClient, cfg.Catalog.ListCacheTTL)
	}

	l := loader.New(repository.NewEntryRepository(db), listCache)
	inserted, err := l.LoadFile(context.Background(), *seedPath)
	if err != nil {
		log.Error().Err(err).Str("file", *seedPath).Msg("Bulk load failed")
		os.Exit(1)
	}

	log.Info().Int("inserted", inserted).Str("file", *seedPath).Msg("Bulk load finished")
}
