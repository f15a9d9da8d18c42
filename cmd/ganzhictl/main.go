package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/qiwen/ganzhictl/internal/calendar"
	"github.com/qiwen/ganzhictl/internal/config"
	"github.com/qiwen/ganzhictl/internal/observability"
	"github.com/qiwen/ganzhictl/internal/record"
)

func main() {
	configPath := flag.String("config", "cmd/ganzhictl/config.toml", "runtime config path")
	dateArg := flag.String("date", "", "target date (YYYY-MM-DD, default today)")
	anchorsArg := flag.String("anchors", "", "anchor table path override")
	shishenArg := flag.String("shishen", "", "classification map path override")
	flag.Parse()

	observability.InitLogger("ganzhictl")

	cfg, err := loadRuntimeConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load runtime config")
	}
	if *anchorsArg != "" {
		cfg.AnchorTable = *anchorsArg
	}
	if *shishenArg != "" {
		cfg.ShishenMap = *shishenArg
	}

	target := calendar.Today()
	if *dateArg != "" {
		target, err = calendar.Parse(*dateArg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to parse target date")
		}
	}

	tables, err := config.LoadTables(cfg.AnchorTable, cfg.ShishenMap)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load cycle tables")
	}
	log.Debug().
		Int("anchors", len(tables.Anchors)).
		Str("anchor_table", cfg.AnchorTable).
		Str("shishen_map", cfg.ShishenMap).
		Msg("tables loaded")

	d := tables.Designate(target)
	if d.Approximate {
		log.Warn().Str("date", target.String()).Msg("target precedes every anchor; result is outside verified range")
	}

	out, err := record.Build(d, cfg.DefaultStatus).JSON()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode record")
	}
	fmt.Println(string(out))
}
