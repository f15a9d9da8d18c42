package main

import (
	"flag"
	"log"

	"github.com/qiwen/ganzhictl/internal/config"
)

func main() {
	kind := flag.String("kind", "config", "template kind: config|anchors|shishen")
	output := flag.String("output", "", "output path for template")
	validate := flag.Bool("validate", false, "validate existing table files instead of writing templates")
	anchors := flag.String("anchors", "data/ganzhi_anchor.json", "anchor table path for validation")
	shishen := flag.String("shishen", "data/shishen_map.json", "classification map path for validation")
	force := flag.Bool("force", false, "overwrite existing file")
	flag.Parse()

	if *validate {
		tables, err := config.LoadTables(*anchors, *shishen)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated %d anchors against %s and %s", len(tables.Anchors), *anchors, *shishen)
		return
	}

	target := *output
	if target == "" {
		switch *kind {
		case "config":
			target = "cmd/ganzhictl/config.toml"
		case "anchors":
			target = "data/ganzhi_anchor.json"
		case "shishen":
			target = "data/shishen_map.json"
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s template to %s", *kind, target)
}
