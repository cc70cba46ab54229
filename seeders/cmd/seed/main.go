package main

import (
	"flag"
	"log"

	"refill-system/pkg/config"
	"refill-system/pkg/database/postgresql"
	"refill-system/seeders"
)

func main() {
	runCore := flag.Bool("core", false, "seed permissions, roles and role grants")
	runAdmin := flag.Bool("admin", false, "seed the superadmin account")
	runDepots := flag.Bool("depots", false, "seed the initial depot list")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runCore && !*runAdmin && !*runDepots && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runCore {
		seeders.SeedCore(dbPool)
	}
	if *runAll || *runDepots {
		seeders.SeedDepots(dbPool)
	}
	if *runAll || *runAdmin {
		// Admin depends on roles from the core seed.
		seeders.SeedAdmin(dbPool)
	}
}
