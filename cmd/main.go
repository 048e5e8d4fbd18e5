package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"

	"daycare/backend/foundation/web"
	"daycare/backend/internal/auth"
	"daycare/backend/internal/commands"
	"daycare/backend/internal/pkg/cache"
	"daycare/backend/internal/pkg/config"
	"daycare/backend/internal/pkg/repository/postgresql"
	"daycare/backend/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("startup error:", err)
	}
}

func run() error {
	var flags struct {
		Config string `conf:"default:config.yaml"`
		Args   conf.Args
	}

	if err := conf.Parse(os.Args[1:], "DAYCARE", &flags); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, usageErr := conf.Usage("DAYCARE", &flags)
			if usageErr != nil {
				return errors.Wrap(usageErr, "generating usage")
			}
			fmt.Println(usage)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	cfg, err := config.NewConfig(flags.Config)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	postgresDB := postgresql.NewDatabase(cfg)
	defer postgresDB.Close()

	switch flags.Args.Num(0) {
	case "migrate":
		commands.Migrate(postgresDB)
		return nil
	default:
		commands.MigrateUP(postgresDB)
	}

	redisCache, err := cache.NewCache(cfg)
	if err != nil {
		return errors.Wrap(err, "connecting cache")
	}
	defer redisCache.Close()

	authenticator, err := auth.New(cfg.PrivateKeyPath)
	if err != nil {
		return errors.Wrap(err, "constructing authenticator")
	}

	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisCache, cfg.ServerPort, authenticator, cfg.PrivateKeyPath)

	return r.Init()
}
