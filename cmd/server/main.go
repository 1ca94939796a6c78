package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"

	staticcatalog "orebound/internal/adapter/catalog/static"
	httpadapter "orebound/internal/adapter/http"
	metricsinmem "orebound/internal/adapter/metrics/inmemory"
	gormrepo "orebound/internal/adapter/repo/gorm"
	memrepo "orebound/internal/adapter/repo/memory"
	"orebound/internal/app/launch"
	"orebound/internal/app/observe"
	"orebound/internal/app/ports"
	"orebound/internal/app/snapshot"
	"orebound/internal/app/tick"
	"orebound/internal/domain/game"
	"orebound/internal/random"
)

func main() {
	_ = godotenv.Load()

	seed := int64Env("OREBOUND_SEED", time.Now().UnixNano())
	src := random.NewSeeded(seed)

	catalog, err := staticcatalog.Load(strings.TrimSpace(os.Getenv("OREBOUND_CATALOG")))
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	states, newsLog, txManager := buildRepos(src)
	seedDefaultGame(states, src)
	kpi := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		ObserveUC: observe.UseCase{States: states, Catalog: catalog},
		LaunchUC:  launch.UseCase{States: states, Catalog: catalog, Metrics: kpi, Rand: src},
		TickUC: tick.UseCase{
			TxManager: txManager,
			States:    states,
			NewsLog:   newsLog,
			Catalog:   catalog,
			Metrics:   kpi,
			Rand:      src,
		},
		SnapshotUC: snapshot.UseCase{States: states},
		NewsLog:    newsLog,
		KPI:        kpi,
	}

	addr := strings.TrimSpace(os.Getenv("OREBOUND_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("orebound server listening on %s (seed %d)", addr, seed)
	s.Spin()
}

func buildRepos(src random.Source) (ports.GameStateRepository, ports.NewsLogRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("OREBOUND_DB_DSN"))
	if dsn == "" {
		log.Println("OREBOUND_DB_DSN not set, using in-memory storage")
		store := memrepo.NewStore(src)
		return store, store, nil
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	return gormrepo.NewGameStateRepo(db, src), gormrepo.NewNewsLogRepo(db), gormrepo.NewTxManager(db)
}

func seedDefaultGame(states ports.GameStateRepository, src random.Source) {
	ctx := context.Background()
	_, err := states.Load(ctx, httpadapter.DefaultGameID)
	if err == nil {
		return
	}
	if !errors.Is(err, ports.ErrNotFound) {
		log.Fatalf("load default game: %v", err)
	}

	epoch := time.Date(intEnv("OREBOUND_EPOCH_YEAR", 2049), time.January, 1, 0, 0, 0, 0, time.UTC)
	balance := floatEnv("OREBOUND_START_BALANCE", 500000)
	level := intEnv("OREBOUND_PLAYER_LEVEL", 1)

	state := game.NewState(epoch, balance, level, src)
	if err := states.SaveWithVersion(ctx, httpadapter.DefaultGameID, state, 0); err != nil {
		log.Fatalf("seed default game: %v", err)
	}
}

func int64Env(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func intEnv(key string, fallback int) int {
	return int(int64Env(key, int64(fallback)))
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
