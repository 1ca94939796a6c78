package gormrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"orebound/internal/adapter/repo/gorm/model"
	"orebound/internal/app/ports"
	"orebound/internal/domain/game"
	"orebound/internal/random"
)

type GameStateRepo struct {
	db *gorm.DB
	// rand seeds the scheduler of materialized states.
	rand random.Source
}

func NewGameStateRepo(db *gorm.DB, src random.Source) GameStateRepo {
	return GameStateRepo{db: db, rand: src}
}

func (r GameStateRepo) Load(ctx context.Context, gameID string) (*game.State, error) {
	var m model.GameState
	if err := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	state := game.NewState(time.Time{}, 0, 0, r.rand)
	if err := state.Restore(m.Snapshot); err != nil {
		return nil, err
	}
	state.Version = m.Version
	return state, nil
}

func (r GameStateRepo) SaveWithVersion(ctx context.Context, gameID string, state *game.State, expectedVersion int64) error {
	data, err := state.Snapshot()
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)

	if expectedVersion == 0 {
		m := model.GameState{GameID: gameID, Snapshot: data, Version: state.Version}
		return db.Create(&m).Error
	}

	res := db.Model(&model.GameState{}).
		Where("game_id = ? AND version = ?", gameID, expectedVersion).
		Updates(map[string]any{
			"snapshot": data,
			"version":  state.Version,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
