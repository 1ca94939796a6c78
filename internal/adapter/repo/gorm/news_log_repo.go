package gormrepo

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"orebound/internal/adapter/repo/gorm/model"
	"orebound/internal/domain/news"
)

type NewsLogRepo struct {
	db *gorm.DB
}

func NewNewsLogRepo(db *gorm.DB) NewsLogRepo {
	return NewsLogRepo{db: db}
}

func (r NewsLogRepo) Append(ctx context.Context, gameID string, items []news.NewsItem) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]model.NewsEvent, 0, len(items))
	for _, item := range items {
		var action []byte
		if item.Action != nil {
			action, _ = json.Marshal(item.Action)
		}
		rows = append(rows, model.NewsEvent{
			GameID:   gameID,
			ItemID:   item.ID,
			Category: string(item.Category),
			Priority: item.Priority,
			Day:      item.Day,
			Text:     item.Text,
			Action:   action,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r NewsLogRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]news.NewsItem, error) {
	rows := []model.NewsEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.NewsEvent{GameID: gameID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]news.NewsItem, 0, len(rows))
	for _, row := range rows {
		item := news.NewsItem{
			ID:       row.ItemID,
			Text:     row.Text,
			Category: news.Category(row.Category),
			Priority: row.Priority,
			Day:      row.Day,
		}
		if len(row.Action) > 0 {
			var action news.Action
			if err := json.Unmarshal(row.Action, &action); err == nil {
				item.Action = &action
			}
		}
		out = append(out, item)
	}
	return out, nil
}
