package storage

import (
	"fmt"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
	// leaderboard queries from concurrent page loads collapse into one.
	group singleflight.Group
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) UpsertProfile(email, name string) error {
	var p game.PlayerProfile
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		p = game.PlayerProfile{Email: email}
	}
	p.PlayerName = name
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) GetProfileByEmail(email string) (*game.PlayerProfile, error) {
	var p game.PlayerProfile
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// a profile with zero stats keeps the stats endpoint total
			return &game.PlayerProfile{Email: email}, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) SaveRunRecord(rec *game.RunRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetRunHistory(email string, limit int) ([]game.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []game.RunRecord
	if err := r.db.Where("email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sqliteRepository) RecordRunEnd(email string, depth int, outcome string) error {
	var p game.PlayerProfile
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		p = game.PlayerProfile{Email: email}
	}
	p.RunsPlayed++
	if outcome == game.RunOutcomeVictory {
		p.Victories++
	}
	if depth > p.DeepestDepth {
		p.DeepestDepth = depth
	}
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) GetLeaderboard(limit int) ([]game.PlayerProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	v, err, _ := r.group.Do(fmt.Sprintf("leaderboard:%d", limit), func() (interface{}, error) {
		var profiles []game.PlayerProfile
		if err := r.db.Model(&game.PlayerProfile{}).
			Order("deepest_depth DESC").
			Order("victories DESC").
			Limit(limit).
			Find(&profiles).Error; err != nil {
			return nil, err
		}
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.PlayerProfile), nil
}
