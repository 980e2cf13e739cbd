package catalog

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store persists the player catalog in Postgres. The engine never
// touches it; the service loads the catalog once at startup and hands
// immutable snapshots to the engine.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewStore connects to the catalog database and ensures the schema
// exists.
func NewStore(databaseURL string, isDevelopment bool, log *logrus.Logger) (*Store, error) {
	logLevel := gormlogger.Silent
	if isDevelopment {
		logLevel = gormlogger.Warn
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog database: %w", err)
	}

	if err := db.AutoMigrate(&Player{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Load returns every catalog player with derived fields recomputed.
// An empty table is seeded with the league defaults first.
func (s *Store) Load() ([]Player, error) {
	var count int64
	if err := s.db.Model(&Player{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count catalog players: %w", err)
	}

	if count == 0 {
		seed := Seed()
		if err := s.db.Create(&seed).Error; err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		s.log.WithField("players", len(seed)).Info("Seeded empty player catalog")
	}

	var players []Player
	if err := s.db.Order("id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Ratings in the table are authoritative; derived fields are not.
	for i := range players {
		players[i].Recompute()
	}

	s.log.WithField("players", len(players)).Info("Loaded player catalog")
	return players, nil
}

// UpdateRatings edits a player's ratings and recomputes the derived
// fields. Identity fields are never touched.
func (s *Store) UpdateRatings(id, batting, bowling, fielding int) (*Player, error) {
	var player Player
	if err := s.db.First(&player, id).Error; err != nil {
		return nil, fmt.Errorf("player %d not found: %w", id, err)
	}

	player.Batting = batting
	player.Bowling = bowling
	player.Fielding = fielding
	player.Recompute()

	if err := s.db.Save(&player).Error; err != nil {
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return &player, nil
}
