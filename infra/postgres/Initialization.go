package postgres

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

const (
	createProblemsTable = `
		CREATE TABLE IF NOT EXISTS problems (
			id VARCHAR(64) PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			content TEXT NOT NULL,
			answer TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			nickname VARCHAR(50) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createGameResultsTable = `
		CREATE TABLE IF NOT EXISTS game_results (
			id BIGSERIAL PRIMARY KEY,
			room_id BIGINT NOT NULL,
			puzzle_id VARCHAR(64) NOT NULL,
			puzzle_source VARCHAR(10) NOT NULL,
			end_reason VARCHAR(20) NOT NULL,
			winner_id BIGINT,
			question_count INT NOT NULL,
			play_time VARCHAR(10) NOT NULL,
			player_ids BIGINT[] NOT NULL,
			ended_at TIMESTAMP WITH TIME ZONE NOT NULL
		);`

	createIndexes = `
		CREATE INDEX IF NOT EXISTS idx_game_results_winner_id ON game_results(winner_id);
		CREATE INDEX IF NOT EXISTS idx_game_results_ended_at ON game_results(ended_at);`

	insertSampleProblems = `
		INSERT INTO problems (id, title, content, answer) VALUES
		('man-in-the-bar', 'The man in the bar', 'A man walks into a bar and asks for a glass of water. The bartender pulls out a gun. The man says thank you and leaves.', 'He had hiccups and the fright cured them.'),
		('albatross-soup', 'Albatross soup', 'A man orders albatross soup at a restaurant, takes one sip, and goes home and ends his life.', 'He realised the soup he had been fed when shipwrecked was not albatross.'),
		('elevator', 'The elevator', 'A woman lives on the tenth floor. Every morning she takes the elevator down. On the way back she rides to the seventh floor and walks the rest, except on rainy days.', 'She is short and can only reach the higher buttons with her umbrella.')
		ON CONFLICT (id) DO NOTHING;`
)

// initDB creates the tables the service needs and seeds the puzzle catalog.
func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"problems", createProblemsTable},
		{"users", createUsersTable},
		{"game_results", createGameResultsTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
		zap.L().Debug("Table ready", zap.String("table", table.name))
	}

	if _, err := db.Exec(insertSampleProblems); err != nil {
		return fmt.Errorf("failed to insert sample problems: %w", err)
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	zap.L().Info("Database initialized successfully")
	return nil
}
