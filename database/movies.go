package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"reelist/models"
)

// ErrNotFound is returned when a lookup by id or title matches no row.
// Callers treat it as a fatal precondition failure for the current request.
var ErrNotFound = errors.New("movie not found")

const movieColumns = `id, title, year, description, rating, ranking, review, img_url`

type MovieStore struct {
	db *sqlx.DB
}

func NewMovieStore(db *sqlx.DB) *MovieStore {
	return &MovieStore{db: db}
}

// withTx runs fn inside a transaction, rolling back on error or panic.
func (s *MovieStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w; rollback: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// Insert stores a new movie and assigns its id.
func (s *MovieStore) Insert(ctx context.Context, m *models.Movie) error {
	query := `
		INSERT INTO movies (title, year, description, rating, ranking, review, img_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, query,
		m.Title, m.Year, m.Description, m.Rating, m.Ranking, m.Review, m.ImgURL)
	if err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted id: %w", err)
	}
	m.ID = id

	return nil
}

func (s *MovieStore) GetByID(ctx context.Context, id int64) (models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`

	var m models.Movie
	if err := s.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, fmt.Errorf("movie %d: %w", id, ErrNotFound)
		}
		return models.Movie{}, fmt.Errorf("failed to get movie: %w", err)
	}

	return m, nil
}

// GetByTitle returns the first movie with the given title, in id order.
func (s *MovieStore) GetByTitle(ctx context.Context, title string) (models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE title = ? ORDER BY id LIMIT 1`

	var m models.Movie
	if err := s.db.GetContext(ctx, &m, query, title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, fmt.Errorf("movie %q: %w", title, ErrNotFound)
		}
		return models.Movie{}, fmt.Errorf("failed to get movie: %w", err)
	}

	return m, nil
}

// Delete removes a movie by id. Deleting an id that does not exist returns
// ErrNotFound rather than succeeding silently.
func (s *MovieStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	return nil
}

// UpdateReview overwrites the rating and review of one movie. The rating is
// stored as provided; the REAL column coerces numeric text, matching the
// form's lack of a numeric-range check.
func (s *MovieStore) UpdateReview(ctx context.Context, id int64, rating, review string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE movies SET rating = ?, review = ? WHERE id = ?`, rating, review, id)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	return nil
}

// AllByRatingDesc returns every movie ordered by rating descending. Unrated
// movies sort last; ties keep stable id order.
func (s *MovieStore) AllByRatingDesc(ctx context.Context) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY rating DESC, id ASC`

	movies := []models.Movie{}
	if err := s.db.SelectContext(ctx, &movies, query); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return movies, nil
}

// RankAll reads every movie in rating-descending order and writes ranking =
// 1-based position back to each row, unchanged or not. Runs as a single
// transaction; concurrent list views race and the last commit wins.
func (s *MovieStore) RankAll(ctx context.Context) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY rating DESC, id ASC`

	var ranked []models.Movie
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		movies := []models.Movie{}
		if err := tx.SelectContext(ctx, &movies, query); err != nil {
			return fmt.Errorf("failed to list movies: %w", err)
		}

		for i := range movies {
			pos := i + 1
			if _, err := tx.ExecContext(ctx,
				`UPDATE movies SET ranking = ? WHERE id = ?`, pos, movies[i].ID); err != nil {
				return fmt.Errorf("failed to write ranking for movie %d: %w", movies[i].ID, err)
			}
			movies[i].Ranking = &pos
		}

		ranked = movies
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ranked, nil
}
