// Package db persists constructed layouts and the accounts that own
// them. Postgres holds the durable record; Redis sits in front of it as
// a read-through cache keyed by the same content hash, so a lookup by
// hash (GetLayoutByHash) that hits the cache never touches Postgres.
package db

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/crossplay/wordgrid/internal/models"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type Database struct {
	DB    *sql.DB
	Redis *redis.Client
}

func New(postgresURL, redisURL string) (*Database, error) {
	db, err := sql.Open("postgres", postgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Database{DB: db, Redis: rdb}, nil
}

func (d *Database) Close() error {
	if err := d.DB.Close(); err != nil {
		return err
	}
	return d.Redis.Close()
}

// InitSchema creates all database tables.
func (d *Database) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		display_name VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS layouts (
		id VARCHAR(36) PRIMARY KEY,
		hash VARCHAR(64) UNIQUE NOT NULL,
		owner_id VARCHAR(36) REFERENCES users(id) ON DELETE CASCADE,
		words JSONB NOT NULL,
		grid TEXT NOT NULL,
		entries JSONB NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_layouts_owner_id ON layouts(owner_id);
	CREATE INDEX IF NOT EXISTS idx_layouts_hash ON layouts(hash);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`

	_, err := d.DB.Exec(schema)
	return err
}

// WordListHash returns the content hash a layout is keyed by: the input
// words, lower-cased and sorted, joined and hashed, so word order in
// the request never affects the cache key.
func WordListHash(words []string) string {
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = strings.ToLower(w)
	}
	sort.Strings(normalized)

	sum := sha256.Sum256([]byte(strings.Join(normalized, "\n")))
	return hex.EncodeToString(sum[:])
}

// User operations

func (d *Database) CreateUser(user *models.User) error {
	_, err := d.DB.Exec(`
		INSERT INTO users (id, email, display_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Email, user.DisplayName, user.Password, user.CreatedAt, user.UpdatedAt)
	return err
}

func (d *Database) GetUserByID(id string) (*models.User, error) {
	user := &models.User{}
	err := d.DB.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.DisplayName, &user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func (d *Database) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := d.DB.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.DisplayName, &user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// Layout operations

func (d *Database) SaveLayout(record *models.LayoutRecord) error {
	wordsJSON, err := json.Marshal(record.Words)
	if err != nil {
		return fmt.Errorf("failed to marshal words: %w", err)
	}

	_, err = d.DB.Exec(`
		INSERT INTO layouts (id, hash, owner_id, words, grid, entries, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		ON CONFLICT (hash) DO UPDATE SET grid = EXCLUDED.grid, entries = EXCLUDED.entries
	`, record.ID, record.Hash, record.OwnerID, wordsJSON, record.Grid, record.Entries, record.CreatedAt)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err == nil {
		d.Redis.Set(context.Background(), "layout:"+record.Hash, data, time.Hour).Err()
	}
	return nil
}

// GetLayoutByHash consults the Redis cache first and only falls back to
// Postgres on a miss, refilling the cache afterward.
func (d *Database) GetLayoutByHash(ctx context.Context, hash string) (*models.LayoutRecord, error) {
	if cached, err := d.Redis.Get(ctx, "layout:"+hash).Result(); err == nil {
		var record models.LayoutRecord
		if jsonErr := json.Unmarshal([]byte(cached), &record); jsonErr == nil {
			return &record, nil
		}
	}

	record, err := d.getLayoutByHashFromPostgres(hash)
	if err != nil || record == nil {
		return record, err
	}

	if data, err := json.Marshal(record); err == nil {
		d.Redis.Set(ctx, "layout:"+hash, data, time.Hour)
	}
	return record, nil
}

func (d *Database) getLayoutByHashFromPostgres(hash string) (*models.LayoutRecord, error) {
	record := &models.LayoutRecord{}
	var wordsJSON []byte
	var ownerID sql.NullString

	err := d.DB.QueryRow(`
		SELECT id, hash, owner_id, words, grid, entries, created_at
		FROM layouts WHERE hash = $1
	`, hash).Scan(&record.ID, &record.Hash, &ownerID, &wordsJSON, &record.Grid, &record.Entries, &record.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.OwnerID = ownerID.String
	if err := json.Unmarshal(wordsJSON, &record.Words); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words: %w", err)
	}
	return record, nil
}

func (d *Database) GetLayoutByID(id string) (*models.LayoutRecord, error) {
	record := &models.LayoutRecord{}
	var wordsJSON []byte
	var ownerID sql.NullString

	err := d.DB.QueryRow(`
		SELECT id, hash, owner_id, words, grid, entries, created_at
		FROM layouts WHERE id = $1
	`, id).Scan(&record.ID, &record.Hash, &ownerID, &wordsJSON, &record.Grid, &record.Entries, &record.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.OwnerID = ownerID.String
	if err := json.Unmarshal(wordsJSON, &record.Words); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words: %w", err)
	}
	return record, nil
}

// ClaimLayout assigns ownerID to a layout that currently has none. It is
// a no-op, not an error, if the layout is already owned by ownerID, and
// fails if it is already owned by anyone else.
func (d *Database) ClaimLayout(id, ownerID string) error {
	record, err := d.GetLayoutByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return sql.ErrNoRows
	}
	if record.OwnerID == ownerID {
		return nil
	}
	if record.OwnerID != "" {
		return fmt.Errorf("layout %s is already owned", id)
	}

	if _, err := d.DB.Exec(`UPDATE layouts SET owner_id = $1 WHERE id = $2`, ownerID, id); err != nil {
		return err
	}
	return d.Redis.Del(context.Background(), "layout:"+record.Hash).Err()
}

// DeleteLayout removes a layout from Postgres and evicts its content-hash
// cache entry from Redis so a later lookup by the same hash does not
// return the deleted record.
func (d *Database) DeleteLayout(id string) error {
	record, err := d.GetLayoutByID(id)
	if err != nil || record == nil {
		return err
	}

	if _, err := d.DB.Exec(`DELETE FROM layouts WHERE id = $1`, id); err != nil {
		return err
	}
	return d.Redis.Del(context.Background(), "layout:"+record.Hash).Err()
}

func (d *Database) ListLayoutsByOwner(ownerID string, limit, offset int) ([]*models.LayoutRecord, error) {
	rows, err := d.DB.Query(`
		SELECT id, hash, owner_id, words, grid, entries, created_at
		FROM layouts WHERE owner_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.LayoutRecord
	for rows.Next() {
		record := &models.LayoutRecord{}
		var wordsJSON []byte
		var owner sql.NullString

		if err := rows.Scan(&record.ID, &record.Hash, &owner, &wordsJSON, &record.Grid, &record.Entries, &record.CreatedAt); err != nil {
			return nil, err
		}
		record.OwnerID = owner.String
		if err := json.Unmarshal(wordsJSON, &record.Words); err != nil {
			return nil, fmt.Errorf("failed to unmarshal words: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Session operations, backed by Redis alone, mirroring a short-lived bearer token.

func (d *Database) SetSession(ctx context.Context, userID, token string, expiration time.Duration) error {
	return d.Redis.Set(ctx, "session:"+token, userID, expiration).Err()
}

func (d *Database) GetSession(ctx context.Context, token string) (string, error) {
	return d.Redis.Get(ctx, "session:"+token).Result()
}

func (d *Database) DeleteSession(ctx context.Context, token string) error {
	return d.Redis.Del(ctx, "session:"+token).Err()
}
