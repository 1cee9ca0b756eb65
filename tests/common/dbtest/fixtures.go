//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain text behind the fixture password hash.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, username string, roles ...string) uuid.UUID {
	t.Helper()

	if len(roles) == 0 {
		roles = []string{"USER"}
	}
	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, email, password_hash, roles) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (username) DO NOTHING",
		userID, username, username+"@example.com", testPasswordHash, roles)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name, city string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, name, headline, city, address, distance_to_center) VALUES ($1, $2, '', $3, '', 1.0)",
		hotelID, name, city)
	require.NoError(t, err)
	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, name, category, number, price, capacity) VALUES ($1, $2, $3, 'STANDARD', 101, 120, 2)",
		roomID, hotelID, name)
	require.NoError(t, err)
	return roomID
}

// BookedDates reads the room's booked days straight from the table.
func BookedDates(t *testing.T, db DBLike, roomID uuid.UUID) []time.Time {
	t.Helper()

	var dates []time.Time
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(array_agg(d ORDER BY d), '{}') FROM unnest((SELECT booked_dates FROM rooms WHERE id = $1)) AS d",
		roomID).Scan(&dates)
	require.NoError(t, err)
	return dates
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
