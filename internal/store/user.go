package store

import (
	"context"
	"errors"
	"fmt"

	"excelytics/internal/database"
	"excelytics/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, role, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, role, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, username, email, password_hash, role, created_at
		 FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	return nil
}

// CountUsersByRoleNot 統計角色不等於 role 的使用者數量
func CountUsersByRoleNot(ctx context.Context, db database.DB, role model.Role) (int, error) {
	var n int
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role <> $1`,
		role,
	)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsersByRoleNot: %w", err)
	}
	return n, nil
}

// ListUserStats 回傳每位使用者的資料集數量，依建立時間新到舊排序
func ListUserStats(ctx context.Context, db database.DB) ([]model.UserStats, error) {
	rows, err := db.Query(ctx,
		`SELECT u.id, u.username, u.email, u.role, u.created_at, COUNT(d.id) AS file_count
		 FROM users u
		 LEFT JOIN datasets d ON d.user_id = u.id
		 GROUP BY u.id, u.username, u.email, u.role, u.created_at
		 ORDER BY u.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUserStats: %w", err)
	}
	defer rows.Close()

	var stats []model.UserStats
	for rows.Next() {
		var s model.UserStats
		if err := rows.Scan(
			&s.ID,
			&s.Username,
			&s.Email,
			&s.Role,
			&s.CreatedAt,
			&s.FileCount,
		); err != nil {
			return nil, fmt.Errorf("ListUserStats: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUserStats: %w", err)
	}
	return stats, nil
}
