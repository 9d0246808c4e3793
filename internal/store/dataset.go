package store

import (
	"context"
	"errors"
	"fmt"

	"excelytics/internal/database"
	"excelytics/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// newDatasetID 產生資料集主鍵，測試可覆寫。
var newDatasetID = uuid.New

// CreateDataset 寫入一筆新資料集。重新上傳不會覆寫舊資料，永遠新增。
func CreateDataset(ctx context.Context, db database.DB, ds *model.Dataset) (*model.Dataset, error) {
	ds.ID = newDatasetID()
	row := db.QueryRow(ctx,
		`INSERT INTO datasets (id, user_id, filename, columns, data)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING uploaded_at`,
		ds.ID,
		ds.UserID,
		ds.Filename,
		ds.Columns,
		ds.Rows,
	)
	if err := row.Scan(&ds.UploadedAt); err != nil {
		return nil, fmt.Errorf("CreateDataset: %w", err)
	}
	return ds, nil
}

// ListDatasetsByOwner 回傳摘要清單 (不含欄位與資料)，最新上傳在前
func ListDatasetsByOwner(ctx context.Context, db database.DB, ownerID int) ([]model.DatasetSummary, error) {
	rows, err := db.Query(ctx,
		`SELECT id, filename, uploaded_at
		 FROM datasets WHERE user_id = $1
		 ORDER BY uploaded_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListDatasetsByOwner: %w", err)
	}
	defer rows.Close()

	var out []model.DatasetSummary
	for rows.Next() {
		var s model.DatasetSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.UploadedAt); err != nil {
			return nil, fmt.Errorf("ListDatasetsByOwner: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListDatasetsByOwner: %w", err)
	}
	return out, nil
}

// GetDatasetByIDForOwner 以擁有者為條件查詢；id 不存在與屬於他人皆回傳 ErrNotFound
func GetDatasetByIDForOwner(ctx context.Context, db database.DB, id uuid.UUID, ownerID int) (*model.Dataset, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, filename, columns, data, uploaded_at
		 FROM datasets WHERE id = $1 AND user_id = $2`,
		id,
		ownerID,
	)
	ds := &model.Dataset{}
	if err := row.Scan(
		&ds.ID,
		&ds.UserID,
		&ds.Filename,
		&ds.Columns,
		&ds.Rows,
		&ds.UploadedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetDatasetByIDForOwner: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetDatasetByIDForOwner: %w", err)
	}
	return ds, nil
}

func DeleteDatasetByIDForOwner(ctx context.Context, db database.DB, id uuid.UUID, ownerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM datasets WHERE id = $1 AND user_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteDatasetByIDForOwner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteDatasetByIDForOwner: %w", ErrNotFound)
	}
	return nil
}

// DeleteDatasetsByOwner 刪除使用者全部資料集，回傳刪除筆數。
// 與刪除使用者本身分為兩步，不在同一交易內 (接受的窄不一致窗口)。
func DeleteDatasetsByOwner(ctx context.Context, db database.DB, ownerID int) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM datasets WHERE user_id = $1`,
		ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteDatasetsByOwner: %w", err)
	}
	return tag.RowsAffected(), nil
}

func CountDatasets(ctx context.Context, db database.DB) (int, error) {
	var n int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM datasets`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountDatasets: %w", err)
	}
	return n, nil
}
