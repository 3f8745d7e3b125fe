package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/therealutkarshpriyadarshi/subfix/pkg/models"
)

// Repository provides database operations for analysis reports
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// CreateReport stores a new analysis report
func (r *Repository) CreateReport(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	query := `
		INSERT INTO reports (id, operation, filename, size_bytes, total_subtitles,
		                     issue_count, skipped_blocks, issues, statistics, fix_kinds, object_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		report.ID, report.Operation, report.Filename, report.SizeBytes,
		report.TotalSubtitles, report.IssueCount, report.SkippedBlocks,
		report.Issues, report.Statistics, report.FixKinds, report.ObjectKey,
	).Scan(&report.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	return nil
}

// GetReport retrieves a report by ID
func (r *Repository) GetReport(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report

	query := `
		SELECT id, operation, filename, size_bytes, total_subtitles, issue_count,
		       skipped_blocks, issues, statistics, fix_kinds, object_key, created_at
		FROM reports
		WHERE id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&report.ID, &report.Operation, &report.Filename, &report.SizeBytes,
		&report.TotalSubtitles, &report.IssueCount, &report.SkippedBlocks,
		&report.Issues, &report.Statistics, &report.FixKinds, &report.ObjectKey,
		&report.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("report not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &report, nil
}

// ListReports retrieves reports with pagination, newest first
func (r *Repository) ListReports(ctx context.Context, limit, offset int) ([]*models.Report, error) {
	query := `
		SELECT id, operation, filename, size_bytes, total_subtitles, issue_count,
		       skipped_blocks, issues, statistics, fix_kinds, object_key, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		var report models.Report
		err := rows.Scan(
			&report.ID, &report.Operation, &report.Filename, &report.SizeBytes,
			&report.TotalSubtitles, &report.IssueCount, &report.SkippedBlocks,
			&report.Issues, &report.Statistics, &report.FixKinds, &report.ObjectKey,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// DeleteReport removes a report by ID
func (r *Repository) DeleteReport(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("report not found")
	}
	return nil
}

// Health checks if the database is healthy
func (r *Repository) Health(ctx context.Context) error {
	return r.db.Health(ctx)
}
