package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const galleryColumns = `id, title, description, url, alt_text, category, tags, event_id,
	uploaded_by, is_active, views, likes, featured, created_at, updated_at`

type GalleryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGalleryRepo(db *dbpg.DB) *GalleryRepository {
	return &GalleryRepository{db: db, strategy: defaultStrategy()}
}

func (r *GalleryRepository) Create(ctx context.Context, img *domain.GalleryImage) error {
	query := `INSERT INTO gallery_images (` + galleryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		img.ID, img.Title, img.Description, img.URL, img.AltText, img.Category,
		pq.Array(img.Tags), img.EventID, img.UploadedBy, img.IsActive,
		img.Views, img.Likes, img.Featured, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gallery image: %w", err)
	}

	return nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_images WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get gallery image: %w", err)
	}

	img, err := scanGalleryImage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("scan gallery image: %w", err)
	}

	return img, nil
}

func (r *GalleryRepository) List(ctx context.Context, f domain.GalleryFilter) ([]*domain.GalleryImage, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if f.Category != nil {
		conds = append(conds, "category = "+arg(*f.Category))
	}
	if f.EventID != "" {
		conds = append(conds, "event_id = "+arg(f.EventID))
	}
	if f.Featured != nil {
		conds = append(conds, "featured = "+arg(*f.Featured))
	}

	query := `SELECT ` + galleryColumns + ` FROM gallery_images`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	defer rows.Close()

	var res []*domain.GalleryImage
	for rows.Next() {
		img, err := scanGalleryImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		res = append(res, img)
	}

	return res, rows.Err()
}

func (r *GalleryRepository) Update(ctx context.Context, img *domain.GalleryImage) error {
	query := `UPDATE gallery_images
			  SET title = $2, description = $3, alt_text = $4, category = $5,
			      tags = $6, featured = $7, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		img.ID, img.Title, img.Description, img.AltText, img.Category,
		pq.Array(img.Tags), img.Featured,
	)
	if err != nil {
		return fmt.Errorf("update gallery image: %w", err)
	}

	return requireRow(res, domain.ErrImageNotFound)
}

// Deactivate is the soft delete: rows stay for history, listings hide them.
func (r *GalleryRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE gallery_images SET is_active = FALSE, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("deactivate gallery image: %w", err)
	}

	return requireRow(res, domain.ErrImageNotFound)
}

func (r *GalleryRepository) IncrementViews(ctx context.Context, id string) error {
	query := `UPDATE gallery_images SET views = views + 1 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}

	return requireRow(res, domain.ErrImageNotFound)
}

func (r *GalleryRepository) IncrementLikes(ctx context.Context, id string) error {
	query := `UPDATE gallery_images SET likes = likes + 1 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("increment likes: %w", err)
	}

	return requireRow(res, domain.ErrImageNotFound)
}

func scanGalleryImage(row rowScanner) (*domain.GalleryImage, error) {
	var img domain.GalleryImage
	err := row.Scan(
		&img.ID, &img.Title, &img.Description, &img.URL, &img.AltText, &img.Category,
		pq.Array(&img.Tags), &img.EventID, &img.UploadedBy, &img.IsActive,
		&img.Views, &img.Likes, &img.Featured, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &img, nil
}
