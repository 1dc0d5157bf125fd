package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dongseon/internal/models/db_models"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Venue, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error)
	ListByRegion(ctx context.Context, region string, page, pageSize int) ([]db_models.Venue, error)

	// SearchByKeywords ranks rows matching any keyword in name,
	// description or the keyword column, most keyword hits first.
	SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]db_models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *db_models.Venue) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return uuid.Nil, err
	}
	return venue.ID, nil
}

// Read helpers return a default value plus nil error when no rows match.

func (r *venueRepository) GetByID(ctx context.Context, id string) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("name asc").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ListByRegion(ctx context.Context, region string, page, pageSize int) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("region = ? OR region_text ILIKE ?", region, "%"+region+"%").
		Offset(offset).
		Limit(pageSize).
		Order("name asc").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]db_models.Venue, error) {
	if len(keywords) == 0 {
		return r.List(ctx, 1, limit)
	}

	query := r.db.WithContext(ctx).Model(&db_models.Venue{})

	var clauses []string
	var args []interface{}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		pattern := "%" + kw + "%"
		clauses = append(clauses, "(name ILIKE ? OR description ILIKE ? OR array_to_string(keywords, ' ') ILIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}
	if len(clauses) == 0 {
		return r.List(ctx, 1, limit)
	}

	var venues []db_models.Venue
	err := query.
		Where(strings.Join(clauses, " OR "), args...).
		Order("name asc").
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
