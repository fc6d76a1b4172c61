package checklist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// Repository persists checklist unlocks with gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type unlockModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	VisitorID string    `gorm:"column:visitor_id;uniqueIndex"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	SourceURL string    `gorm:"column:source_url"`
	UserAgent string    `gorm:"column:user_agent"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (unlockModel) TableName() string { return "checklist_unlocks" }

// AutoMigrate creates the unlocks table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&unlockModel{})
}

// Save inserts an unlock, updating the contact block in place when the
// visitor already unlocked once (re-submitting the modal must not
// fail).
func (r *Repository) Save(ctx context.Context, u *Unlock) error {
	m := unlockModel{
		VisitorID: u.VisitorID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		SourceURL: u.SourceURL,
		UserAgent: u.UserAgent,
		CreatedAt: u.CreatedAt,
	}

	err := r.db.WithContext(ctx).Create(&m).Error
	if err == nil {
		u.ID = m.ID
		return nil
	}
	if !isDuplicate(err) {
		return err
	}

	return r.db.WithContext(ctx).Model(&unlockModel{}).
		Where("visitor_id = ?", u.VisitorID).
		Updates(map[string]any{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"email":      u.Email,
			"phone":      u.Phone,
			"source_url": u.SourceURL,
			"user_agent": u.UserAgent,
		}).Error
}

// GetByVisitor returns the unlock for a visitor, or nil when the
// visitor never provided contact details.
func (r *Repository) GetByVisitor(ctx context.Context, visitorID string) (*Unlock, error) {
	var m unlockModel
	err := r.db.WithContext(ctx).Where("visitor_id = ?", visitorID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Unlock{
		ID:        m.ID,
		VisitorID: m.VisitorID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		SourceURL: m.SourceURL,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
	}, nil
}

// Count returns the number of unlocked visitors.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&unlockModel{}).Count(&total).Error
	return total, err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// modernc sqlite reports constraint violations as plain errors.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
