package intake

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository persists submissions with gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type submissionModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	SessionID       string    `gorm:"column:session_id;index"`
	LoanType        string    `gorm:"column:loan_type;index"`
	TransactionType string    `gorm:"column:transaction_type"`
	Payload         string    `gorm:"column:payload"`
	Validated       bool      `gorm:"column:validated"`
	PricingErrors   string    `gorm:"column:pricing_errors"`
	RawResult       string    `gorm:"column:raw_result"`
	IPAddress       string    `gorm:"column:ip_address"`
	UserAgent       string    `gorm:"column:user_agent"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (submissionModel) TableName() string { return "loan_submissions" }

func toModel(s *Submission) submissionModel {
	return submissionModel{
		ID:              s.ID,
		SessionID:       s.SessionID,
		LoanType:        string(s.LoanType),
		TransactionType: s.TransactionType,
		Payload:         s.Payload,
		Validated:       s.Validated,
		PricingErrors:   s.PricingErrors,
		RawResult:       s.RawResult,
		IPAddress:       s.IPAddress,
		UserAgent:       s.UserAgent,
		CreatedAt:       s.CreatedAt,
	}
}

func toDomainSubmission(m submissionModel) *Submission {
	return &Submission{
		ID:              m.ID,
		SessionID:       m.SessionID,
		LoanType:        LoanType(m.LoanType),
		TransactionType: m.TransactionType,
		Payload:         m.Payload,
		Validated:       m.Validated,
		PricingErrors:   m.PricingErrors,
		RawResult:       m.RawResult,
		IPAddress:       m.IPAddress,
		UserAgent:       m.UserAgent,
		CreatedAt:       m.CreatedAt,
	}
}

// AutoMigrate creates the submissions table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&submissionModel{})
}

func (r *Repository) Create(ctx context.Context, sub *Submission) error {
	m := toModel(sub)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *Repository) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Submission, int64, error) {
	query := r.db.WithContext(ctx).Model(&submissionModel{})
	if filter.LoanType != nil {
		query = query.Where("loan_type = ?", string(*filter.LoanType))
	}
	if filter.Validated != nil {
		query = query.Where("validated = ?", *filter.Validated)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []submissionModel
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	subs := make([]*Submission, len(models))
	for i, m := range models {
		subs[i] = toDomainSubmission(m)
	}
	return subs, total, nil
}

func (r *Repository) Stats(ctx context.Context) (SubmissionStats, error) {
	stats := SubmissionStats{ByLoanType: make(map[LoanType]int64)}

	db := r.db.WithContext(ctx).Model(&submissionModel{})
	if err := db.Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := r.db.WithContext(ctx).Model(&submissionModel{}).
		Where("validated = ?", true).Count(&stats.Validated).Error; err != nil {
		return stats, err
	}

	rows, err := r.db.WithContext(ctx).Model(&submissionModel{}).
		Select("loan_type, COUNT(*) as count").Group("loan_type").Rows()
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var loanType string
		var count int64
		if err := rows.Scan(&loanType, &count); err != nil {
			return stats, err
		}
		stats.ByLoanType[LoanType(loanType)] = count
	}
	return stats, rows.Err()
}
