package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kounhany-ai-go/internal/model"
)

// LearnedQARepository stores reinforced question/answer pairs. Each
// reinforcement either inserts a new pattern or folds the rating into the
// stored running average.
type LearnedQARepository interface {
	Reinforce(qa *model.LearnedQA, rating float64) error
	FindSimilar(tokens []string) (*model.LearnedQA, error)
	SeedDefaults(pairs []model.LearnedQA) error
	Count() (int64, error)
}

type learnedQARepository struct {
	db *gorm.DB
}

// NewLearnedQARepository creates a new LearnedQARepository instance.
func NewLearnedQARepository(db *gorm.DB) LearnedQARepository {
	return &learnedQARepository{db: db}
}

// Reinforce upserts a learned pair. On conflict the assignments run in
// order: the stored answer is replaced only when the new rating beats the
// current average, the average absorbs the new rating using the current
// usage count, and only then does the count advance.
func (r *learnedQARepository) Reinforce(qa *model.LearnedQA, rating float64) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_pattern"}},
		DoUpdates: clause.Set{
			{
				Column: clause.Column{Name: "best_answer"},
				Value:  gorm.Expr("IF(? > avg_rating, VALUES(best_answer), best_answer)", rating),
			},
			{
				Column: clause.Column{Name: "avg_rating"},
				Value:  gorm.Expr("(avg_rating * times_used + ?) / (times_used + 1)", rating),
			},
			{
				Column: clause.Column{Name: "times_used"},
				Value:  gorm.Expr("times_used + 1"),
			},
			{
				Column: clause.Column{Name: "updated_at"},
				Value:  gorm.Expr("NOW()"),
			},
		},
	}).Create(qa).Error
}

// FindSimilar returns the most-used, best-rated pattern containing any of
// the question's tokens, or nil when nothing matches.
func (r *learnedQARepository) FindSimilar(tokens []string) (*model.LearnedQA, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	conds := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens))
	for _, tok := range tokens {
		conds = append(conds, "question_pattern LIKE ?")
		args = append(args, "%"+tok+"%")
	}

	var qa model.LearnedQA
	err := r.db.Where(strings.Join(conds, " OR "), args...).
		Order("times_used DESC, avg_rating DESC").
		First(&qa).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &qa, nil
}

func (r *learnedQARepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.LearnedQA{}).Count(&total).Error
	return total, err
}

// SeedDefaults inserts the starter pairs, skipping any pattern already
// present so restarts do not reset learned ratings.
func (r *learnedQARepository) SeedDefaults(pairs []model.LearnedQA) error {
	if len(pairs) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_pattern"}},
		DoNothing: true,
	}).Create(&pairs).Error
}
