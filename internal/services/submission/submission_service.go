package services

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"game-tradein/internal/models"
)

var ErrInvalidArgument = errors.New("invalid argument")

type SubmissionService struct {
	db *gorm.DB
}

// CreateInput carries the raw sell-form fields. Price arrives as the
// posted text and is parsed during Create.
type CreateInput struct {
	Name      string
	Email     string
	GameTitle string
	Platform  string
	Condition string
	Price     string
	Notes     string
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{
		db: db,
	}
}

// Create validates the input and stores a new submission. The insert
// is a single row, so sqlite's transactional semantics make it atomic
// and assign a fresh monotonic id even under concurrent posts.
func (s *SubmissionService) Create(in CreateInput) (*models.Submission, error) {
	required := map[string]string{
		"name":       in.Name,
		"email":      in.Email,
		"game_title": in.GameTitle,
		"platform":   in.Platform,
		"condition":  in.Condition,
	}
	for field, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidArgument, field)
		}
	}

	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a number", ErrInvalidArgument)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
	}

	submission := &models.Submission{
		Name:      in.Name,
		Email:     in.Email,
		GameTitle: in.GameTitle,
		Platform:  in.Platform,
		Condition: in.Condition,
		Price:     price,
		Notes:     in.Notes,
	}

	if err := s.db.Create(submission).Error; err != nil {
		return nil, err
	}

	return submission, nil
}

// List returns all stored submissions, newest first. Backs the
// read-only admin view of the record table.
func (s *SubmissionService) List() ([]models.Submission, error) {
	var submissions []models.Submission

	err := s.db.Order("id DESC").Find(&submissions).Error
	return submissions, err
}
