package services

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/planner"
	"tripplanner/internal/remote"
	"tripplanner/pkg/utils"
)

// PersonalityStore is the part of the trip API that keeps quiz results.
type PersonalityStore interface {
	CreatePersonality(ctx context.Context, p response_models.Personality) error
	GetPersonality(ctx context.Context, userID int64) (*response_models.Personality, error)
}

type PersonalityServiceInterface interface {
	Quiz() response_models.QuizResponse
	Aggregate(answers map[int]int) (response_models.PersonalityProfile, error)
	Submit(ctx context.Context, userID int64, answers map[int]int) (*response_models.PersonalityProfile, error)
	GetProfile(ctx context.Context, userID int64) (*response_models.PersonalityProfile, error)
}

type Trait string

const (
	Openness          Trait = "openness"
	Conscientiousness Trait = "conscientiousness"
	Extraversion      Trait = "extraversion"
	Agreeableness     Trait = "agreeableness"
	Neuroticism       Trait = "neuroticism"
)

type quizItem struct {
	question response_models.QuizQuestion
	trait    Trait
}

var quiz = []quizItem{
	{response_models.QuizQuestion{ID: 1, Statement: "I enjoy social gatherings."}, Extraversion},
	{response_models.QuizQuestion{ID: 2, Statement: "I plan ahead and stick to schedules."}, Conscientiousness},
	{response_models.QuizQuestion{ID: 3, Statement: "I get stressed easily."}, Neuroticism},
	{response_models.QuizQuestion{ID: 4, Statement: "I like trying new activities."}, Openness},
	{response_models.QuizQuestion{ID: 5, Statement: "I empathize with others easily."}, Agreeableness},
}

var likert = []response_models.QuizOption{
	{Label: "Strongly Disagree", Value: 1},
	{Label: "Disagree", Value: 2},
	{Label: "Neutral", Value: 3},
	{Label: "Agree", Value: 4},
	{Label: "Strongly Agree", Value: 5},
}

const (
	minAnswer     = 1
	maxAnswer     = 5
	neutralAnswer = 3
)

type PersonalityService struct {
	store PersonalityStore
	log   *zap.Logger
}

func NewPersonalityService(store PersonalityStore, log *zap.Logger) PersonalityServiceInterface {
	return &PersonalityService{store: store, log: log}
}

func (s *PersonalityService) Quiz() response_models.QuizResponse {
	questions := make([]response_models.QuizQuestion, 0, len(quiz))
	for _, q := range quiz {
		questions = append(questions, q.question)
	}
	return response_models.QuizResponse{Questions: questions, Options: slices.Clone(likert)}
}

// Aggregate averages the answers given for each trait. Traits without an
// answer score neutral.
func (s *PersonalityService) Aggregate(answers map[int]int) (response_models.PersonalityProfile, error) {
	traitOf := make(map[int]Trait, len(quiz))
	for _, q := range quiz {
		traitOf[q.question.ID] = q.trait
	}

	sums := make(map[Trait]int)
	counts := make(map[Trait]int)
	for id, v := range answers {
		trait, ok := traitOf[id]
		if !ok {
			return response_models.PersonalityProfile{}, &planner.ValidationError{
				Field:  "answers",
				Reason: fmt.Sprintf("unknown question %d", id),
			}
		}
		if v < minAnswer || v > maxAnswer {
			return response_models.PersonalityProfile{}, &planner.ValidationError{
				Field:  "answers",
				Reason: fmt.Sprintf("answer to question %d must be between %d and %d", id, minAnswer, maxAnswer),
			}
		}
		sums[trait] += v
		counts[trait]++
	}

	score := func(t Trait) float64 {
		if counts[t] == 0 {
			return neutralAnswer
		}
		return float64(sums[t]) / float64(counts[t])
	}

	scores := response_models.Personality{
		Openness:          score(Openness),
		Conscientiousness: score(Conscientiousness),
		Extraversion:      score(Extraversion),
		Agreeableness:     score(Agreeableness),
		Neuroticism:       score(Neuroticism),
	}
	return response_models.PersonalityProfile{Scores: scores, Normalized: normalize(scores)}, nil
}

func normalize(p response_models.Personality) response_models.TraitScores {
	n := func(v float64) float64 {
		v = (v - minAnswer) / (maxAnswer - minAnswer)
		return min(max(v, 0), 1)
	}
	return response_models.TraitScores{
		Openness:          n(p.Openness),
		Conscientiousness: n(p.Conscientiousness),
		Extraversion:      n(p.Extraversion),
		Agreeableness:     n(p.Agreeableness),
		Neuroticism:       n(p.Neuroticism),
	}
}

func (s *PersonalityService) Submit(ctx context.Context, userID int64, answers map[int]int) (*response_models.PersonalityProfile, error) {
	profile, err := s.Aggregate(answers)
	if err != nil {
		return nil, err
	}
	profile.Scores.UserID = userID

	if err := s.store.CreatePersonality(ctx, profile.Scores); err != nil {
		s.log.Warn("could not store personality", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrRemoteUnavailable, err)
	}
	return &profile, nil
}

func (s *PersonalityService) GetProfile(ctx context.Context, userID int64) (*response_models.PersonalityProfile, error) {
	p, err := s.store.GetPersonality(ctx, userID)
	if remote.IsNotFound(err) {
		return nil, utils.ErrPersonalityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrRemoteUnavailable, err)
	}
	return &response_models.PersonalityProfile{Scores: *p, Normalized: normalize(*p)}, nil
}
