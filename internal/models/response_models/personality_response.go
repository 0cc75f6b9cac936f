package response_models

// Personality carries Big-Five scores on the 1..5 quiz scale, the shape
// stored by the trip API.
type Personality struct {
	UserID            int64   `json:"user_id"`
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// TraitScores are the same traits mapped onto 0..1.
type TraitScores struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

type PersonalityProfile struct {
	Scores     Personality `json:"scores"`
	Normalized TraitScores `json:"normalized"`
}

type QuizQuestion struct {
	ID        int    `json:"id"`
	Statement string `json:"statement"`
}

type QuizOption struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
	Options   []QuizOption   `json:"options"`
}
