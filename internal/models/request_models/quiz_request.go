package request_models

// QuizAnswersRequest maps question id to the chosen 1..5 option.
type QuizAnswersRequest struct {
	Answers map[int]int `json:"answers" binding:"required"`
}
