package dto

type RatingCriteriaResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
