package dto

type RatingDetailRequest struct {
	RatingCriteriaID int64 `json:"rating_criteria_id" validate:"required"`
	Score            int   `json:"score" validate:"required,min=1,max=5"`
}

type SubmitRatingRequest struct {
	JobApplicationID int64                 `json:"job_application_id" validate:"required"`
	Comment          string                `json:"comment" validate:"max=2000"`
	Details          []RatingDetailRequest `json:"details" validate:"required,min=1,dive"`
}
