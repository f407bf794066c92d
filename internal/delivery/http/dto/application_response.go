package dto

type DisplayStatusResponse struct {
	Text       string `json:"text"`
	StyleClass string `json:"style_class"`
	ColorToken string `json:"color_token"`
	Action     string `json:"action"`
}

type ApplicationRowResponse struct {
	ApplicationID int64                 `json:"application_id"`
	CompanyName   string                `json:"company_name"`
	CityName      string                `json:"city_name"`
	HourlyRate    float64               `json:"hourly_rate"`
	StartTime     string                `json:"start_time,omitempty"`
	EndTime       string                `json:"end_time,omitempty"`
	AppliedAt     string                `json:"applied_at,omitempty"`
	Status        DisplayStatusResponse `json:"status"`
	RatingEnabled bool                  `json:"rating_enabled"`
	RatingLabel   string                `json:"rating_label,omitempty"`
	Seed          bool                  `json:"seed,omitempty"`
}
