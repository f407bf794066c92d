package dto

type WorkerProfileResponse struct {
	WorkerID  string `json:"worker_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	CityName  string `json:"city_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type ResumeResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	FileURL   string `json:"file_url"`
	CreatedAt string `json:"created_at,omitempty"`
}
