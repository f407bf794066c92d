package dto

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Phone    string `json:"phone" validate:"max=30"`
	CityName string `json:"city_name" validate:"max=100"`
	Bio      string `json:"bio" validate:"max=2000"`
}
