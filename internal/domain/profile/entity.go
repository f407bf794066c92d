package profile

import (
	"time"

	"github.com/google/uuid"
)

type WorkerProfile struct {
	WorkerID  uuid.UUID
	FullName  string
	Email     string
	Phone     string
	CityName  string
	AvatarURL string
	Bio       string
	UpdatedAt time.Time
}

type Resume struct {
	ID        int64
	WorkerID  uuid.UUID
	Title     string
	FileURL   string
	CreatedAt time.Time
}
