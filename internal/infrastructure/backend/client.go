package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"innosphere/internal/domain/application"
	"innosphere/internal/domain/profile"
	"innosphere/internal/domain/rating"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

type ApplicationAPI interface {
	ListApplications(ctx context.Context, workerID uuid.UUID) ([]application.JobApplication, error)
	GetApplication(ctx context.Context, id int64) (application.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status application.Status) error
	CancelApplication(ctx context.Context, id int64) error
}

type RatingAPI interface {
	ListRatingCriteria(ctx context.Context) ([]rating.Criteria, error)
	SubmitRating(ctx context.Context, sub rating.Submission) error
}

type ProfileAPI interface {
	GetWorkerProfile(ctx context.Context, workerID uuid.UUID) (profile.WorkerProfile, error)
	UpdateWorkerProfile(ctx context.Context, p profile.WorkerProfile) error
}

type ResumeAPI interface {
	ListResumes(ctx context.Context, workerID uuid.UUID) ([]profile.Resume, error)
	CreateResume(ctx context.Context, r profile.Resume) (profile.Resume, error)
	DeleteResume(ctx context.Context, workerID uuid.UUID, id int64) error
}

type AuthAPI interface {
	VerifyCredentials(ctx context.Context, email, password string) (uuid.UUID, error)
}

// Client is the full surface of the core InnoSphere REST API this gateway
// orchestrates. Usecases depend on the narrow slices above.
type Client interface {
	ApplicationAPI
	RatingAPI
	ProfileAPI
	ResumeAPI
	AuthAPI
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type jobPostingPayload struct {
	ID          int64     `json:"id"`
	Status      string    `json:"status"`
	EmployerID  string    `json:"employerId"`
	CompanyName string    `json:"companyName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	HourlyRate  float64   `json:"hourlyRate"`
	CityName    string    `json:"cityName"`
}

type jobApplicationPayload struct {
	ID                int64             `json:"id"`
	ApplicationStatus string            `json:"applicationStatus"`
	JobPosting        jobPostingPayload `json:"jobPosting"`
	WorkerID          string            `json:"workerId"`
	AppliedAt         time.Time         `json:"appliedAt"`
}

func (p jobApplicationPayload) toDomain() application.JobApplication {
	employerID, _ := uuid.Parse(p.JobPosting.EmployerID)
	workerID, _ := uuid.Parse(p.WorkerID)
	return application.JobApplication{
		ID:     p.ID,
		Status: application.Status(strings.ToUpper(strings.TrimSpace(p.ApplicationStatus))),
		Posting: application.PostingSnapshot{
			ID:          p.JobPosting.ID,
			Status:      application.PostingStatus(strings.ToUpper(strings.TrimSpace(p.JobPosting.Status))),
			EmployerID:  employerID,
			CompanyName: p.JobPosting.CompanyName,
			StartTime:   p.JobPosting.StartTime,
			EndTime:     p.JobPosting.EndTime,
			HourlyRate:  p.JobPosting.HourlyRate,
			CityName:    p.JobPosting.CityName,
		},
		WorkerID:  workerID,
		AppliedAt: p.AppliedAt,
	}
}

func (c *httpClient) ListApplications(ctx context.Context, workerID uuid.UUID) ([]application.JobApplication, error) {
	var payload []jobApplicationPayload
	path := fmt.Sprintf("/job-applications?workerId=%s", workerID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	out := make([]application.JobApplication, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (c *httpClient) GetApplication(ctx context.Context, id int64) (application.JobApplication, error) {
	var payload jobApplicationPayload
	path := fmt.Sprintf("/job-applications/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return application.JobApplication{}, err
	}
	return payload.toDomain(), nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (c *httpClient) UpdateApplicationStatus(ctx context.Context, id int64, status application.Status) error {
	path := fmt.Sprintf("/job-applications/%d/status", id)
	return c.doJSON(ctx, http.MethodPut, path, updateStatusRequest{Status: string(status)}, nil)
}

func (c *httpClient) CancelApplication(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/job-applications/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

type ratingCriteriaPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *httpClient) ListRatingCriteria(ctx context.Context) ([]rating.Criteria, error) {
	var payload []ratingCriteriaPayload
	if err := c.doJSON(ctx, http.MethodGet, "/rating-criteria", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]rating.Criteria, 0, len(payload))
	for _, p := range payload {
		out = append(out, rating.Criteria{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

type ratingDetailPayload struct {
	RatingCriteriaID int64 `json:"ratingCriteriaId"`
	Score            int   `json:"score"`
}

type submitRatingRequest struct {
	JobApplicationID int64                 `json:"jobApplicationId"`
	WorkerID         string                `json:"workerId"`
	EmployerID       string                `json:"employerId"`
	Comment          string                `json:"comment,omitempty"`
	Details          []ratingDetailPayload `json:"details"`
}

func (c *httpClient) SubmitRating(ctx context.Context, sub rating.Submission) error {
	details := make([]ratingDetailPayload, 0, len(sub.Details))
	for _, d := range sub.Details {
		details = append(details, ratingDetailPayload{RatingCriteriaID: d.CriteriaID, Score: d.Score})
	}

	req := submitRatingRequest{
		JobApplicationID: sub.JobApplicationID,
		WorkerID:         sub.WorkerID.String(),
		EmployerID:       sub.EmployerID.String(),
		Comment:          strings.TrimSpace(sub.Comment),
		Details:          details,
	}
	return c.doJSON(ctx, http.MethodPost, "/ratings", req, nil)
}

type workerProfilePayload struct {
	WorkerID  string    `json:"workerId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CityName  string    `json:"cityName"`
	AvatarURL string    `json:"avatarUrl"`
	Bio       string    `json:"bio"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *httpClient) GetWorkerProfile(ctx context.Context, workerID uuid.UUID) (profile.WorkerProfile, error) {
	var payload workerProfilePayload
	path := fmt.Sprintf("/workers/%s/profile", workerID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return profile.WorkerProfile{}, err
	}

	id, _ := uuid.Parse(payload.WorkerID)
	return profile.WorkerProfile{
		WorkerID:  id,
		FullName:  payload.FullName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		CityName:  payload.CityName,
		AvatarURL: payload.AvatarURL,
		Bio:       payload.Bio,
		UpdatedAt: payload.UpdatedAt,
	}, nil
}

func (c *httpClient) UpdateWorkerProfile(ctx context.Context, p profile.WorkerProfile) error {
	path := fmt.Sprintf("/workers/%s/profile", p.WorkerID)
	payload := workerProfilePayload{
		WorkerID:  p.WorkerID.String(),
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		CityName:  p.CityName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
	}
	return c.doJSON(ctx, http.MethodPut, path, payload, nil)
}

type resumePayload struct {
	ID        int64     `json:"id"`
	WorkerID  string    `json:"workerId"`
	Title     string    `json:"title"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p resumePayload) toDomain() profile.Resume {
	workerID, _ := uuid.Parse(p.WorkerID)
	return profile.Resume{ID: p.ID, WorkerID: workerID, Title: p.Title, FileURL: p.FileURL, CreatedAt: p.CreatedAt}
}

func (c *httpClient) ListResumes(ctx context.Context, workerID uuid.UUID) ([]profile.Resume, error) {
	var payload []resumePayload
	path := fmt.Sprintf("/resumes?workerId=%s", workerID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	out := make([]profile.Resume, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (c *httpClient) CreateResume(ctx context.Context, r profile.Resume) (profile.Resume, error) {
	req := resumePayload{WorkerID: r.WorkerID.String(), Title: r.Title, FileURL: r.FileURL}
	var payload resumePayload
	if err := c.doJSON(ctx, http.MethodPost, "/resumes", req, &payload); err != nil {
		return profile.Resume{}, err
	}
	return payload.toDomain(), nil
}

func (c *httpClient) DeleteResume(ctx context.Context, workerID uuid.UUID, id int64) error {
	path := fmt.Sprintf("/resumes/%d?workerId=%s", id, workerID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

type verifyCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyCredentialsResponse struct {
	WorkerID string `json:"workerId"`
}

func (c *httpClient) VerifyCredentials(ctx context.Context, email, password string) (uuid.UUID, error) {
	req := verifyCredentialsRequest{Email: strings.TrimSpace(email), Password: password}
	var out verifyCredentialsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/verify", req, &out); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(out.WorkerID))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid worker id in auth response: %w", err)
	}
	return id, nil
}

func (c *httpClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.client == nil {
		return errors.New("nil backend client")
	}
	endpoint := c.baseURL + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Backend] request failed method=%s path=%s status=%d body=%q", method, path, resp.StatusCode, bodyStr)
		}
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusConflict:
			return ErrConflict
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		default:
			return fmt.Errorf("backend request failed: status=%d body=%s", resp.StatusCode, bodyStr)
		}
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}

var _ Client = (*httpClient)(nil)
