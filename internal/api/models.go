package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/periodspal/periodspal-api/internal/domain"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = time.DateOnly

// Common request/response structures

// RegisterRequest defines the payload for the account registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"  validate:"required,max=64"`
	Password string `json:"password"  validate:"required,max=72"`
	Name     string `json:"name"      validate:"max=128"`
	Age      int    `json:"age"       validate:"min=0,max=120"`
	HeightCm int    `json:"height_cm" validate:"min=0,max=280"`
	WeightKg int    `json:"weight_kg" validate:"min=0,max=500"`
}

// LoginRequest defines the payload for the account login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// AccountID is the unique identifier for the authenticated account
	AccountID uuid.UUID `json:"account_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`
}

// ProfileResponse defines the account profile as returned to its owner.
// Credentials are never part of it.
type ProfileResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	HeightCm  int       `json:"height_cm"`
	WeightKg  int       `json:"weight_kg"`
	CreatedAt string    `json:"created_at"`
}

// UpdateProfileRequest defines the payload for the profile update endpoint.
// Username and credentials are immutable through this endpoint.
type UpdateProfileRequest struct {
	Name     string `json:"name"      validate:"max=128"`
	Age      int    `json:"age"       validate:"min=0,max=120"`
	HeightCm int    `json:"height_cm" validate:"min=0,max=280"`
	WeightKg int    `json:"weight_kg" validate:"min=0,max=500"`
}

// CycleRequest defines the payload for recording a cycle.
// The cycle length bound matches the range the tracking form offers.
type CycleRequest struct {
	LastStart string `json:"last_start" validate:"required"`
	CycleLen  int    `json:"cycle_len"  validate:"required,min=20,max=45"`
}

// CycleResponse defines one persisted cycle record.
type CycleResponse struct {
	ID           uuid.UUID `json:"id"`
	LastStart    string    `json:"last_start"`
	CycleLen     int       `json:"cycle_len"`
	ExpectedNext string    `json:"expected_next"`
	CreatedAt    string    `json:"created_at"`
}

// DiaryEntryRequest defines the payload for adding a diary entry.
type DiaryEntryRequest struct {
	Date     string   `json:"date"     validate:"required"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

// DiaryEntryResponse defines one persisted diary entry.
type DiaryEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Symptoms  []string  `json:"symptoms"`
	Notes     string    `json:"notes"`
	CreatedAt string    `json:"created_at"`
}

// ConsultationCreateRequest defines the payload for requesting a consultation.
type ConsultationCreateRequest struct {
	Problem string `json:"problem" validate:"required"`
}

// ConsultationResponse defines one persisted consultation request,
// including the demographic snapshot taken when it was made.
type ConsultationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	HeightCm    int       `json:"height_cm"`
	WeightKg    int       `json:"weight_kg"`
	Problem     string    `json:"problem"`
	Status      string    `json:"status"`
	RequestedAt string    `json:"requested_at"`
	DoctorReply string    `json:"doctor_reply"`
}

// ChatRequest defines the payload for the guidance responder.
type ChatRequest struct {
	Question string `json:"question" validate:"required"`
}

// ChatResponse defines the responder's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// newProfileResponse converts a domain account to its wire form.
func newProfileResponse(account *domain.Account) ProfileResponse {
	return ProfileResponse{
		AccountID: account.ID,
		Username:  account.Username,
		Name:      account.Name,
		Age:       account.Age,
		HeightCm:  account.HeightCm,
		WeightKg:  account.WeightKg,
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
}

// newCycleResponse converts a domain cycle record to its wire form.
func newCycleResponse(record *domain.CycleRecord) CycleResponse {
	return CycleResponse{
		ID:           record.ID,
		LastStart:    record.LastStart.Format(DateFormat),
		CycleLen:     record.CycleLen,
		ExpectedNext: record.ExpectedNext.Format(DateFormat),
		CreatedAt:    record.CreatedAt.Format(time.RFC3339),
	}
}

// newDiaryEntryResponse converts a domain diary entry to its wire form.
func newDiaryEntryResponse(entry *domain.DiaryEntry) DiaryEntryResponse {
	symptoms := make([]string, len(entry.Symptoms))
	for i, s := range entry.Symptoms {
		symptoms[i] = string(s)
	}
	return DiaryEntryResponse{
		ID:        entry.ID,
		Date:      entry.Date.Format(DateFormat),
		Symptoms:  symptoms,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}

// newConsultationResponse converts a domain consultation request to its wire form.
func newConsultationResponse(request *domain.ConsultationRequest) ConsultationResponse {
	return ConsultationResponse{
		ID:          request.ID,
		Name:        request.Name,
		Age:         request.Age,
		HeightCm:    request.HeightCm,
		WeightKg:    request.WeightKg,
		Problem:     request.Problem,
		Status:      string(request.Status),
		RequestedAt: request.RequestedAt.Format(time.RFC3339),
		DoctorReply: request.DoctorReply,
	}
}
