package inbound

import "time"

type IssueRequest struct {
	Email string `json:"email"`
}

type IssueResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

func (IssueResponse) Message() string {
	return "A verification code has been sent to your email."
}

type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type VerifyResponse struct{}

func (VerifyResponse) Message() string {
	return "Verification successful."
}
