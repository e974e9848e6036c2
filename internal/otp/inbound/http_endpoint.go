package inbound

import (
	"github.com/codegate-id/codegate/internal/otp/usecase"
	"github.com/codegate-id/codegate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for passcode issuance and verification.
type HTTPEndpoint struct {
	uc uc
}

// Issue creates a fresh passcode for the given email and sends it out-of-band.
// The code itself is never part of the response body.
func (h *HTTPEndpoint) Issue(r *router.Request) (any, error) {
	var req IssueRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Issue(r.Context(), usecase.IssueInput{
		Email: req.Email,
	})
	if err != nil {
		return nil, err
	}

	return IssueResponse{
		ExpiresAt: resp.ExpiresAt,
	}, nil
}

// Verify checks a submitted passcode.
func (h *HTTPEndpoint) Verify(r *router.Request) (any, error) {
	var req VerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Verify(r.Context(), usecase.VerifyInput{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		return nil, err
	}

	return VerifyResponse{}, nil
}
