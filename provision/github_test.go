package provision

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v69/github"
)

func apiError(status int) error {
	rq, _ := http.NewRequest("GET", "https://api.github.com/repos/acme/Client1", nil)

	return &github.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    rq,
		},
		Message: http.StatusText(status),
	}
}

func TestClassifyNotFound(t *testing.T) {
	err := classify(apiError(http.StatusNotFound))

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected 404 to classify as ErrNotFound, got %v", err)
	}
}

func TestClassifyConflict(t *testing.T) {
	err := classify(apiError(http.StatusUnprocessableEntity))

	if !errors.Is(err, ErrConflict) {
		t.Errorf("Expected 422 to classify as ErrConflict, got %v", err)
	}
}

func TestClassifyOtherStatus(t *testing.T) {
	err := classify(apiError(http.StatusForbidden))

	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		t.Errorf("Expected 403 to pass through unclassified, got %v", err)
	}
}

func TestClassifyOtherError(t *testing.T) {
	cause := errors.New("connection reset")

	if err := classify(cause); err != cause {
		t.Errorf("Expected non-API error to pass through unchanged, got %v", err)
	}
}
