package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorJSON(t *testing.T) {
	resp := errorJSON(1200)
	assert.Equal(t, int64(1200), resp.Code)
	assert.Equal(t, "Please enter symptoms or provide an image.", resp.Message)
}

func TestErrorJSONAuthMessages(t *testing.T) {
	assert.Equal(t, "Incorrect password. Please try again.", errorJSON(1102).Message)
	assert.Equal(t, "An account with this email address already exists. Please log in.", errorJSON(1103).Message)
	assert.Equal(t, "This user account has been disabled by an administrator.", errorJSON(1106).Message)
}

func TestErrorJSONUnknownCode(t *testing.T) {
	resp := errorJSON(4242)
	assert.Equal(t, int64(4242), resp.Code)
	assert.Equal(t, "unknown", resp.Message)
}
