package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveProfileRejectsInvalidAge(t *testing.T) {
	// validation runs before any database access
	m := &mongoDB{}

	for _, age := range []int{0, -5, 120, 200} {
		assert.Equal(t, ErrInvalidAge, m.SaveProfile("user-1", "tester@example.com", "Alex", age), "age %d", age)
	}
}

func TestUpdateProfileThemeRejectsUnknown(t *testing.T) {
	m := &mongoDB{}

	for _, theme := range []string{"", "sepia", "Dark"} {
		assert.Equal(t, ErrInvalidTheme, m.UpdateProfileTheme("user-1", theme), "theme %q", theme)
	}
}
