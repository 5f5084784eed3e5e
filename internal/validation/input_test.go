package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Нормальный заголовок"))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("   "))
	assert.Error(t, ValidateTitle(strings.Repeat("а", MaxTitleLength+1)))
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription(""))
	assert.NoError(t, ValidateDescription("Описание работы"))
	assert.Error(t, ValidateDescription(strings.Repeat("а", MaxDescriptionLength+1)))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory(""))
	assert.NoError(t, ValidateCategory("photo"))
	assert.Error(t, ValidateCategory(strings.Repeat("x", MaxCategoryLength+1)))
}

func TestValidateUserID(t *testing.T) {
	assert.NoError(t, ValidateUserID("user-123"))
	assert.Error(t, ValidateUserID(""))
	assert.Error(t, ValidateUserID("  "))
	assert.Error(t, ValidateUserID(strings.Repeat("u", MaxUserIDLength+1)))
}
