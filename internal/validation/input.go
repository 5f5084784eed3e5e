package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinTitleLength       = 1
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxCategoryLength    = 100
	MaxUserIDLength      = 128
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateTitle проверяет заголовок работы: обязателен и ограничен по длине.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("заголовок обязателен")
	}
	return ValidateLength("заголовок", title, MinTitleLength, MaxTitleLength)
}

// ValidateDescription проверяет необязательное описание.
func ValidateDescription(description string) error {
	return ValidateLength("описание", description, 0, MaxDescriptionLength)
}

// ValidateCategory проверяет необязательную категорию.
func ValidateCategory(category string) error {
	return ValidateLength("категория", category, 0, MaxCategoryLength)
}

// ValidateUserID проверяет внешний идентификатор пользователя.
// Формат не навязываем, идентификатор приходит извне как есть.
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("идентификатор пользователя обязателен")
	}
	return ValidateLength("идентификатор пользователя", userID, 0, MaxUserIDLength)
}
