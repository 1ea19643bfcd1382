package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinNameLength        = 2
	MaxNameLength        = 100
	MinCoverLetterLength = 20
	MaxCoverLetterLength = 3000
	MaxQueryLength       = 100
	MaxLocationLength    = 100
	MaxSkillLength       = 50
	MaxSkillsCount       = 20
)

var (
	emailLocalRe  = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	emailDomainRe = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	nameRe        = regexp.MustCompile(`^[\p{L}\s\-'.]+$`)
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

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}
	localPart, domainPart := parts[0], parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}
	if !emailLocalRe.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}
	if !emailDomainRe.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateApplicantName проверяет имя кандидата. Разрешены буквы любых
// алфавитов (включая æ, ø, å), пробелы, дефис и апостроф.
func ValidateApplicantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("имя обязательно")
	}
	if err := ValidateLength("имя", name, MinNameLength, MaxNameLength); err != nil {
		return err
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("имя содержит недопустимые символы")
	}
	return nil
}

// ValidateCoverLetter проверяет сопроводительное письмо.
func ValidateCoverLetter(coverLetter string) error {
	coverLetter = strings.TrimSpace(coverLetter)
	if coverLetter == "" {
		return fmt.Errorf("сопроводительное письмо обязательно")
	}
	return ValidateLength("сопроводительное письмо", coverLetter, MinCoverLetterLength, MaxCoverLetterLength)
}

// ValidateSearchQuery проверяет строку поиска.
func ValidateSearchQuery(q string) error {
	return ValidateLength("поисковый запрос", q, 0, MaxQueryLength)
}

// ValidateLocation проверяет фильтр местоположения.
func ValidateLocation(location string) error {
	return ValidateLength("местоположение", strings.TrimSpace(location), 0, MaxLocationLength)
}

// ValidateSkills проверяет выбранные навыки. Дубликаты допустимы, их
// убирает нормализация критериев.
func ValidateSkills(skills []string) error {
	if len(skills) > MaxSkillsCount {
		return fmt.Errorf("количество навыков не может превышать %d", MaxSkillsCount)
	}
	for _, skill := range skills {
		if utf8.RuneCountInString(strings.TrimSpace(skill)) > MaxSkillLength {
			return fmt.Errorf("навык не может быть длиннее %d символов", MaxSkillLength)
		}
	}
	return nil
}
