package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/sanyokkme/fiyouai/types"
)

// ValidateRegisterRequest checks the signup payload before any remote call is made
func ValidateRegisterRequest(request types.RegisterRequest) error {
	if err := ValidateEmail(request.Email); err != nil {
		return err
	}
	if len(request.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	profile := request.Profile
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if err := ValidateWeight(profile.Weight); err != nil {
		return err
	}
	return ValidateHeight(profile.Height)
}

func ValidateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func ValidateWeight(weight float64) error {
	if weight < 20 || weight > 400 {
		return fmt.Errorf("weight must be between 20 and 400 kg")
	}
	return nil
}

func ValidateHeight(height float64) error {
	if height < 80 || height > 250 {
		return fmt.Errorf("height must be between 80 and 250 cm")
	}
	return nil
}

func ValidateAge(age int) error {
	if age < 10 || age > 120 {
		return fmt.Errorf("age must be between 10 and 120")
	}
	return nil
}
