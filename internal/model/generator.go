package model

import "github.com/vaultpass/passgen/internal/strength"

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (nil -> default) from an explicit one.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse carries the password, the effective class selection and its strength.
// Defaulted reports that no class was selected and lowercase was switched on.
type GenerateResponse struct {
	Password  string           `json:"password"`
	Length    int              `json:"length"`
	Uppercase bool             `json:"uppercase"`
	Lowercase bool             `json:"lowercase"`
	Numbers   bool             `json:"numbers"`
	Symbols   bool             `json:"symbols"`
	Defaulted bool             `json:"defaulted"`
	Strength  StrengthResponse `json:"strength"`
}

// StrengthRequest asks for the strength of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is a strength assessment with its display colour.
type StrengthResponse struct {
	strength.Assessment
	Color string `json:"color"`
}
