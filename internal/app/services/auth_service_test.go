package services

import (
	"strings"
	"testing"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
)

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:      "ana@example.com",
		Password:   "secret-password",
		FirstName:  "Ana",
		LastName:   "Souza",
		NationalID: "12345678901",
		BirthDate:  "1990-05-20",
		Phone:      "+5511999990000",
		Role:       "RESIDENT",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.RegisterRequest)
		wantErr bool
	}{
		{"valid resident", func(r *dto.RegisterRequest) {}, false},
		{"valid administrator", func(r *dto.RegisterRequest) { r.Role = "ADMINISTRATOR" }, false},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, true},
		{"empty first name", func(r *dto.RegisterRequest) { r.FirstName = "" }, true},
		{"one-letter last name", func(r *dto.RegisterRequest) { r.LastName = "S" }, true},
		{"overlong first name", func(r *dto.RegisterRequest) { r.FirstName = strings.Repeat("a", 101) }, true},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short" }, true},
		{"bad national id", func(r *dto.RegisterRequest) { r.NationalID = "123" }, true},
		{"bad phone", func(r *dto.RegisterRequest) { r.Phone = "abc" }, true},
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = "MANAGER" }, true},
		{"lowercase role", func(r *dto.RegisterRequest) { r.Role = "resident" }, true},
	}

	svc := &AuthService{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(req)

			err := svc.validateRegistration(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRegistration: got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input  string
		want   models.RoleType
		wantOK bool
	}{
		{"RESIDENT", models.RoleResident, true},
		{"ADMINISTRATOR", models.RoleAdministrator, true},
		{"resident", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := parseRole(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseRole(%q): got (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
