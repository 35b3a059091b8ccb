package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

func newTestJWTService(secret string, accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       secret,
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestJWTService("secret", time.Hour)
	user := &models.User{ID: 7, Email: "jane@campus.edu", IsAdmin: true}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != 86400 {
		t.Errorf("refreshExpiresIn = %d, want 86400", refreshExpiresIn)
	}

	claims, err := svc.ValidateToken(access)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "jane@campus.edu" {
		t.Errorf("Email = %q, want jane@campus.edu", claims.Email)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestJWTService("secret", -time.Minute)
	access, _, _, _, err := svc.GenerateTokenPair(&models.User{ID: 1, Email: "a@b.co"})
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	_, err = svc.ValidateToken(access)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
	// The middleware matches the apperrors value, so the two must be one.
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want apperrors.ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService("secret", time.Hour)
	access, _, _, _, err := svc.GenerateTokenPair(&models.User{ID: 1, Email: "a@b.co"})
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	other := newTestJWTService("different-secret", time.Hour)
	if _, err := other.ValidateToken(access); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := newTestJWTService("secret", time.Hour)
	user := &models.User{ID: 1, Email: "a@b.co"}

	_, first, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}
	_, second, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("refresh tokens should differ between issuances")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	svc := newTestJWTService("secret", time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateAndExtractClaimsRejectsZeroUserID(t *testing.T) {
	svc := newTestJWTService("secret", time.Hour)
	access, _, _, _, err := svc.GenerateTokenPair(&models.User{ID: 0, Email: "a@b.co"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateAndExtractClaims(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}
