package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/technova/placement/internal/pkg/apperrors"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "placement.test",
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService()

	issued, err := svc.GenerateAccessToken(Principal{Subject: "22341A0594", Role: "STUDENT"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if issued.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, want 3600", issued.ExpiresIn)
	}

	claims, err := svc.ValidateToken(issued.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Subject != "22341A0594" || claims.Role != "STUDENT" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID != issued.TokenID {
		t.Errorf("claims.ID = %q, want %q", claims.ID, issued.TokenID)
	}
}

func TestJWTService_Rejections(t *testing.T) {
	svc := newTestJWTService()
	issued, err := svc.GenerateAccessToken(Principal{Subject: "placement-admin", Role: "CDC"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour, TokenIssuer: "placement.test"})
	forged, err := other.GenerateAccessToken(Principal{Subject: "placement-admin", Role: "CDC"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	expiring := newTestJWTService()
	expiring.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiring.GenerateAccessToken(Principal{Subject: "placement-admin", Role: "CDC"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: apperrors.ErrTokenInvalid},
		{name: "garbage", token: "a.b.c", want: apperrors.ErrTokenInvalid},
		{name: "wrong secret", token: forged.AccessToken, want: apperrors.ErrTokenInvalid},
		{name: "expired", token: expired.AccessToken, want: apperrors.ErrTokenExpired},
		{name: "valid", token: issued.AccessToken, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("ValidateToken() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateToken() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateAccessTokenRequiresPrincipal(t *testing.T) {
	if _, err := newTestJWTService().GenerateAccessToken(Principal{Role: "CDC"}); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw jwt", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: true},
		{name: "bearer without token", header: "Bearer ", wantErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
