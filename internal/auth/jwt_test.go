package auth

import (
	"testing"
	"time"

	"github.com/santoshmvhs/purebornmvp/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndParseToken(t *testing.T) {
	user := &models.User{Username: "cashier1", Role: models.RoleCashier}

	token, err := GenerateToken(testSecret, user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Username != "cashier1" {
		t.Errorf("username = %q", claims.Username)
	}
	if claims.Role != models.RoleCashier {
		t.Errorf("role = %q", claims.Role)
	}
	if claims.Subject != "cashier1" {
		t.Errorf("subject = %q", claims.Subject)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{Username: "admin", Role: models.RoleAdmin}
	token, err := GenerateToken(testSecret, user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken("another-secret-another-secret-12", token); err == nil {
		t.Fatal("expected an error for a token signed with a different secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	user := &models.User{Username: "admin", Role: models.RoleAdmin}
	token, err := GenerateToken(testSecret, user, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("expected an error for an expired token")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not-a-token"); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

func TestParseSupabaseToken(t *testing.T) {
	supabaseSecret := "supabase-secret-supabase-secret-1"
	claims := &SupabaseClaims{
		Email: "Priya@Example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7f1a9a3e-0000-0000-0000-000000000000",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(supabaseSecret))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	parsed, err := ParseSupabaseToken(supabaseSecret, token)
	if err != nil {
		t.Fatalf("ParseSupabaseToken: %v", err)
	}
	if parsed.Email != "Priya@Example.com" {
		t.Errorf("email = %q", parsed.Email)
	}

	// app-secret parsing must not accept a Supabase token
	if _, err := ParseToken(testSecret, token); err == nil {
		t.Fatal("app-secret parse accepted a Supabase-signed token")
	}
}

func TestUsernameFromEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"priya@example.com", "priya"},
		{"Priya@Example.com", "priya"},
		{" spaced@example.com ", "spaced"},
		{"noatsign", "noatsign"},
		{"@leading.com", "@leading.com"},
	}
	for _, tc := range cases {
		if got := usernameFromEmail(tc.in); got != tc.want {
			t.Errorf("usernameFromEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClampPassword(t *testing.T) {
	short := clampPassword("secret")
	if string(short) != "secret" {
		t.Errorf("short password altered: %q", short)
	}

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	clamped := clampPassword(string(long))
	if len(clamped) != 72 {
		t.Errorf("clamped length = %d, want 72", len(clamped))
	}
}
