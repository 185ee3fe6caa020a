package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestPasswordHashAndLegacyPlaintext(t *testing.T) {
	hash, err := HashPassword("Azadi-123456")
	if err != nil {
		t.Fatal(err)
	}
	if !IsHashed(hash) {
		t.Fatalf("not a bcrypt hash: %q", hash)
	}
	if ok, rehash := CheckPassword(hash, "Azadi-123456"); !ok || rehash {
		t.Errorf("hash check = %v rehash %v", ok, rehash)
	}
	if ok, _ := CheckPassword(hash, "wrong"); ok {
		t.Error("wrong password accepted")
	}

	// rows written before hashing was introduced
	if ok, rehash := CheckPassword("plain-old", "plain-old"); !ok || !rehash {
		t.Errorf("legacy check = %v rehash %v", ok, rehash)
	}
	if ok, rehash := CheckPassword("plain-old", "plain-new"); ok || rehash {
		t.Error("legacy mismatch accepted")
	}
}

func TestTokenIssueAndParse(t *testing.T) {
	s := NewTokenService("k1", time.Hour)
	raw, claims, err := s.Issue("user-1", "azadi")
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got.Subject != "user-1" || got.Username != "azadi" || got.Role != RoleAdmin || got.ID != claims.ID {
		t.Errorf("claims = %+v", got)
	}

	if _, err := NewTokenService("k2", time.Hour).Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign secret: %v", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	s := NewTokenService("k1", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	raw, _, err := s.Issue("user-1", "azadi")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: %v", err)
	}
}

func TestTokenRejectsOtherRolesAndAlgorithms(t *testing.T) {
	s := NewTokenService("k1", time.Hour)

	member := &Claims{Username: "x", Role: "member", RegisteredClaims: jwt.RegisteredClaims{
		Subject: "u", ID: "j", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, member).SignedString([]byte("k1"))
	if _, err := s.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("member role accepted: %v", err)
	}

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, member).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := s.Parse(none); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("alg none accepted: %v", err)
	}
}
