package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewService("secret")
	token, err := svc.IssueToken("phone-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	deviceID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if deviceID != "phone-1" {
		t.Fatalf("unexpected device id %q", deviceID)
	}
}

func TestIssueTokenRequiresDevice(t *testing.T) {
	if _, err := NewService("secret").IssueToken(""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewService("secret")
	token, err := svc.signToken("phone-1", -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := NewService("secret").ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestValidateTokenParseError(t *testing.T) {
	old := parseClaimsFn
	defer func() { parseClaimsFn = old }()
	parseClaimsFn = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return nil, errParse
	}

	token, _ := NewService("secret").IssueToken("phone-1")
	if _, err := NewService("secret").ValidateToken(token); !errors.Is(err, errParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

var errParse = errors.New("parse error")
