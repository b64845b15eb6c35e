package services

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fairwaydreams/fairway-backend/internal/requestdata"
	"github.com/fairwaydreams/fairway-backend/internal/types"
)

type stubUserTokenRepo struct {
	tokens []*types.UserToken
}

func (s *stubUserTokenRepo) Create(ctx context.Context, tx *gorm.DB, userTokens []*types.UserToken) ([]*types.UserToken, error) {
	s.tokens = append(s.tokens, userTokens...)
	return userTokens, nil
}

func (s *stubUserTokenRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.UserToken, error) {
	out := []*types.UserToken{}
	for _, tok := range s.tokens {
		for _, id := range userIDs {
			if tok.UserID == id {
				out = append(out, tok)
			}
		}
	}
	return out, nil
}

func (s *stubUserTokenRepo) GetByAccessTokens(ctx context.Context, tx *gorm.DB, accessTokens []string) ([]*types.UserToken, error) {
	out := []*types.UserToken{}
	for _, tok := range s.tokens {
		for _, at := range accessTokens {
			if tok.AccessToken == at {
				out = append(out, tok)
			}
		}
	}
	return out, nil
}

func (s *stubUserTokenRepo) GetByRefreshTokens(ctx context.Context, tx *gorm.DB, refreshTokens []string) ([]*types.UserToken, error) {
	out := []*types.UserToken{}
	for _, tok := range s.tokens {
		for _, rt := range refreshTokens {
			if tok.RefreshToken == rt {
				out = append(out, tok)
			}
		}
	}
	return out, nil
}

func (s *stubUserTokenRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, tokenIDs []uuid.UUID) error {
	kept := s.tokens[:0]
	for _, tok := range s.tokens {
		drop := false
		for _, id := range tokenIDs {
			if tok.ID == id {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, tok)
		}
	}
	s.tokens = kept
	return nil
}

func (s *stubUserTokenRepo) DeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	kept := s.tokens[:0]
	for _, tok := range s.tokens {
		drop := false
		for _, id := range userIDs {
			if tok.UserID == id {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, tok)
		}
	}
	s.tokens = kept
	return nil
}

func newTestAuthService(t *testing.T, tokenRepo *stubUserTokenRepo) *authService {
	t.Helper()
	return &authService{
		db:            nil,
		log:           newTestLogger(t),
		userRepo:      nil,
		userTokenRepo: tokenRepo,
		validate:      validator.New(),
		jwtSecretKey:  "test-secret",
		accessTTL:     time.Hour,
		refreshTTL:    24 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tokenRepo := &stubUserTokenRepo{}
	as := newTestAuthService(t, tokenRepo)

	user := &types.User{ID: uuid.New(), Email: "ops@example.com"}
	accessToken, err := as.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	tokenRepo.tokens = append(tokenRepo.tokens, &types.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: "refresh-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	ctx, err := as.SetContextFromToken(context.Background(), accessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		t.Fatalf("no request data in context")
	}
	if rd.UserID != user.ID {
		t.Fatalf("user id = %s, want %s", rd.UserID, user.ID)
	}
	if rd.RefreshToken != "refresh-1" {
		t.Fatalf("refresh token = %q, want refresh-1", rd.RefreshToken)
	}
}

func TestSetContextFromTokenRejectsRevoked(t *testing.T) {
	as := newTestAuthService(t, &stubUserTokenRepo{})

	user := &types.User{ID: uuid.New()}
	accessToken, err := as.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	// Valid signature but no persisted session.
	if _, err := as.SetContextFromToken(context.Background(), accessToken); err == nil {
		t.Fatalf("expected revoked token to be rejected")
	}
}

func TestSetContextFromTokenRejectsForgedSignature(t *testing.T) {
	as := newTestAuthService(t, &stubUserTokenRepo{})
	forger := newTestAuthService(t, &stubUserTokenRepo{})
	forger.jwtSecretKey = "other-secret"

	user := &types.User{ID: uuid.New()}
	forged, err := forger.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	if _, err := as.SetContextFromToken(context.Background(), forged); err == nil {
		t.Fatalf("expected forged token to be rejected")
	}
}

func TestSetContextFromTokenRejectsExpired(t *testing.T) {
	as := newTestAuthService(t, &stubUserTokenRepo{})
	as.accessTTL = -time.Minute

	user := &types.User{ID: uuid.New()}
	expired, err := as.generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}
	if _, err := as.SetContextFromToken(context.Background(), expired); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestSetContextFromTokenEmptyIsNoop(t *testing.T) {
	as := newTestAuthService(t, &stubUserTokenRepo{})
	ctx, err := as.SetContextFromToken(context.Background(), "")
	if err != nil {
		t.Fatalf("empty token should be a no-op, got %v", err)
	}
	if requestdata.GetRequestData(ctx) != nil {
		t.Fatalf("empty token must not populate request data")
	}
}
