package jwtx_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "memorylane-test"

var (
	secretA = []byte("0123456789abcdef0123456789abcdef")
	secretB = []byte("fedcba9876543210fedcba9876543210")

	// Whole seconds so NumericDate truncation doesn't shift the boundaries.
	issuedAt = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func adminIdentity(trust jwtx.Trust) jwtx.Identity {
	return jwtx.Identity{
		SubjectID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		Role:      "admin",
		Email:     "admin@test.com",
		Name:      "Admin User",
		Trust:     trust,
	}
}

func newIssuer(t *testing.T, secret []byte) *jwtx.Issuer {
	t.Helper()
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	return &jwtx.Issuer{
		Signer:      signer,
		Issuer:      testIssuer,
		PrimaryTTL:  jwtx.DefaultPrimaryTTL,
		FallbackTTL: jwtx.DefaultFallbackTTL,
		Now:         fixedClock(issuedAt),
	}
}

func TestHS256IssueAndVerify(t *testing.T) {
	issuer := newIssuer(t, secretA)

	token, claims, err := issuer.Issue(adminIdentity(jwtx.TrustVerified))
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, issuedAt.Add(15*time.Minute), claims.ExpiresAt.Time)

	v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Issuer: testIssuer, Now: fixedClock(issuedAt.Add(time.Minute))})
	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, adminIdentity(jwtx.TrustVerified), got.Identity())
	require.Equal(t, testIssuer, got.Issuer)
	require.NotEmpty(t, got.ID)
}

func TestTrustSelectsTTL(t *testing.T) {
	issuer := newIssuer(t, secretA)

	_, primary, err := issuer.Issue(adminIdentity(jwtx.TrustVerified))
	require.NoError(t, err)
	_, fallback, err := issuer.Issue(adminIdentity(jwtx.TrustBasic))
	require.NoError(t, err)

	require.Equal(t, 15*time.Minute, primary.ExpiresAt.Sub(primary.IssuedAt.Time))
	require.Equal(t, time.Hour, fallback.ExpiresAt.Sub(fallback.IssuedAt.Time))
	require.Equal(t, jwtx.TrustBasic, fallback.Trust)

	_, _, err = issuer.Issue(adminIdentity(jwtx.Trust("root")))
	require.ErrorIs(t, err, jwtx.ErrUnknownTrust)
}

func TestIssuerFallsBackToDefaultTTLs(t *testing.T) {
	issuer := &jwtx.Issuer{}

	ttl, err := issuer.TTL(jwtx.TrustVerified)
	require.NoError(t, err)
	require.Equal(t, jwtx.DefaultPrimaryTTL, ttl)

	ttl, err = issuer.TTL(jwtx.TrustBasic)
	require.NoError(t, err)
	require.Equal(t, jwtx.DefaultFallbackTTL, ttl)
}

func TestExpiryBoundary(t *testing.T) {
	issuer := newIssuer(t, secretA)
	token, _, err := issuer.Issue(adminIdentity(jwtx.TrustVerified))
	require.NoError(t, err)

	ttl := jwtx.DefaultPrimaryTTL
	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"at issue time", issuedAt, nil},
		{"one second before expiry", issuedAt.Add(ttl - time.Second), nil},
		{"exactly at expiry", issuedAt.Add(ttl), jwtx.ErrExpired},
		{"one second after expiry", issuedAt.Add(ttl + time.Second), jwtx.ErrExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Now: fixedClock(tt.at)})
			_, err := v.Verify(token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFreshTokenOnTrailingReplica(t *testing.T) {
	issuer := newIssuer(t, secretA)
	issuer.Now = fixedClock(issuedAt.Add(2 * time.Second))

	token, claims, err := issuer.Issue(adminIdentity(jwtx.TrustVerified))
	require.NoError(t, err)
	require.Nil(t, claims.NotBefore)

	verifyAt := func(at time.Time) error {
		v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Issuer: testIssuer, Now: fixedClock(at)})
		_, err := v.Verify(token)
		return err
	}

	require.NoError(t, verifyAt(issuedAt))
	require.NoError(t, verifyAt(claims.ExpiresAt.Add(-time.Second)))
	require.ErrorIs(t, verifyAt(claims.ExpiresAt.Add(time.Second)), jwtx.ErrExpired)
}

func TestFutureNotBeforeIsRejected(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "someone",
		NotBefore: jwt.NewNumericDate(issuedAt.Add(10 * time.Minute)),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}).SignedString(secretA)
	require.NoError(t, err)

	v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Issuer: testIssuer, Now: fixedClock(issuedAt)})
	_, err = v.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrNotYetValid)
}

func TestWrongKeyIsBadSignature(t *testing.T) {
	token, _, err := newIssuer(t, secretA).Issue(adminIdentity(jwtx.TrustVerified))
	require.NoError(t, err)

	v := jwtx.NewVerifierHS256(secretB, jwtx.VerifyOptions{Now: fixedClock(issuedAt)})
	_, err = v.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrBadSignature)
}

func TestBadSignatureWinsOverExpiry(t *testing.T) {
	token, _, err := newIssuer(t, secretA).Issue(adminIdentity(jwtx.TrustVerified))
	require.NoError(t, err)

	v := jwtx.NewVerifierHS256(secretB, jwtx.VerifyOptions{Now: fixedClock(issuedAt.Add(48 * time.Hour))})
	_, err = v.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrBadSignature)
}

func TestTamperedPayloadIsBadSignature(t *testing.T) {
	token, _, err := newIssuer(t, secretA).Issue(jwtx.Identity{SubjectID: "u1", Role: "user", Trust: jwtx.TrustVerified})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	forged := strings.Replace(string(payload), `"role":"user"`, `"role":"admin"`, 1)
	require.NotEqual(t, string(payload), forged)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Now: fixedClock(issuedAt)})
	_, err = v.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, jwtx.ErrBadSignature)
}

func TestAlgorithmMismatchIsBadSignature(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	ed, err := jwtx.NewSignerEdDSA(pemKey)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(adminIdentity(jwtx.TrustVerified), testIssuer, time.Minute, issuedAt)
	token, err := ed.Sign(claims)
	require.NoError(t, err)

	v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Now: fixedClock(issuedAt)})
	_, err = v.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrBadSignature)
}

func TestMalformedTokens(t *testing.T) {
	v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Now: fixedClock(issuedAt)})
	for _, raw := range []string{"", "abc", "a.b", "a.b.c", "....."} {
		_, err := v.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", raw)
	}
}

func TestMissingExpiryIsRejected(t *testing.T) {
	claims := jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}, Role: "user"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretA)
	require.NoError(t, err)

	v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Now: fixedClock(issuedAt)})
	_, err = v.Verify(token)
	require.Error(t, err)
}

func TestIssuerMismatch(t *testing.T) {
	token, _, err := newIssuer(t, secretA).Issue(adminIdentity(jwtx.TrustVerified))
	require.NoError(t, err)

	v := jwtx.NewVerifierHS256(secretA, jwtx.VerifyOptions{Issuer: "someone-else", Now: fixedClock(issuedAt)})
	_, err = v.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestSignerHS256RejectsWeakSecrets(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	_, err = jwtx.NewSignerHS256([]byte("fallback_secret"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestEdDSAKeyPair(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(pemKey)
	require.NoError(t, err)
	require.Equal(t, "EdDSA", signer.Alg())

	issuer := &jwtx.Issuer{Signer: signer, Issuer: testIssuer, Now: fixedClock(issuedAt)}
	token, _, err := issuer.Issue(adminIdentity(jwtx.TrustBasic))
	require.NoError(t, err)

	got, err := signer.Verifier(jwtx.VerifyOptions{Issuer: testIssuer, Now: fixedClock(issuedAt.Add(59 * time.Minute))}).Verify(token)
	require.NoError(t, err)
	require.Equal(t, jwtx.TrustBasic, got.Trust)

	_, err = signer.Verifier(jwtx.VerifyOptions{Now: fixedClock(issuedAt.Add(time.Hour))}).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)

	otherPEM, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	other, err := jwtx.NewSignerEdDSA(otherPEM)
	require.NoError(t, err)
	_, err = other.Verifier(jwtx.VerifyOptions{Now: fixedClock(issuedAt)}).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrBadSignature)
}

func TestHS256KeyPairVerifier(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(secretA)
	require.NoError(t, err)

	var kp jwtx.KeyPair = signer
	token, err := kp.Sign(jwtx.NewSessionClaims(adminIdentity(jwtx.TrustVerified), testIssuer, time.Minute, issuedAt))
	require.NoError(t, err)

	_, err = kp.Verifier(jwtx.VerifyOptions{Now: fixedClock(issuedAt)}).Verify(token)
	require.NoError(t, err)
}
