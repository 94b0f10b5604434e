package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Role
		wantErr bool
	}{
		{"", domain.RoleUser, false},
		{"user", domain.RoleUser, false},
		{" Admin ", domain.RoleAdmin, false},
		{"root", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	require.Equal(t, "admin@test.com", domain.NormalizeUsername("  Admin@Test.COM \n"))
}

func TestMemoryNormalize(t *testing.T) {
	m, err := domain.Memory{Date: " 1999 ", Place: "Perth", Title: "Beach", Story: " sand "}.Normalize()
	require.NoError(t, err)
	require.Equal(t, "1999", m.Date)
	require.Equal(t, "sand", m.Story)

	_, err = domain.Memory{Date: "1999", Place: "Perth", Title: "   ", Story: "sand"}.Normalize()
	require.ErrorIs(t, err, domain.ErrMemoryIncomplete)
}
