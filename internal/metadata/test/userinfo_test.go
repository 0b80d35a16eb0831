package metadata_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/bionicotaku/lingo-services-course/internal/metadata"
	"github.com/stretchr/testify/require"
)

func encodeClaims(t *testing.T, claims map[string]any, enc *base64.Encoding) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return enc.EncodeToString(payload)
}

func TestExtractUserIDFromUserInfo_ClaimPriority(t *testing.T) {
	cases := []struct {
		name   string
		claims map[string]any
		want   string
	}{
		{name: "sub wins", claims: map[string]any{"sub": "user_2abc", "user_id": "other"}, want: "user_2abc"},
		{name: "user_id fallback", claims: map[string]any{"user_id": "auth0|abc123"}, want: "auth0|abc123"},
		{name: "uid fallback", claims: map[string]any{"sub": "  ", "uid": "u-9"}, want: "u-9"},
		{name: "no identity", claims: map[string]any{"email": "x@example.com"}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := metadata.ExtractUserIDFromUserInfo(encodeClaims(t, tc.claims, base64.RawURLEncoding))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestExtractUserIDFromUserInfo_StdEncoding(t *testing.T) {
	header := encodeClaims(t, map[string]any{"sub": "user_std"}, base64.StdEncoding)
	got, err := metadata.ExtractUserIDFromUserInfo(header)
	require.NoError(t, err)
	require.Equal(t, "user_std", got)
}

func TestExtractUserIDFromUserInfo_Invalid(t *testing.T) {
	_, err := metadata.ExtractUserIDFromUserInfo("!!!invalid!!!")
	require.ErrorIs(t, err, metadata.ErrUndecodableUserInfo)

	_, err = metadata.ExtractUserIDFromUserInfo(base64.RawURLEncoding.EncodeToString([]byte("not json")))
	require.Error(t, err)

	got, err := metadata.ExtractUserIDFromUserInfo("   ")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestInjectAndFromContext(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, ctx, metadata.Inject(ctx, metadata.HandlerMetadata{}))

	meta := metadata.HandlerMetadata{UserID: "user_1", RequestID: "req-1"}
	stored, ok := metadata.FromContext(metadata.Inject(ctx, meta))
	require.True(t, ok)
	require.Equal(t, meta, stored)
	require.True(t, stored.Authenticated())

	require.False(t, metadata.HandlerMetadata{UserID: "user_1", InvalidUserInfo: true}.Authenticated())
}
