package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/turnthepage/library-service/pkg/auth"
)

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()
	want := auth.Identity{UserID: "42", Role: auth.RoleStaff, Name: "Front Desk"}
	tok, err := auth.NewToken("s3cret", want, time.Minute)
	require.NoError(t, err)

	got, err := auth.ParseToken("s3cret", tok)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = auth.ParseToken("other", tok)
	require.Error(t, err)
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	_, err := auth.FromContext(context.Background())
	require.ErrorIs(t, err, auth.ErrNoIdentity)

	ctx := auth.SetAuthContext(context.Background(), auth.Identity{UserID: "1", Role: auth.RoleAdmin})
	id, err := auth.FromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, id.Role)
}
