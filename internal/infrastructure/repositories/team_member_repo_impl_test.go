package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
)

func TestTeamMemberRepository_CRUDAndOrdering(t *testing.T) {
	db := newTestDB(t)
	createTeamMemberTable(t, db)
	repo := NewTeamMemberRepository(db)
	ctx := context.Background()

	second := &entities.TeamMember{
		Name:  "Sarah Chen",
		Role:  "Vice President",
		Bio:   "UI/UX designer",
		Order: 2,
	}
	first := &entities.TeamMember{
		Name:        "Alex Johnson",
		Role:        "President",
		Bio:         "Full-stack developer",
		Image:       null.StringFrom("/team/alex.jpg"),
		LinkedinURL: null.StringFrom("https://linkedin.com/in/alex"),
		Email:       null.StringFrom("alex@sdp.com"),
		Order:       1,
	}

	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	require.NotZero(t, first.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Alex Johnson", items[0].Name)
	require.Equal(t, "Sarah Chen", items[1].Name)

	// Unset optional fields come back as null, not "".
	require.False(t, items[1].Image.Valid)
	require.False(t, items[1].LinkedinURL.Valid)
	require.True(t, items[0].Image.Valid)

	first.Bio = "Full-stack developer and mentor"
	first.GithubURL = null.StringFrom("https://github.com/alex")
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "Full-stack developer and mentor", got.Bio)
	require.Equal(t, "https://github.com/alex", got.GithubURL.String)

	require.NoError(t, repo.Delete(ctx, second.ID))
	_, err = repo.GetByID(ctx, second.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTeamMemberRepository_OrderTiesPreserveInsertion(t *testing.T) {
	db := newTestDB(t)
	createTeamMemberTable(t, db)
	repo := NewTeamMemberRepository(db)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, repo.Create(ctx, &entities.TeamMember{
			Name: name,
			Role: "Member",
			Bio:  "bio",
		}))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "First", items[0].Name)
	require.Equal(t, "Second", items[1].Name)
	require.Equal(t, "Third", items[2].Name)
}

func TestTeamMemberRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createTeamMemberTable(t, db)
	repo := NewTeamMemberRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.TeamMember{ID: 999, Name: "x", Role: "y", Bio: "z"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 999), domainerrors.ErrNotFound)
}
