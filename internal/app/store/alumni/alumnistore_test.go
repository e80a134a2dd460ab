package alumnistore_test

import (
	"errors"
	"testing"

	alumnistore "github.com/encodersih/alumni-connect/internal/app/store/alumni"
	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"github.com/encodersih/alumni-connect/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_ListMentors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := alumnistore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	dir := fx.SeedDirectory(ctx)
	// A mentor without categories never enters the pool.
	fx.CreateAlumni(ctx, models.AlumniProfile{FirstName: "No", LastName: "Categories", IsMentor: true})

	mentors, err := store.ListMentors(ctx)
	if err != nil {
		t.Fatalf("ListMentors failed: %v", err)
	}
	want := []primitive.ObjectID{dir.Sarah.ID, dir.Michael.ID, dir.Emily.ID}
	if len(mentors) != len(want) {
		t.Fatalf("ListMentors() returned %d profiles, want %d", len(mentors), len(want))
	}
	for i, m := range mentors {
		if m.ID != want[i] {
			t.Errorf("mentors[%d] = %s, want %s", i, m.FirstName, want[i].Hex())
		}
		if !m.Eligible() {
			t.Errorf("mentors[%d] is not eligible", i)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("List() returned %d profiles, want 5", len(all))
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := alumnistore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	dir := testutil.NewFixtures(t, db).SeedDirectory(ctx)

	got, err := store.GetByID(ctx, dir.Emily.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.AvailabilityStatus != models.AvailabilityBusy {
		t.Errorf("AvailabilityStatus = %q", got.AvailabilityStatus)
	}
	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetByID(unknown) error = %v, want not found", err)
	}
}
