package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmailAccountService_CreateAndList(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	first, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "  a@x.com ", Purpose: "<b>shopping</b>"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.Email != "a@x.com" {
		t.Errorf("email not trimmed: %q", first.Email)
	}
	if first.Purpose != "<b>shopping</b>" {
		t.Errorf("purpose = %q, want it stored as typed", first.Purpose)
	}
	if first.ID == 0 || first.CreatedAt.IsZero() {
		t.Errorf("server-assigned fields missing: %+v", first)
	}

	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "b@x.com"}); err != nil {
		t.Fatalf("Create() second error = %v", err)
	}

	accounts, err := svc.emails.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(accounts) != 2 || accounts[0].Email != "a@x.com" || accounts[1].Email != "b@x.com" {
		t.Fatalf("List() = %+v, want a@x.com then b@x.com", accounts)
	}
}

func TestEmailAccountService_CreateValidation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank email: got %v, want ErrInvalidInput", err)
	}

	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "dup@x.com"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "dup@x.com"}); !errors.Is(err, ErrEmailAccountExists) {
		t.Errorf("duplicate email: got %v, want ErrEmailAccountExists", err)
	}
}

func TestEmailAccountService_DeleteNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)

	if err := svc.emails.Delete(context.Background(), 42); !errors.Is(err, ErrEmailAccountNotFound) {
		t.Fatalf("Delete() = %v, want ErrEmailAccountNotFound", err)
	}
}

// Deleting an account removes its websites and, through them, their submissions.
func TestEmailAccountService_DeleteCascades(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	account, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	site, err := svc.websites.Create(ctx, CreateWebsiteInput{Name: "Site1", URL: "https://site1.test", EmailID: account.ID})
	if err != nil {
		t.Fatalf("create website: %v", err)
	}
	essay, err := svc.submissions.Create(ctx, CreateSubmissionInput{Title: "Essay", DueDate: "2025-01-01T10:00", WebsiteID: site.ID})
	if err != nil {
		t.Fatalf("create submission: %v", err)
	}

	// a second account must be untouched
	other, _ := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "b@x.com"})
	otherSite, _ := svc.websites.Create(ctx, CreateWebsiteInput{Name: "Other", URL: "https://other.test", EmailID: other.ID})

	if err := svc.emails.Delete(ctx, account.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, _, err := svc.websites.ListByEmailID(ctx, account.ID); !errors.Is(err, ErrEmailAccountNotFound) {
		t.Errorf("ListByEmailID after delete = %v, want ErrEmailAccountNotFound", err)
	}
	if _, err := svc.websites.GetByID(ctx, site.ID); !errors.Is(err, ErrWebsiteNotFound) {
		t.Errorf("website survived cascade: %v", err)
	}
	if _, err := svc.submissions.GetByID(ctx, essay.ID); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("submission survived cascade: %v", err)
	}
	if _, err := svc.websites.GetByID(ctx, otherSite.ID); err != nil {
		t.Errorf("unrelated website was removed: %v", err)
	}
}

func TestEmailAccountService_ListSummaries(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	a, _ := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "a@x.com"})
	b, _ := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "b@x.com"})
	for i, name := range []string{"one", "two", "three"} {
		emailID := a.ID
		if i == 2 {
			emailID = b.ID
		}
		if _, err := svc.websites.Create(ctx, CreateWebsiteInput{Name: name, URL: "https://" + name + ".test", EmailID: emailID}); err != nil {
			t.Fatalf("create website: %v", err)
		}
	}
	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "c@x.com"}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	summaries, err := svc.emails.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("ListSummaries() error = %v", err)
	}
	want := []int64{2, 1, 0}
	if len(summaries) != len(want) {
		t.Fatalf("ListSummaries() returned %d rows, want %d", len(summaries), len(want))
	}
	for i, s := range summaries {
		if s.WebsiteCount != want[i] {
			t.Errorf("%s website count = %d, want %d", s.Email, s.WebsiteCount, want[i])
		}
	}
}

func TestWebsiteService_CreateRequiresAccount(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	_, err := svc.websites.Create(ctx, CreateWebsiteInput{Name: "Site", URL: "https://s.test", EmailID: 77})
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("Create() with missing account = %v, want ErrForeignKeyViolation", err)
	}

	_, err = svc.websites.Create(ctx, CreateWebsiteInput{URL: "https://s.test", EmailID: 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Create() without name = %v, want ErrInvalidInput", err)
	}
}

func TestWebsiteService_DeleteReturnsParent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	account, _ := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "a@x.com"})
	site, _ := svc.websites.Create(ctx, CreateWebsiteInput{Name: "Site", URL: "https://s.test", EmailID: account.ID})
	sub, _ := svc.submissions.Create(ctx, CreateSubmissionInput{Title: "Form", DueDate: dueIn(time.Hour), WebsiteID: site.ID})

	deleted, err := svc.websites.Delete(ctx, site.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.EmailID != account.ID {
		t.Errorf("deleted website email_id = %d, want %d", deleted.EmailID, account.ID)
	}
	if _, err := svc.submissions.GetByID(ctx, sub.ID); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("submission survived website delete: %v", err)
	}
	if _, err := svc.emails.GetByID(ctx, account.ID); err != nil {
		t.Errorf("account removed with its website: %v", err)
	}
	if _, err := svc.websites.Delete(ctx, site.ID); !errors.Is(err, ErrWebsiteNotFound) {
		t.Errorf("second Delete() = %v, want ErrWebsiteNotFound", err)
	}
}
