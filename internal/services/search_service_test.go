package services

import (
	"context"
	"testing"
)

func seedSearchData(t *testing.T, svc *testServices) {
	ctx := context.Background()
	account, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "jobs@mail.test", Purpose: "Scholarship applications"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	site, err := svc.websites.Create(ctx, CreateWebsiteInput{Name: "Portal", URL: "https://portal.example.org", EmailID: account.ID})
	if err != nil {
		t.Fatalf("create website: %v", err)
	}
	if _, err := svc.submissions.Create(ctx, CreateSubmissionInput{Title: "Essay draft", Description: "100% original", DueDate: "2025-07-01T09:00", WebsiteID: site.ID}); err != nil {
		t.Fatalf("create submission: %v", err)
	}
}

func TestSearchService_PurposeOnlyMatch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	seedSearchData(t, svc)

	results, err := svc.search.Search(context.Background(), "scholar")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results.Emails) != 1 || results.Emails[0].Email != "jobs@mail.test" {
		t.Errorf("Emails = %+v, want the scholarship account", results.Emails)
	}
	if len(results.Websites) != 0 || len(results.Submissions) != 0 {
		t.Errorf("unexpected matches: websites=%d submissions=%d", len(results.Websites), len(results.Submissions))
	}
}

func TestSearchService_MatchesEachEntity(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	seedSearchData(t, svc)
	ctx := context.Background()

	results, _ := svc.search.Search(ctx, "PORTAL")
	if len(results.Websites) != 1 || len(results.Emails) != 0 {
		t.Errorf("PORTAL: %+v", results)
	}

	results, _ = svc.search.Search(ctx, "example.org")
	if len(results.Websites) != 1 {
		t.Errorf("url match missing: %+v", results)
	}

	results, _ = svc.search.Search(ctx, "draft")
	if len(results.Submissions) != 1 {
		t.Errorf("title match missing: %+v", results)
	}

	results, _ = svc.search.Search(ctx, "mail.test")
	if len(results.Emails) != 1 {
		t.Errorf("email match missing: %+v", results)
	}
}

func TestSearchService_WildcardsAreLiteral(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	seedSearchData(t, svc)
	ctx := context.Background()

	results, _ := svc.search.Search(ctx, "100%")
	if len(results.Submissions) != 1 {
		t.Errorf("literal %% should match the description: %+v", results.Submissions)
	}

	results, _ = svc.search.Search(ctx, "%")
	if len(results.Emails) != 0 || len(results.Websites) != 0 || len(results.Submissions) != 1 {
		t.Errorf("%% alone must not match everything: %+v", results)
	}

	results, _ = svc.search.Search(ctx, "_")
	if !results.Empty() {
		t.Errorf("_ must not act as a wildcard: %+v", results)
	}
}

func TestSearchService_EmptyQuery(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	seedSearchData(t, svc)

	results, err := svc.search.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !results.Empty() {
		t.Errorf("empty query returned matches: %+v", results)
	}
}

func TestSearchService_AngleBrackets(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	account, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "digest@mail.test", Purpose: "alerts for <weekly> digest"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	site, err := svc.websites.Create(ctx, CreateWebsiteInput{Name: "Math", URL: "https://m", EmailID: account.ID})
	if err != nil {
		t.Fatalf("create website: %v", err)
	}
	if _, err := svc.submissions.Create(ctx, CreateSubmissionInput{Title: "Proof", Description: "if a<b and c>d", DueDate: "2025-07-01T09:00", WebsiteID: site.ID}); err != nil {
		t.Fatalf("create submission: %v", err)
	}

	results, _ := svc.search.Search(ctx, "<weekly>")
	if len(results.Emails) != 1 {
		t.Errorf("<weekly> matched %d accounts, want 1", len(results.Emails))
	}

	results, _ = svc.search.Search(ctx, "a<b and c>d")
	if len(results.Submissions) != 1 {
		t.Errorf("a<b and c>d matched %d submissions, want 1", len(results.Submissions))
	}
}

func TestSearchService_NonASCIICapitals(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := newTestServices(db, fixedNow)
	ctx := context.Background()

	if _, err := svc.emails.Create(ctx, CreateEmailAccountInput{Email: "ecole@mail.test", Purpose: "École applications"}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	for _, q := range []string{"École", "COLE APPLICATIONS", "École Applications"} {
		results, err := svc.search.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", q, err)
		}
		if len(results.Emails) != 1 {
			t.Errorf("Search(%q) matched %d accounts, want 1", q, len(results.Emails))
		}
	}
}
