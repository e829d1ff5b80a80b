package credstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, keyphrase string) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creds.db")
	s, err := Open(path, keyphrase)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestPutGetRoundTrip(t *testing.T) {
	s, _ := openTestStore(t, "hunter2")

	if err := s.Put("ada", "tok:123"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	token, err := s.Get("ada")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if token != "tok:123" {
		t.Errorf("token = %q, want %q", token, "tok:123")
	}
}

func TestPutReplaces(t *testing.T) {
	s, _ := openTestStore(t, "hunter2")

	if err := s.Put("ada", "old"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("ada", "new"); err != nil {
		t.Fatal(err)
	}

	token, err := s.Get("ada")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if token != "new" {
		t.Errorf("token = %q, want %q", token, "new")
	}
}

func TestPutEmptyName(t *testing.T) {
	s, _ := openTestStore(t, "hunter2")
	if err := s.Put("", "tok"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("error = %v, want ErrEmptyName", err)
	}
}

func TestGetMissing(t *testing.T) {
	s, _ := openTestStore(t, "hunter2")
	if _, err := s.Get("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestLast(t *testing.T) {
	s, _ := openTestStore(t, "hunter2")

	t.Run("empty store", func(t *testing.T) {
		if _, _, err := s.Last(); !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("most recent wins", func(t *testing.T) {
		if err := s.Put("ada", "a-tok"); err != nil {
			t.Fatal(err)
		}
		if err := s.Put("kim", "k-tok"); err != nil {
			t.Fatal(err)
		}
		if err := s.Put("ada", "a-tok2"); err != nil {
			t.Fatal(err)
		}

		username, token, err := s.Last()
		if err != nil {
			t.Fatalf("Last: %v", err)
		}
		if username != "ada" || token != "a-tok2" {
			t.Errorf("last = %q/%q, want ada/a-tok2", username, token)
		}
	})
}

func TestWrongKeyphrase(t *testing.T) {
	s, path := openTestStore(t, "hunter2")
	if err := s.Put("ada", "tok"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	other, err := Open(path, "*******")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer other.Close()

	if _, err := other.Get("ada"); !errors.Is(err, ErrBadSeal) {
		t.Fatalf("error = %v, want ErrBadSeal", err)
	}
}

func TestDelete(t *testing.T) {
	s, _ := openTestStore(t, "hunter2")
	if err := s.Put("ada", "tok"); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("ada"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("ada"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error after delete = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := s.Delete("ada"); err != nil {
		t.Fatalf("Delete (missing): %v", err)
	}
}
