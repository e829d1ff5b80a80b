// Package credstore persists session tokens between runs. Tokens are sealed
// with ChaCha20-Poly1305 under a key derived from a user-supplied keyphrase,
// so the database file alone is not enough to recover a session.
package credstore

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"io"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrNotFound  = errors.New("credential not found")
	ErrBadSeal   = errors.New("credential cannot be decrypted (wrong keyphrase?)")
	ErrEmptyName = errors.New("username must not be empty")
)

// Store is a SQLite-backed credential store.
type Store struct {
	db  *sql.DB
	key []byte
}

// Open opens (creating if needed) the store at path with a key derived from
// keyphrase.
func Open(path, keyphrase string) (*Store, error) {
	key, err := deriveKey(keyphrase)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, key: key}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func deriveKey(keyphrase string) ([]byte, error) {
	h := hkdf.New(sha256.New, []byte(keyphrase), nil, []byte("inklore-credstore"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS credentials (
		username TEXT PRIMARY KEY,
		token BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Put stores the token for username, replacing any previous one.
func (s *Store) Put(username, token string) error {
	if username == "" {
		return ErrEmptyName
	}

	sealed, err := s.seal(username, token)
	if err != nil {
		return err
	}

	// INSERT OR REPLACE assigns a fresh rowid, so rowid order is write order
	// even when updated_at timestamps collide within a second.
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO credentials (username, token, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)`,
		username, sealed)
	return err
}

// Get returns the stored token for username.
func (s *Store) Get(username string) (string, error) {
	var sealed []byte
	err := s.db.QueryRow(`SELECT token FROM credentials WHERE username = ?`, username).Scan(&sealed)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return s.open(username, sealed)
}

// Last returns the most recently stored credential.
func (s *Store) Last() (username, token string, err error) {
	var sealed []byte
	err = s.db.QueryRow(`
		SELECT username, token FROM credentials
		ORDER BY rowid DESC LIMIT 1`).Scan(&username, &sealed)
	if err == sql.ErrNoRows {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", err
	}
	token, err = s.open(username, sealed)
	return username, token, err
}

// Delete removes the credential for username. Deleting a missing credential
// is not an error.
func (s *Store) Delete(username string) error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE username = ?`, username)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seal(username, token string) ([]byte, error) {
	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	// Nonce is prepended; username is bound as additional data.
	return aead.Seal(nonce, nonce, []byte(token), []byte(username)), nil
}

func (s *Store) open(username string, sealed []byte) (string, error) {
	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return "", err
	}
	if len(sealed) < aead.NonceSize() {
		return "", ErrBadSeal
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, []byte(username))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadSeal, err)
	}
	return string(plain), nil
}
