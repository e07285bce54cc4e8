package semindex

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PGVectorStore is an optional Postgres + pgvector-backed Store, adapted
// from the teacher's rag/vectorstore/pgvector.go, so large tie-up catalogs
// can persist their item-level embeddings across rate-sheet reloads without
// standing up an HTTP/DB server product of our own.
type PGVectorStore struct {
	db        *sql.DB
	tableName string
	dim       int
}

// NewPGVectorStore connects, verifies the pgvector extension is installed,
// and ensures the backing table exists. Returns an error (never a crash)
// when pgvector is unavailable so the caller can fall back to MemoryStore.
func NewPGVectorStore(dsn, tableName string, dim int) (*PGVectorStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	var exists bool
	if err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_extension WHERE extname = 'vector')").Scan(&exists); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to check pgvector extension: %w", err)
	}
	if !exists {
		db.Close()
		log.Println("semindex: pgvector extension not found, falling back to in-memory store")
		return nil, fmt.Errorf("pgvector extension not installed")
	}

	s := &PGVectorStore{db: db, tableName: tableName, dim: dim}
	if err := s.createTable(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return s, nil
}

func (s *PGVectorStore) createTable() error {
	_, err := s.db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			embedding vector(%d)
		)
	`, s.tableName, s.dim))
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	_, err = s.db.Exec(fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS %s_embedding_idx ON %s USING ivfflat (embedding vector_ip_ops) WITH (lists = 100)
	`, s.tableName, s.tableName))
	if err != nil {
		log.Printf("semindex: failed to create vector index: %v", err)
	}
	return nil
}

// Upsert stores or replaces an entry.
func (s *PGVectorStore) Upsert(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry ID cannot be empty")
	}
	if len(e.Embedding) == 0 {
		return fmt.Errorf("entry embedding cannot be empty")
	}
	_, err := s.db.Exec(fmt.Sprintf(`
		INSERT INTO %s (id, text, embedding) VALUES ($1, $2, $3::vector)
		ON CONFLICT (id) DO UPDATE SET text = EXCLUDED.text, embedding = EXCLUDED.embedding
	`, s.tableName), e.ID, e.Text, formatVector(e.Embedding))
	if err != nil {
		return fmt.Errorf("failed to store entry: %w", err)
	}
	return nil
}

// Search performs an inner-product search using pgvector's <#> operator.
func (s *PGVectorStore) Search(query []float32, topK int) ([]Match, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT id, text, (embedding <#> $1::vector) * -1 AS similarity
		FROM %s ORDER BY embedding <#> $1::vector LIMIT $2
	`, s.tableName), formatVector(query), topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var id, text string
		var similarity float64
		if err := rows.Scan(&id, &text, &similarity); err != nil {
			log.Printf("semindex: failed to scan row: %v", err)
			continue
		}
		matches = append(matches, Match{Entry: Entry{ID: id, Text: text}, Similarity: float32(similarity)})
	}
	return matches, nil
}

// Get returns the entry stored under id, if any.
func (s *PGVectorStore) Get(id string) (Entry, bool) {
	var text string
	if err := s.db.QueryRow(fmt.Sprintf("SELECT text FROM %s WHERE id = $1", s.tableName), id).Scan(&text); err != nil {
		return Entry{}, false
	}
	return Entry{ID: id, Text: text}, true
}

// Count returns the number of stored entries.
func (s *PGVectorStore) Count() int {
	var n int
	if err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", s.tableName)).Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close releases the underlying connection.
func (s *PGVectorStore) Close() error { return s.db.Close() }

func formatVector(v []float32) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(float64(x), 'f', 6, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
