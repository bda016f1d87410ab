package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/abderrahimghazali/vault-api/internal/database"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
)

// PostgreSQLRecordRepository implements Record persistence for PostgreSQL with pgvector.
// Ranking runs in the database against an ivfflat cosine index.
type PostgreSQLRecordRepository struct {
	db         *sql.DB
	dimensions int
	probes     int
}

// Create inserts a new record into the PostgreSQL database.
func (p *PostgreSQLRecordRepository) Create(ctx context.Context, record *vaultDomain.Record) error {
	if len(record.Embedding) != p.dimensions {
		return vaultDomain.ErrDimensionMismatch
	}

	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO vault_records (id, ciphertext, nonce, tag, embedding, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		record.ID,
		record.Ciphertext,
		record.Nonce,
		record.Tag,
		pgvector.NewVector(record.Embedding),
		record.CreatedAt,
	)
	if err != nil {
		return storeFailure(err, "failed to create record")
	}
	return nil
}

// Get retrieves a record by its id.
func (p *PostgreSQLRecordRepository) Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, ciphertext, nonce, tag, embedding, created_at
			  FROM vault_records
			  WHERE id = $1`

	var (
		record    vaultDomain.Record
		embedding pgvector.Vector
	)
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.Ciphertext,
		&record.Nonce,
		&record.Tag,
		&embedding,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, vaultDomain.ErrRecordNotFound
		}
		return nil, storeFailure(err, "failed to get record")
	}

	record.Embedding = embedding.Slice()
	return &record, nil
}

// Search ranks records by cosine distance to query using the ivfflat index.
//
// The query runs in a read-only transaction so SET LOCAL ivfflat.probes applies to it alone.
func (p *PostgreSQLRecordRepository) Search(
	ctx context.Context,
	query []float32,
	limit int,
) ([]vaultDomain.Candidate, error) {
	if len(query) != p.dimensions {
		return nil, vaultDomain.ErrDimensionMismatch
	}
	if limit <= 0 {
		return []vaultDomain.Candidate{}, nil
	}

	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, storeFailure(err, "failed to begin search transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL ivfflat.probes = %d", p.probes)); err != nil {
		return nil, storeFailure(err, "failed to set ivfflat probes")
	}

	sqlQuery := `SELECT id, ciphertext, nonce, tag, created_at, embedding <=> $1 AS distance
				 FROM vault_records
				 ORDER BY distance ASC, id ASC
				 LIMIT $2`

	rows, err := tx.QueryContext(ctx, sqlQuery, pgvector.NewVector(query), limit)
	if err != nil {
		return nil, storeFailure(err, "failed to search records")
	}
	defer func() {
		_ = rows.Close()
	}()

	candidates := make([]vaultDomain.Candidate, 0, limit)
	for rows.Next() {
		var (
			record   vaultDomain.Record
			distance sql.NullFloat64
		)
		if err := rows.Scan(
			&record.ID,
			&record.Ciphertext,
			&record.Nonce,
			&record.Tag,
			&record.CreatedAt,
			&distance,
		); err != nil {
			return nil, storeFailure(err, "failed to scan record")
		}

		// pgvector yields NaN for zero vectors.
		d := 1.0
		if distance.Valid && !math.IsNaN(distance.Float64) {
			d = distance.Float64
		}
		candidates = append(candidates, vaultDomain.Candidate{Record: &record, Distance: d})
	}
	if err := rows.Err(); err != nil {
		return nil, storeFailure(err, "failed to iterate records")
	}

	if err := tx.Commit(); err != nil {
		return nil, storeFailure(err, "failed to commit search transaction")
	}
	return candidates, nil
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL Record repository instance.
// probes sets ivfflat.probes for every search.
func NewPostgreSQLRecordRepository(db *sql.DB, dimensions, probes int) *PostgreSQLRecordRepository {
	if probes <= 0 {
		probes = 1
	}
	return &PostgreSQLRecordRepository{db: db, dimensions: dimensions, probes: probes}
}
