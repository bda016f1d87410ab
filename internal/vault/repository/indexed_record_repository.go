package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/sqlite-vec/vector"

	"github.com/abderrahimghazali/vault-api/internal/database"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
	"github.com/abderrahimghazali/vault-api/internal/vault/index"
)

const warmBatchSize = 1000

// IndexedRecordRepository implements Record persistence for MySQL and SQLite.
//
// Rows hold the embedding as a float32 blob; ranking is served by an in-process IVF
// index that Warm fills from the table. Inserts reach the index only after their
// transaction commits. Index entries whose row has since disappeared are skipped.
type IndexedRecordRepository struct {
	db     *sql.DB
	index  *index.IVF
	logger *slog.Logger
}

// NewMySQLRecordRepository creates a MySQL Record repository backed by idx.
func NewMySQLRecordRepository(db *sql.DB, idx *index.IVF, logger *slog.Logger) *IndexedRecordRepository {
	return &IndexedRecordRepository{db: db, index: idx, logger: logger}
}

// NewSQLiteRecordRepository creates a SQLite Record repository backed by idx.
func NewSQLiteRecordRepository(db *sql.DB, idx *index.IVF, logger *slog.Logger) *IndexedRecordRepository {
	return &IndexedRecordRepository{db: db, index: idx, logger: logger}
}

// Create inserts a new record and schedules it for indexing on commit.
func (r *IndexedRecordRepository) Create(ctx context.Context, record *vaultDomain.Record) error {
	if len(record.Embedding) != r.index.Dimensions() {
		return vaultDomain.ErrDimensionMismatch
	}

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return storeFailure(err, "failed to marshal record id")
	}

	blob, err := vector.EncodeEmbedding(record.Embedding)
	if err != nil {
		return storeFailure(err, "failed to encode embedding")
	}

	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO vault_records (id, ciphertext, nonce, tag, embedding, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		record.Ciphertext,
		record.Nonce,
		record.Tag,
		blob,
		record.CreatedAt,
	)
	if err != nil {
		return storeFailure(err, "failed to create record")
	}

	recordID, embedding := record.ID, record.Embedding
	database.AfterCommit(ctx, func() {
		// dimensions were checked above, Add cannot fail
		_ = r.index.Add(recordID, embedding)
	})
	return nil
}

// Get retrieves a record by its id.
func (r *IndexedRecordRepository) Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	binaryID, err := id.MarshalBinary()
	if err != nil {
		return nil, storeFailure(err, "failed to marshal record id")
	}

	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, ciphertext, nonce, tag, embedding, created_at
			  FROM vault_records
			  WHERE id = ?`

	var (
		record    vaultDomain.Record
		embedding []byte
	)
	err = querier.QueryRowContext(ctx, query, binaryID).Scan(
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

	record.Embedding, err = vector.DecodeEmbedding(embedding)
	if err != nil {
		return nil, storeFailure(err, "failed to decode embedding")
	}
	return &record, nil
}

// Search ranks records through the index and loads the winners by id.
//
// When some ranked ids no longer have rows the index is asked for a wider window,
// doubling until limit rows are found or the index is exhausted.
func (r *IndexedRecordRepository) Search(
	ctx context.Context,
	query []float32,
	limit int,
) ([]vaultDomain.Candidate, error) {
	if limit <= 0 {
		if len(query) != r.index.Dimensions() {
			return nil, vaultDomain.ErrDimensionMismatch
		}
		return []vaultDomain.Candidate{}, nil
	}

	window := limit
	for {
		hits, err := r.index.Search(query, window)
		if err != nil {
			return nil, err
		}

		rows, err := r.fetch(ctx, hits)
		if err != nil {
			return nil, err
		}

		candidates := make([]vaultDomain.Candidate, 0, limit)
		for _, hit := range hits {
			record, ok := rows[hit.ID]
			if !ok {
				continue
			}
			candidates = append(candidates, vaultDomain.Candidate{Record: record, Distance: hit.Distance})
			if len(candidates) == limit {
				break
			}
		}

		if missing := len(hits) - len(rows); missing > 0 {
			r.logger.Warn("index entries without rows skipped",
				slog.Int("missing", missing),
				slog.Int("window", window),
			)
		}

		if len(candidates) == limit || len(hits) < window {
			return candidates, nil
		}
		window *= 2
	}
}

// fetch loads the rows for hits keyed by id; ids without a row are absent from the map.
func (r *IndexedRecordRepository) fetch(
	ctx context.Context,
	hits []index.Hit,
) (map[uuid.UUID]*vaultDomain.Record, error) {
	records := make(map[uuid.UUID]*vaultDomain.Record, len(hits))
	if len(hits) == 0 {
		return records, nil
	}

	args := make([]any, len(hits))
	for i, hit := range hits {
		binaryID, err := hit.ID.MarshalBinary()
		if err != nil {
			return nil, storeFailure(err, "failed to marshal record id")
		}
		args[i] = binaryID
	}

	query := `SELECT id, ciphertext, nonce, tag, created_at
			  FROM vault_records
			  WHERE id IN (` + strings.TrimSuffix(strings.Repeat("?, ", len(hits)), ", ") + `)`

	rows, err := database.GetTx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeFailure(err, "failed to fetch records")
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var record vaultDomain.Record
		if err := rows.Scan(
			&record.ID,
			&record.Ciphertext,
			&record.Nonce,
			&record.Tag,
			&record.CreatedAt,
		); err != nil {
			return nil, storeFailure(err, "failed to scan record")
		}
		records[record.ID] = &record
	}
	if err := rows.Err(); err != nil {
		return nil, storeFailure(err, "failed to iterate records")
	}
	return records, nil
}

// Warm loads every stored embedding into the index. Call once at startup before serving.
func (r *IndexedRecordRepository) Warm(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, embedding FROM vault_records ORDER BY id`)
	if err != nil {
		return storeFailure(err, "failed to load embeddings")
	}
	defer func() {
		_ = rows.Close()
	}()

	batch := make([]index.Entry, 0, warmBatchSize)
	flush := func() error {
		if err := r.index.AddBatch(batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		var (
			entry index.Entry
			blob  []byte
		)
		if err := rows.Scan(&entry.ID, &blob); err != nil {
			return storeFailure(err, "failed to scan embedding")
		}
		if entry.Vector, err = vector.DecodeEmbedding(blob); err != nil {
			return storeFailure(err, "failed to decode embedding")
		}

		batch = append(batch, entry)
		if len(batch) == warmBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := rows.Err(); err != nil {
		return storeFailure(err, "failed to iterate embeddings")
	}
	if err := flush(); err != nil {
		return err
	}

	r.logger.Info("vector index warmed",
		slog.Int("records", r.index.Len()),
		slog.Bool("trained", r.index.Trained()),
	)
	return nil
}
