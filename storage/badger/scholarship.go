package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/storage"
)

// ScholarshipRepository implements storage.ScholarshipRepository for BadgerDB.
type ScholarshipRepository struct {
	backend *Backend
}

var _ storage.ScholarshipRepository = (*ScholarshipRepository)(nil)

// NewScholarshipRepository creates a new ScholarshipRepository.
func NewScholarshipRepository(backend *Backend) (*ScholarshipRepository, error) {
	return &ScholarshipRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ScholarshipRepository has no resources to release.
func (r *ScholarshipRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ScholarshipRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddScholarships adds one or more scholarships to storage.
func (r *ScholarshipRepository) AddScholarships(ctx context.Context, scholarships ...*core.ScholarshipRecord) ([]*core.ScholarshipRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, scholarship := range scholarships {
			// Use content-based ID if not set
			if scholarship.Id == 0 {
				scholarship.Id = core.IDFromContent(scholarship.Name)
			}

			// Set timestamps
			scholarship.InsertedAt = time.Now().UTC()
			scholarship.UpdatedAt = scholarship.InsertedAt

			key := makeScholarshipKey(scholarship.Id)
			value := storage.MarshalScholarship(scholarship)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return scholarships, err
}

// GetScholarship retrieves a single scholarship by ID.
func (r *ScholarshipRepository) GetScholarship(ctx context.Context, id core.ID) (*core.ScholarshipRecord, error) {
	var result *core.ScholarshipRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeScholarshipKey(id)
		var err error
		result, err = readScholarship(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllScholarships retrieves the full catalog.
func (r *ScholarshipRepository) AllScholarships(ctx context.Context) ([]*core.ScholarshipRecord, error) {
	var results []*core.ScholarshipRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(scholarshipPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			key := item.Key()

			// Stop once we've moved past scholarship keys
			if !hasPrefix(key, prefix) {
				break
			}

			var scholarship *core.ScholarshipRecord
			err := item.Value(func(val []byte) error {
				var err error
				scholarship, err = storage.UnmarshalScholarship(val)
				return err
			})
			if err != nil {
				return err
			}

			if scholarship != nil {
				results = append(results, scholarship)
			}
		}
		return nil
	}, false)

	return results, err
}

// DeleteScholarships removes scholarships by their IDs.
func (r *ScholarshipRepository) DeleteScholarships(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeScholarshipKey(id)

			scholarship, err := readScholarship(tx, key)
			if err != nil {
				return err
			}
			if scholarship == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Helper methods

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readScholarship reads a scholarship from the transaction.
func readScholarship(tx *badger.Txn, key []byte) (*core.ScholarshipRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var scholarship *core.ScholarshipRecord
	err = item.Value(func(val []byte) error {
		var err error
		scholarship, err = storage.UnmarshalScholarship(val)
		return err
	})
	return scholarship, err
}
