package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/storage"
)

// ApplicationRepository implements storage.ApplicationRepository for BadgerDB.
type ApplicationRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ApplicationRepository = (*ApplicationRepository)(nil)

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(backend *Backend) (*ApplicationRepository, error) {
	idSeq, err := backend.GetSequence(applicationIDSeq)
	if err != nil {
		return nil, err
	}

	return &ApplicationRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ApplicationRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ApplicationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddApplication records that an applicant applied to a scholarship.
func (r *ApplicationRepository) AddApplication(ctx context.Context, application *core.Application) (*core.Application, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		application.Id = core.ID(nextID)

		if application.Status == "" {
			application.Status = core.ApplicationStatusApplied
		}
		if application.AppliedAt.IsZero() {
			application.AppliedAt = time.Now().UTC()
		}

		// Store primary record
		key := makeApplicationKey(application.Id)
		value := storage.MarshalApplication(application)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Store applicant index
		indexKey := makeApplicationByApplicantKey(application.ApplicantId, application.Id)
		if err := tx.Set(indexKey, storage.MarshalID(application.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return application, err
}

// GetApplicationsByApplicant retrieves all applications submitted by an applicant.
func (r *ApplicationRepository) GetApplicationsByApplicant(ctx context.Context, applicantID core.ID) ([]*core.Application, error) {
	var results []*core.Application
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialApplicationByApplicantKey(applicantID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Check if the key still has our applicantID prefix
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the application ID from the index
			var applicationID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				applicationID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			application, err := readApplication(tx, makeApplicationKey(applicationID))
			if err != nil {
				return err
			}
			if application != nil {
				results = append(results, application)
			}
		}
		return nil
	}, false)

	return results, err
}

// readApplication reads an application from the transaction.
func readApplication(tx *badger.Txn, key []byte) (*core.Application, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var application *core.Application
	err = item.Value(func(val []byte) error {
		var err error
		application, err = storage.UnmarshalApplication(val)
		return err
	})
	return application, err
}
