package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/storage"
)

// ApplicantRepository implements storage.ApplicantRepository for BadgerDB.
type ApplicantRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ApplicantRepository = (*ApplicantRepository)(nil)

// NewApplicantRepository creates a new ApplicantRepository.
func NewApplicantRepository(backend *Backend) (*ApplicantRepository, error) {
	idSeq, err := backend.GetSequence(applicantIDSeq)
	if err != nil {
		return nil, err
	}

	return &ApplicantRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ApplicantRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ApplicantRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddApplicant adds an applicant profile to storage.
func (r *ApplicantRepository) AddApplicant(ctx context.Context, applicant *core.ApplicantProfile) (*core.ApplicantProfile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Email addresses are unique across profiles
		emailKey := makeApplicantEmailKey(applicant.Email)
		if _, err := tx.Get(emailKey); err == nil {
			return storage.ErrDuplicateKey
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		if applicant.Id == 0 {
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
			applicant.Id = core.ID(nextID)
		}

		applicant.InsertedAt = time.Now().UTC()
		applicant.UpdatedAt = applicant.InsertedAt

		// Store primary record
		key := makeApplicantKey(applicant.Id)
		value := storage.MarshalApplicant(applicant)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Store email index
		if err := tx.Set(emailKey, storage.MarshalID(applicant.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return applicant, err
}

// UpdateApplicant updates an existing applicant profile.
func (r *ApplicantRepository) UpdateApplicant(ctx context.Context, applicant *core.ApplicantProfile) (*core.ApplicantProfile, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeApplicantKey(applicant.Id)

		// Read old profile to detect changes
		old, err := r.readApplicant(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		// Update timestamp
		applicant.InsertedAt = old.InsertedAt
		applicant.UpdatedAt = time.Now().UTC()

		// Store updated record
		value := storage.MarshalApplicant(applicant)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update email index if the email changed
		if old.Email != applicant.Email {
			newEmailKey := makeApplicantEmailKey(applicant.Email)
			if _, err := tx.Get(newEmailKey); err == nil {
				return storage.ErrDuplicateKey
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err := tx.Delete(makeApplicantEmailKey(old.Email)); err != nil {
				return err
			}
			if err := tx.Set(newEmailKey, storage.MarshalID(applicant.Id)); err != nil {
				return err
			}
		}

		return tx.Commit()
	}, true)

	return applicant, err
}

// GetApplicant retrieves a single applicant profile by ID.
func (r *ApplicantRepository) GetApplicant(ctx context.Context, id core.ID) (*core.ApplicantProfile, error) {
	var result *core.ApplicantProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeApplicantKey(id)
		var err error
		result, err = r.readApplicant(tx, key)
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

// FindApplicantByEmail retrieves an applicant profile by email address.
func (r *ApplicantRepository) FindApplicantByEmail(ctx context.Context, email string) (*core.ApplicantProfile, error) {
	var result *core.ApplicantProfile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from email index
		item, err := tx.Get(makeApplicantEmailKey(email))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var applicantID core.ID
		err = item.Value(func(val []byte) error {
			applicantID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full profile
		result, err = r.readApplicant(tx, makeApplicantKey(applicantID))
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

// DeleteApplicant removes an applicant profile by ID.
func (r *ApplicantRepository) DeleteApplicant(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeApplicantKey(id)

		// Read record to get the email for index cleanup
		applicant, err := r.readApplicant(tx, key)
		if err != nil {
			return err
		}
		if applicant == nil {
			return storage.ErrNotFound
		}

		// Delete from email index
		if err := tx.Delete(makeApplicantEmailKey(applicant.Email)); err != nil {
			return err
		}

		// Delete primary record
		if err := tx.Delete(key); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// readApplicant reads an applicant profile from the transaction.
func (r *ApplicantRepository) readApplicant(tx *badger.Txn, key []byte) (*core.ApplicantProfile, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var applicant *core.ApplicantProfile
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		applicant, unmarshalErr = storage.UnmarshalApplicant(val)
		return unmarshalErr
	})
	return applicant, err
}
