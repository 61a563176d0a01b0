package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/scholarmatch/scholarmatch/core"
	"github.com/scholarmatch/scholarmatch/storage"
)

// FeedbackRepository implements storage.FeedbackRepository for BadgerDB.
type FeedbackRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.FeedbackRepository = (*FeedbackRepository)(nil)

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(backend *Backend) (*FeedbackRepository, error) {
	idSeq, err := backend.GetSequence(feedbackIDSeq)
	if err != nil {
		return nil, err
	}

	return &FeedbackRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *FeedbackRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *FeedbackRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddFeedback records an applicant's reaction to a suggested scholarship.
func (r *FeedbackRepository) AddFeedback(ctx context.Context, feedback *core.Feedback) (*core.Feedback, error) {
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
		feedback.Id = core.ID(nextID)

		if feedback.CreatedAt.IsZero() {
			feedback.CreatedAt = time.Now().UTC()
		}

		// Store primary record
		key := makeFeedbackKey(feedback.Id)
		value := storage.MarshalFeedback(feedback)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Store applicant index
		indexKey := makeFeedbackByApplicantKey(feedback.ApplicantId, feedback.Id)
		if err := tx.Set(indexKey, storage.MarshalID(feedback.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	return feedback, err
}

// GetFeedbackByApplicant retrieves all feedback submitted by an applicant.
func (r *FeedbackRepository) GetFeedbackByApplicant(ctx context.Context, applicantID core.ID) ([]*core.Feedback, error) {
	var results []*core.Feedback
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialFeedbackByApplicantKey(applicantID)
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

			// Read the feedback ID from the index
			var feedbackID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				feedbackID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			feedback, err := readFeedback(tx, makeFeedbackKey(feedbackID))
			if err != nil {
				return err
			}
			if feedback != nil {
				results = append(results, feedback)
			}
		}
		return nil
	}, false)

	return results, err
}

// readFeedback reads a feedback record from the transaction.
func readFeedback(tx *badger.Txn, key []byte) (*core.Feedback, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var feedback *core.Feedback
	err = item.Value(func(val []byte) error {
		var err error
		feedback, err = storage.UnmarshalFeedback(val)
		return err
	})
	return feedback, err
}
