package ai

import "errors"

// ErrMalformedEmbedding indicates the embedding service returned a vector
// that cannot be used for scoring: no vector at all, or a width other than
// the configured EmbeddingDimension.
var ErrMalformedEmbedding = errors.New("malformed embedding")
