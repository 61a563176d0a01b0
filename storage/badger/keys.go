package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/scholarmatch/scholarmatch/core"
)

// Key prefixes for different data types
const (
	applicantPrefix      = "aplrec"
	applicantEmailPrefix = "apleml"
	applicantIDSeq       = "aplrecseq"
	scholarshipPrefix    = "schrec"
	applicationPrefix    = "apprec"
	applicationByPrefix  = "apprecb"
	applicationIDSeq     = "apprecseq"
	feedbackPrefix       = "fbkrec"
	feedbackByPrefix     = "fbkrecb"
	feedbackIDSeq        = "fbkrecseq"
)

// makeApplicantKey generates a key for an applicant profile by ID.
func makeApplicantKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", applicantPrefix, id))
}

// makeApplicantEmailKey generates a key for the email index.
// Format: prefix:email
func makeApplicantEmailKey(email string) []byte {
	return []byte(applicantEmailPrefix + ":" + email)
}

// makeScholarshipKey generates a key for a scholarship by ID.
func makeScholarshipKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", scholarshipPrefix, id))
}

// makeApplicationKey generates a key for an application by ID.
func makeApplicationKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", applicationPrefix, id))
}

// makeApplicationByApplicantKey generates a composite key for the
// applications-by-applicant index.
// Format: prefix:applicantID:applicationID
func makeApplicationByApplicantKey(applicantID, applicationID core.ID) []byte {
	return makeCompositeKey(applicationByPrefix, applicantID, applicationID)
}

// makePartialApplicationByApplicantKey generates a partial key for
// per-applicant application queries.
func makePartialApplicationByApplicantKey(applicantID core.ID) []byte {
	return makePartialCompositeKey(applicationByPrefix, applicantID)
}

// makeFeedbackKey generates a key for a feedback record by ID.
func makeFeedbackKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", feedbackPrefix, id))
}

// makeFeedbackByApplicantKey generates a composite key for the
// feedback-by-applicant index.
// Format: prefix:applicantID:feedbackID
func makeFeedbackByApplicantKey(applicantID, feedbackID core.ID) []byte {
	return makeCompositeKey(feedbackByPrefix, applicantID, feedbackID)
}

// makePartialFeedbackByApplicantKey generates a partial key for per-applicant
// feedback queries.
func makePartialFeedbackByApplicantKey(applicantID core.ID) []byte {
	return makePartialCompositeKey(feedbackByPrefix, applicantID)
}

// makeCompositeKey builds prefix:ownerID:recordID with the IDs written in
// BigEndian order so lexicographic sort matches numeric order.
func makeCompositeKey(prefix string, ownerID, recordID core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(ownerID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(recordID))
	return buf
}

// makePartialCompositeKey builds prefix:ownerID for range scans over one
// owner's records.
func makePartialCompositeKey(prefix string, ownerID core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(ownerID))
	return buf
}
