// Copyright 2025 ScholarMatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the stored record types. Field order is the wire
// format and must not change. Optional bounds are encoded as an explicit
// presence flag followed by the value; timestamps are encoded as Unix
// microseconds.
var (
	IDMUS                = idMUS{}
	ApplicantProfileMUS  = applicantProfileMUS{}
	ScholarshipRecordMUS = scholarshipRecordMUS{}
	ApplicationMUS       = applicationMUS{}
	FeedbackMUS          = feedbackMUS{}
)

var (
	_ mus.Serializer[ID]                = IDMUS
	_ mus.Serializer[ApplicantProfile]  = ApplicantProfileMUS
	_ mus.Serializer[ScholarshipRecord] = ScholarshipRecordMUS
	_ mus.Serializer[Application]       = ApplicationMUS
	_ mus.Serializer[Feedback]          = FeedbackMUS
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type applicantProfileMUS struct{}

func (applicantProfileMUS) Marshal(a ApplicantProfile, bs []byte) (n int) {
	n = IDMUS.Marshal(a.Id, bs)
	n += ord.String.Marshal(a.Email, bs[n:])
	n += ord.String.Marshal(a.PasswordHash, bs[n:])
	n += ord.String.Marshal(a.Name, bs[n:])
	n += varint.Int.Marshal(a.Age, bs[n:])
	n += ord.String.Marshal(a.Country, bs[n:])
	n += ord.String.Marshal(a.EducationLevel, bs[n:])
	n += raw.Float64.Marshal(a.GPA, bs[n:])
	n += ord.String.Marshal(a.FieldOfStudy, bs[n:])
	n += ord.Bool.Marshal(a.FinancialNeed, bs[n:])
	n += ord.String.Marshal(a.PhoneNumber, bs[n:])
	n += marshalTime(a.InsertedAt, bs[n:])
	n += marshalTime(a.UpdatedAt, bs[n:])
	return
}

func (applicantProfileMUS) Unmarshal(bs []byte) (a ApplicantProfile, n int, err error) {
	var m int
	if a.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if a.Email, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.PasswordHash, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.Name, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.Age, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.Country, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.EducationLevel, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.GPA, m, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.FieldOfStudy, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.FinancialNeed, m, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.PhoneNumber, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	return
}

func (applicantProfileMUS) Size(a ApplicantProfile) (size int) {
	size = IDMUS.Size(a.Id)
	size += ord.String.Size(a.Email)
	size += ord.String.Size(a.PasswordHash)
	size += ord.String.Size(a.Name)
	size += varint.Int.Size(a.Age)
	size += ord.String.Size(a.Country)
	size += ord.String.Size(a.EducationLevel)
	size += raw.Float64.Size(a.GPA)
	size += ord.String.Size(a.FieldOfStudy)
	size += ord.Bool.Size(a.FinancialNeed)
	size += ord.String.Size(a.PhoneNumber)
	size += sizeTime(a.InsertedAt)
	size += sizeTime(a.UpdatedAt)
	return
}

func (s applicantProfileMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type scholarshipRecordMUS struct{}

func (scholarshipRecordMUS) Marshal(r ScholarshipRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.Name, bs[n:])
	n += ord.String.Marshal(r.Description, bs[n:])
	n += ord.String.Marshal(r.Requirements, bs[n:])
	n += ord.String.Marshal(r.FieldOfStudy, bs[n:])
	n += ord.String.Marshal(r.Country, bs[n:])
	n += ord.String.Marshal(r.EducationLevel, bs[n:])
	n += marshalFloat64Ptr(r.MinGPA, bs[n:])
	n += marshalIntPtr(r.MinAge, bs[n:])
	n += marshalIntPtr(r.MaxAge, bs[n:])
	n += raw.Float64.Marshal(r.Amount, bs[n:])
	n += ord.String.Marshal(r.Deadline, bs[n:])
	n += ord.String.Marshal(r.ApplicationURL, bs[n:])
	n += marshalTime(r.InsertedAt, bs[n:])
	n += marshalTime(r.UpdatedAt, bs[n:])
	return
}

func (scholarshipRecordMUS) Unmarshal(bs []byte) (r ScholarshipRecord, n int, err error) {
	var m int
	if r.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if r.Name, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.Description, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.Requirements, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.FieldOfStudy, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.Country, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.EducationLevel, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.MinGPA, m, err = unmarshalFloat64Ptr(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.MinAge, m, err = unmarshalIntPtr(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.MaxAge, m, err = unmarshalIntPtr(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.Amount, m, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.Deadline, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.ApplicationURL, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	if r.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return r, n + m, err
	}
	n += m
	return
}

func (scholarshipRecordMUS) Size(r ScholarshipRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.Name)
	size += ord.String.Size(r.Description)
	size += ord.String.Size(r.Requirements)
	size += ord.String.Size(r.FieldOfStudy)
	size += ord.String.Size(r.Country)
	size += ord.String.Size(r.EducationLevel)
	size += sizeFloat64Ptr(r.MinGPA)
	size += sizeIntPtr(r.MinAge)
	size += sizeIntPtr(r.MaxAge)
	size += raw.Float64.Size(r.Amount)
	size += ord.String.Size(r.Deadline)
	size += ord.String.Size(r.ApplicationURL)
	size += sizeTime(r.InsertedAt)
	size += sizeTime(r.UpdatedAt)
	return
}

func (s scholarshipRecordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type applicationMUS struct{}

func (applicationMUS) Marshal(a Application, bs []byte) (n int) {
	n = IDMUS.Marshal(a.Id, bs)
	n += IDMUS.Marshal(a.ApplicantId, bs[n:])
	n += IDMUS.Marshal(a.ScholarshipId, bs[n:])
	n += ord.String.Marshal(a.Status, bs[n:])
	n += marshalTime(a.AppliedAt, bs[n:])
	return
}

func (applicationMUS) Unmarshal(bs []byte) (a Application, n int, err error) {
	var m int
	if a.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if a.ApplicantId, m, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.ScholarshipId, m, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.Status, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	if a.AppliedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return a, n + m, err
	}
	n += m
	return
}

func (applicationMUS) Size(a Application) (size int) {
	size = IDMUS.Size(a.Id)
	size += IDMUS.Size(a.ApplicantId)
	size += IDMUS.Size(a.ScholarshipId)
	size += ord.String.Size(a.Status)
	size += sizeTime(a.AppliedAt)
	return
}

func (s applicationMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type feedbackMUS struct{}

func (feedbackMUS) Marshal(f Feedback, bs []byte) (n int) {
	n = IDMUS.Marshal(f.Id, bs)
	n += IDMUS.Marshal(f.ApplicantId, bs[n:])
	n += IDMUS.Marshal(f.ScholarshipId, bs[n:])
	n += varint.Int.Marshal(int(f.Kind), bs[n:])
	n += marshalTime(f.CreatedAt, bs[n:])
	return
}

func (feedbackMUS) Unmarshal(bs []byte) (f Feedback, n int, err error) {
	var m int
	if f.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if f.ApplicantId, m, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return f, n + m, err
	}
	n += m
	if f.ScholarshipId, m, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return f, n + m, err
	}
	n += m
	var kind int
	if kind, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return f, n + m, err
	}
	n += m
	f.Kind = FeedbackKind(kind)
	if f.CreatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return f, n + m, err
	}
	n += m
	return
}

func (feedbackMUS) Size(f Feedback) (size int) {
	size = IDMUS.Size(f.Id)
	size += IDMUS.Size(f.ApplicantId)
	size += IDMUS.Size(f.ScholarshipId)
	size += varint.Int.Size(int(f.Kind))
	size += sizeTime(f.CreatedAt)
	return
}

func (s feedbackMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func marshalFloat64Ptr(p *float64, bs []byte) (n int) {
	n = ord.Bool.Marshal(p != nil, bs)
	if p != nil {
		n += raw.Float64.Marshal(*p, bs[n:])
	}
	return
}

func unmarshalFloat64Ptr(bs []byte) (*float64, int, error) {
	set, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !set {
		return nil, n, err
	}
	v, m, err := raw.Float64.Unmarshal(bs[n:])
	if err != nil {
		return nil, n + m, err
	}
	return &v, n + m, nil
}

func sizeFloat64Ptr(p *float64) (size int) {
	size = ord.Bool.Size(p != nil)
	if p != nil {
		size += raw.Float64.Size(*p)
	}
	return
}

func marshalIntPtr(p *int, bs []byte) (n int) {
	n = ord.Bool.Marshal(p != nil, bs)
	if p != nil {
		n += varint.Int.Marshal(*p, bs[n:])
	}
	return
}

func unmarshalIntPtr(bs []byte) (*int, int, error) {
	set, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !set {
		return nil, n, err
	}
	v, m, err := varint.Int.Unmarshal(bs[n:])
	if err != nil {
		return nil, n + m, err
	}
	return &v, n + m, nil
}

func sizeIntPtr(p *int) (size int) {
	size = ord.Bool.Size(p != nil)
	if p != nil {
		size += varint.Int.Size(*p)
	}
	return
}
