// SPDX-License-Identifier: EPL-2.0

package audio

import "sync"

// Tag is a single key/value pair read from a container.
type Tag struct {
	Key   string
	Value string
}

// Revision is one set of tags. Containers may publish new revisions while
// they are being read (e.g. chained Ogg streams).
type Revision struct {
	Vendor string
	Tags   []Tag
}

// MetadataLog is a FIFO of revisions. The head is the current revision;
// the log is up to date once only the newest revision is left.
type MetadataLog struct {
	revs []Revision

	mtx *sync.Mutex
}

func NewMetadataLog() *MetadataLog {
	return &MetadataLog{
		mtx: &sync.Mutex{},
	}
}

// Push appends rev as the newest revision.
func (m *MetadataLog) Push(rev Revision) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.revs = append(m.revs, rev)
}

// IsLatest reports whether the head is the newest revision (or the log is empty).
func (m *MetadataLog) IsLatest() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return len(m.revs) <= 1
}

// Pop removes the head, unless it is the newest revision.
func (m *MetadataLog) Pop() (Revision, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if len(m.revs) <= 1 {
		return Revision{}, false
	}

	rev := m.revs[0]
	m.revs = m.revs[1:]

	return rev, true
}

// Current returns the head revision.
func (m *MetadataLog) Current() (Revision, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if len(m.revs) == 0 {
		return Revision{}, false
	}

	return m.revs[0], true
}

// Len is the number of revisions in the log.
func (m *MetadataLog) Len() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return len(m.revs)
}
