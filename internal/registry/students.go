// Package registry holds the in-process student directory. Profiles live
// only for the lifetime of the process; the images backing them persist on
// disk through the template store.
package registry

import (
	"sync"

	"github.com/eduface-labs/eduface/internal/domain"
)

// StudentRegistry is a concurrency-safe map of enrolled students. It is
// injected into the services that need it rather than living as package
// state. Mutations to one student are serialized through per-identity
// locks; reads hand out snapshots so verification can run concurrently
// with enrollment of other students.
type StudentRegistry struct {
	mu       sync.RWMutex
	students map[string]*domain.Student
	locks    map[string]*sync.Mutex
}

func NewStudentRegistry() *StudentRegistry {
	return &StudentRegistry{
		students: make(map[string]*domain.Student),
		locks:    make(map[string]*sync.Mutex),
	}
}

// LockStudent acquires the mutation lock for one identity and returns the
// release func. Enrollment holds it across the replace of both the profile
// and the on-disk images so concurrent enrolls of the same student cannot
// interleave.
func (r *StudentRegistry) LockStudent(id string) func() {
	r.mu.Lock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Put replaces the stored profile for the student's id. Replace, not
// merge: a re-enrollment discards the previous profile entirely.
func (r *StudentRegistry) Put(s *domain.Student) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students[s.ID] = s
}

// Get returns a snapshot of a student's profile. Mutating the returned
// value does not affect the registry.
func (r *StudentRegistry) Get(id string) (*domain.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	if !ok {
		return nil, false
	}

	snapshot := *s
	snapshot.FacePaths = append([]string(nil), s.FacePaths...)
	return &snapshot, true
}

// Count reports how many students are enrolled.
func (r *StudentRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}
