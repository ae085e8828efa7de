package usecase

import (
	"strings"

	"cseboard/internal/customer"
)

// invalidate drops the cached Record for org after a write and bumps its
// write generation so reads already in flight do not cache what they saw.
func (uc *implUseCase) invalidate(org string) {
	if uc.cache == nil {
		return
	}
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	uc.writeGen[org]++
	uc.cache.Remove(org)
}

// generation returns the current write generation of org.
func (uc *implUseCase) generation(org string) uint64 {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	return uc.writeGen[org]
}

// fill caches rec unless org was written since gen was taken.
func (uc *implUseCase) fill(org string, gen uint64, rec customer.Record) {
	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()
	if uc.writeGen[org] != gen {
		return
	}
	uc.cache.Add(org, rec)
}

func columnNames(cols []customer.Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
