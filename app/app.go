// Package app contains the catalog services. Each service owns one
// collection and serialises its read-modify-write cycle with a mutex; the
// store itself is last-writer-wins across processes.
package app

import (
	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/ports"
)

type nopMetrics struct{}

func (nopMetrics) Mutation(string, string)          {}
func (nopMetrics) ValidationFailure(string, string) {}
func (nopMetrics) StalePlanReference()              {}
func (nopMetrics) Login(string)                     {}

func metricsOrNop(m ports.CatalogMetrics) ports.CatalogMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}

// countValidation reports each rejected field of a ValidationError.
func countValidation(m ports.CatalogMetrics, collection string, err error) {
	if ve, ok := fault.AsValidation(err); ok {
		for _, f := range ve.Fields {
			m.ValidationFailure(collection, f.Field)
		}
	}
}
