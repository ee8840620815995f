package domain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxload/internal/core/domain"
)

func TestBuildSession_RecordLookup(t *testing.T) {
	s := domain.NewBuildSession()

	_, ok := s.Lookup("Foo")
	assert.False(t, ok)

	s.Record("Foo", "compiled foo")
	s.Record("Bar", "compiled bar")

	text, ok := s.Lookup("Foo")
	require.True(t, ok)
	assert.Equal(t, "compiled foo", text)
	assert.Equal(t, []string{"Foo", "Bar"}, s.Names())
	assert.Equal(t, 2, s.Len())
}

func TestBuildSession_RecordOverwriteKeepsOrder(t *testing.T) {
	s := domain.NewBuildSession()
	s.Record("Foo", "v1")
	s.Record("Bar", "b")
	s.Record("Foo", "v2")

	text, _ := s.Lookup("Foo")
	assert.Equal(t, "v2", text)
	assert.Equal(t, []string{"Foo", "Bar"}, s.Names())
}

func TestBuildSession_Nil(t *testing.T) {
	var s *domain.BuildSession
	s.Record("Foo", "ignored")

	_, ok := s.Lookup("Foo")
	assert.False(t, ok)
	assert.Empty(t, s.Names())
	assert.Zero(t, s.Len())
}

func TestBuildSession_ConcurrentRecord(t *testing.T) {
	s := domain.NewBuildSession()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Go(func() {
			s.Record(name, "text "+name)
		})
	}
	wg.Wait()

	assert.Equal(t, len(names), s.Len())
	assert.ElementsMatch(t, names, s.Names())
}
