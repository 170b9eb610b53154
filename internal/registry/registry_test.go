package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_ResolveReturnsRegisteredURL(t *testing.T) {
	r := New("https://docs.oracle.com/javase/8/docs/api/")
	r.Register(External, "slf4j-api", "http://www.slf4j.org/api/")

	url, ok := r.Resolve(External, "slf4j-api")
	require.True(t, ok)
	require.Equal(t, "http://www.slf4j.org/api/", url)
}

func TestRegister_LastWriteWins(t *testing.T) {
	r := New("")
	r.Register(External, "config", "http://old.example.com/")
	r.Register(External, "config", "http://new.example.com/")

	url, ok := r.Resolve(External, "config")
	require.True(t, ok)
	require.Equal(t, "http://new.example.com/", url)
}

func TestResolve_UnknownNameIsAbsentNotError(t *testing.T) {
	r := New("")
	_, ok := r.Resolve(External, "nope")
	require.False(t, ok)
}

func TestRegister_SetsAreIndependent(t *testing.T) {
	r := New("")
	r.Register(External, "lib", "http://external.example.com/")
	r.Register(Source, "lib", "http://source.example.com/")

	ext, _ := r.Resolve(External, "lib")
	src, _ := r.Resolve(Source, "lib")
	require.Equal(t, "http://external.example.com/", ext)
	require.Equal(t, "http://source.example.com/", src)
}

func TestBaseURLs_IncludesPlatformAndCollapsesDuplicates(t *testing.T) {
	r := New("http://platform.example.com/api/")
	r.Register(External, "a", "http://shared.example.com/")
	r.Register(Source, "b", "http://shared.example.com/")
	r.Register(Source, "c", "http://c.example.com/")

	urls := r.BaseURLs()
	require.Len(t, urls, 3)
	require.Contains(t, urls, "http://platform.example.com/api/")
	require.Contains(t, urls, "http://shared.example.com/")
	require.Contains(t, urls, "http://c.example.com/")
}

func TestEntries_ReturnsCopy(t *testing.T) {
	r := New("")
	r.Register(External, "a", "http://a.example.com/")

	entries := r.Entries(External)
	entries["a"] = "mutated"

	url, _ := r.Resolve(External, "a")
	require.Equal(t, "http://a.example.com/", url)
}
