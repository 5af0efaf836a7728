package validators

import (
	"testing"

	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
	"github.com/stretchr/testify/assert"
)

func TestAssertMatchesSnapshot(t *testing.T) {
	info := failure.Info{}
	dir := t.TempDir()

	err := requireFailure(t, AssertMatchesSnapshot(info, snapshot.NewManager(dir, false), "TestUser", "get", map[string]any{"id": 1}))
	assert.Contains(t, err.Message, "snapshot does not exist")

	assert.NoError(t, AssertMatchesSnapshot(info, snapshot.NewManager(dir, true), "TestUser", "get", map[string]any{"id": 1}))

	verify := snapshot.NewManager(dir, false)
	assert.NoError(t, AssertMatchesSnapshot(info, verify, "TestUser", "get", map[string]any{"id": 1}))

	err = requireFailure(t, AssertMatchesSnapshot(info, verify, "TestUser", "get", map[string]any{"id": 2}))
	assert.Equal(t, failure.KindShouldMatchSnapshot, err.Kind)
	assert.Equal(t, "\nExpecting actual:\n  {\"id\"=2}\nto match snapshot \"get\":\n  {\"id\"=1}\n", err.Message)

	err = requireFailure(t, AssertMatchesSnapshot(info, verify, "TestUser", "chan", make(chan int)))
	assert.Contains(t, err.Message, "failed to encode actual value")

	requireIllegal(t, AssertMatchesSnapshot(info, nil, "TestUser", "get", 1), "The snapshot manager should not be null")
}
