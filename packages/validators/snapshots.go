package validators

import (
	"github.com/abdul-hamid-achik/affirm/packages/failure"
	"github.com/abdul-hamid-achik/affirm/packages/snapshot"
)

// AssertMatchesSnapshot compares actual with the snapshot stored under key in
// suite. Missing snapshots fail unless the manager is in update mode.
func AssertMatchesSnapshot(info failure.Info, m *snapshot.Manager, suite, key string, actual any) error {
	if m == nil {
		return failure.IllegalArgument("manager", "The snapshot manager should not be null")
	}

	result := m.Compare(suite, key, actual)
	switch result.Status {
	case snapshot.Matched, snapshot.Created, snapshot.Updated:
		return nil
	case snapshot.Missing:
		return failure.Fail(info, failure.SnapshotUnavailable(result.Key,
			"snapshot does not exist in "+result.File+" (set AFFIRM_UPDATE_SNAPSHOTS=1 to create it)"))
	case snapshot.Mismatched:
		return failure.Fail(info, failure.ShouldMatchSnapshot(result.Actual, result.Key, result.Expected))
	}
	return failure.Fail(info, failure.SnapshotUnavailable(result.Key, result.Err.Error()))
}
