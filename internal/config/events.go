package config

// ChangeKind identifies one discrete configuration change. The core
// consumes these instead of re-diffing snapshots itself.
type ChangeKind int

const (
	// SchemaChanged fires when the active schema id changes.
	SchemaChanged ChangeKind = iota + 1
	// ColorSchemeToggled fires when color-scheme support is enabled,
	// disabled, or pointed at a different palette name.
	ColorSchemeToggled
	// MaxCandidatesChanged fires when the candidate page size changes.
	MaxCandidatesChanged
	// OverrideUserDataSet fires when the one-shot override flag flips.
	OverrideUserDataSet
)

// Change is one discrete configuration change event. Config is the
// snapshot that is now current.
type Change struct {
	Kind   ChangeKind
	Config *Config
}

// diff computes the discrete change events between two snapshots.
func diff(old, next *Config) []Change {
	if old == nil || next == nil {
		return nil
	}
	var changes []Change
	if old.Schema.ActiveID != next.Schema.ActiveID {
		changes = append(changes, Change{Kind: SchemaChanged, Config: next})
	}
	if old.ColorScheme.Enabled != next.ColorScheme.Enabled ||
		old.ColorScheme.Name != next.ColorScheme.Name {
		changes = append(changes, Change{Kind: ColorSchemeToggled, Config: next})
	}
	if old.Candidates.PageSize != next.Candidates.PageSize {
		changes = append(changes, Change{Kind: MaxCandidatesChanged, Config: next})
	}
	if old.Deployment.OverrideUserData != next.Deployment.OverrideUserData {
		changes = append(changes, Change{Kind: OverrideUserDataSet, Config: next})
	}
	return changes
}
