package config

// dataSuffix is appended by code generators to a feed or fetch name to form
// the symbol of its data member, so `x` and `x_data` must not coexist.
const dataSuffix = "_data"

// namedTensor is the view of a Feed or Fetch that validation needs.
type namedTensor struct {
	id   TensorID
	name string
}

// key returns the name used for collision detection and whether it was
// given explicitly.
func (t namedTensor) key() (string, bool) {
	if t.name != "" {
		return t.name, true
	}
	return t.id.String(), false
}

// Validate checks that cfg is well-formed: at least one feed and one fetch,
// valid tensor ids, and no duplicate or conflicting names. Feeds are checked
// completely before fetches. The first problem found is returned as a
// *ValidationError.
func Validate(cfg *Config) error {
	if cfg == nil || len(cfg.Feeds) == 0 || len(cfg.Fetches) == 0 {
		return invalidf(ErrEmptySpecification, "feeds and fetches must be specified")
	}

	feeds := make([]namedTensor, len(cfg.Feeds))
	for i, f := range cfg.Feeds {
		feeds[i] = namedTensor{id: f.ID, name: f.Name}
	}
	if err := validateGroup("feed", feeds); err != nil {
		return err
	}

	fetches := make([]namedTensor, len(cfg.Fetches))
	for i, f := range cfg.Fetches {
		fetches[i] = namedTensor{id: f.ID, name: f.Name}
	}
	return validateGroup("fetch", fetches)
}

func validateTensorID(kind string, pos int, id TensorID) error {
	if id.NodeName == "" {
		return invalidf(ErrInvalidNodeName, "invalid %s[%d] id: node_name must be non-empty", kind, pos)
	}
	if id.OutputIndex < 0 {
		return invalidf(ErrInvalidOutputIndex, "invalid %s[%d] id %s: output_index must be positive", kind, pos, id)
	}
	return nil
}

// validateGroup runs the per-entry and naming checks over all feeds or all
// fetches. kind is "feed" or "fetch".
func validateGroup(kind string, entries []namedTensor) error {
	// explicit records, per key, whether the key came from a user-chosen name.
	explicit := make(map[string]bool, len(entries))
	order := make([]string, 0, len(entries))

	for i, e := range entries {
		if err := validateTensorID(kind, i, e.id); err != nil {
			return err
		}

		key, isExplicit := e.key()
		if prevExplicit, seen := explicit[key]; seen {
			if prevExplicit == isExplicit {
				return invalidf(ErrDuplicateName, "duplicate %s name: %s", kind, key)
			}
			return invalidf(ErrConflictingName, "conflicting %s name: %s is used both as a name and as a tensor id", kind, key)
		}
		explicit[key] = isExplicit
		order = append(order, key)
	}

	for _, name := range order {
		suffixed := name + dataSuffix
		if _, ok := explicit[suffixed]; ok {
			return invalidf(ErrConflictingName, "conflicting %s name: %s and %s", kind, name, suffixed)
		}
	}
	return nil
}
