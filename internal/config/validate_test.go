package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(node string, index int, name string) Feed {
	return Feed{ID: TensorID{NodeName: node, OutputIndex: index}, Name: name}
}

func fetch(node string, index int, name string) Fetch {
	return Fetch{ID: TensorID{NodeName: node, OutputIndex: index}, Name: name}
}

func TestValidate_Good(t *testing.T) {
	cfg := &Config{
		Feeds:   []Feed{feed("foo", 123, "foo_debug"), feed("bar", 0, "")},
		Fetches: []Fetch{fetch("baz", 456, "baz_debug"), fetch("banana", 0, "")},
	}
	require.NoError(t, Validate(cfg))
}

func TestValidate_GoodSameNodeDifferentOutputs(t *testing.T) {
	cfg := &Config{
		Feeds:   []Feed{feed("foo", 0, ""), feed("foo", 1, "")},
		Fetches: []Fetch{fetch("foo", 0, "")},
	}
	require.NoError(t, Validate(cfg), "feeds and fetches live in separate namespaces")
}

func TestValidate_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         *Config
		expectedErr error
		contains    string
	}{
		{
			name:        "nil config",
			cfg:         nil,
			expectedErr: ErrEmptySpecification,
			contains:    "feeds and fetches must be specified",
		},
		{
			name:        "empty",
			cfg:         &Config{},
			expectedErr: ErrEmptySpecification,
			contains:    "feeds and fetches must be specified",
		},
		{
			name:        "no feed",
			cfg:         &Config{Fetches: []Fetch{fetch("foo", 0, "")}},
			expectedErr: ErrEmptySpecification,
			contains:    "feeds and fetches must be specified",
		},
		{
			name:        "no fetch",
			cfg:         &Config{Feeds: []Feed{feed("foo", 0, "")}},
			expectedErr: ErrEmptySpecification,
			contains:    "feeds and fetches must be specified",
		},
		{
			name: "feed node name",
			cfg: &Config{
				Feeds:   []Feed{{}},
				Fetches: []Fetch{fetch("foo", 0, "")},
			},
			expectedErr: ErrInvalidNodeName,
			contains:    "node_name must be non-empty",
		},
		{
			name: "feed output index",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", -1, "")},
				Fetches: []Fetch{fetch("bar", 0, "")},
			},
			expectedErr: ErrInvalidOutputIndex,
			contains:    "output_index must be positive",
		},
		{
			name: "fetch node name",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, "")},
				Fetches: []Fetch{{}},
			},
			expectedErr: ErrInvalidNodeName,
			contains:    "invalid fetch[0] id: node_name must be non-empty",
		},
		{
			name: "fetch output index",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, "")},
				Fetches: []Fetch{fetch("bar", -1, "")},
			},
			expectedErr: ErrInvalidOutputIndex,
			contains:    "invalid fetch[0] id bar:-1: output_index must be positive",
		},
		{
			name: "duplicate feed name",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, "dup"), feed("bar", 0, "dup")},
				Fetches: []Fetch{fetch("baz", 0, "")},
			},
			expectedErr: ErrDuplicateName,
			contains:    "duplicate feed name: dup",
		},
		{
			name: "duplicate unnamed feed id",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 2, ""), feed("foo", 2, "")},
				Fetches: []Fetch{fetch("baz", 0, "")},
			},
			expectedErr: ErrDuplicateName,
			contains:    "duplicate feed name: foo:2",
		},
		{
			name: "duplicate fetch name",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, "")},
				Fetches: []Fetch{fetch("bar", 0, "dup"), fetch("baz", 0, "dup")},
			},
			expectedErr: ErrDuplicateName,
			contains:    "duplicate fetch name: dup",
		},
		{
			name: "duplicate unnamed fetch id",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, "")},
				Fetches: []Fetch{fetch("bar", 0, ""), fetch("bar", 0, "")},
			},
			expectedErr: ErrDuplicateName,
			contains:    "duplicate fetch name: bar:0",
		},
		{
			name: "conflicting feed name",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, "conflict"), feed("bar", 0, "conflict_data")},
				Fetches: []Fetch{fetch("baz", 0, "")},
			},
			expectedErr: ErrConflictingName,
			contains:    "conflicting feed name: conflict and conflict_data",
		},
		{
			name: "conflicting feed name reversed order",
			cfg: &Config{
				Feeds:   []Feed{feed("bar", 0, "conflict_data"), feed("foo", 0, "conflict")},
				Fetches: []Fetch{fetch("baz", 0, "")},
			},
			expectedErr: ErrConflictingName,
			contains:    "conflicting feed name: conflict and conflict_data",
		},
		{
			name: "conflicting fetch name",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, "")},
				Fetches: []Fetch{fetch("bar", 0, "conflict"), fetch("baz", 0, "conflict_data")},
			},
			expectedErr: ErrConflictingName,
			contains:    "conflicting fetch name",
		},
		{
			name: "explicit name equal to derived id",
			cfg: &Config{
				Feeds:   []Feed{feed("foo", 0, ""), feed("bar", 0, "foo:0")},
				Fetches: []Fetch{fetch("baz", 0, "")},
			},
			expectedErr: ErrConflictingName,
			contains:    "conflicting feed name: foo:0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorContains(t, err, tc.contains)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.expectedErr, vErr.Kind)
		})
	}
}

func TestValidate_FeedsBeforeFetches(t *testing.T) {
	t.Run("bad fetch shape does not mask feed duplicate", func(t *testing.T) {
		cfg := &Config{
			Feeds:   []Feed{feed("a", 0, "dup"), feed("b", 0, "dup")},
			Fetches: []Fetch{{}},
		}
		assert.ErrorIs(t, Validate(cfg), ErrDuplicateName)
	})

	t.Run("bad feed shape reported before bad fetch shape", func(t *testing.T) {
		cfg := &Config{
			Feeds:   []Feed{feed("a", -1, "")},
			Fetches: []Fetch{{}},
		}
		assert.ErrorIs(t, Validate(cfg), ErrInvalidOutputIndex)
	})

	t.Run("first bad feed wins", func(t *testing.T) {
		cfg := &Config{
			Feeds:   []Feed{feed("a", 0, ""), {}, feed("c", -1, "")},
			Fetches: []Fetch{fetch("d", 0, "")},
		}
		err := Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidNodeName)
		assert.ErrorContains(t, err, "feed[1]")
	})
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := &Config{
		Feeds:   []Feed{feed("foo", 0, "")},
		Fetches: []Fetch{fetch("bar", 1, "")},
	}
	before := &Config{
		Feeds:   append([]Feed(nil), cfg.Feeds...),
		Fetches: append([]Fetch(nil), cfg.Fetches...),
	}
	require.NoError(t, Validate(cfg))
	assert.Equal(t, before, cfg)
}

func TestConfig_Helpers(t *testing.T) {
	cfg := &Config{
		Feeds:   []Feed{feed("x", 0, ""), feed("x", 1, "alias")},
		Fetches: []Fetch{fetch("y", 0, ""), fetch("z", 2, "")},
	}

	assert.Equal(t, []string{"y", "z"}, cfg.FetchNodeNames())
	assert.Equal(t, map[TensorID]struct{}{
		{NodeName: "x", OutputIndex: 0}: {},
		{NodeName: "x", OutputIndex: 1}: {},
	}, cfg.FedTensors())
	assert.Equal(t, "z:2", cfg.Fetches[1].ID.String())
}
