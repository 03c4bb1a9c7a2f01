package presets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateUnhandled(t *testing.T) {
	input := "" +
		"    UNHANDLED_COUNTRY(C, A)\n" +
		"    UNHANDLED_COUNTRY(P, R)\n" +
		"    END_UNHANDLED_COUNTRIES(U, S)\n"

	result, err := AggregateUnhandled(input)
	require.NoError(t, err)

	expected := []Fallback{
		{Code: "CA", Target: "US"},
		{Code: "PR", Target: "US"},
	}
	if diff := cmp.Diff(expected, result.Fallbacks); diff != "" {
		t.Errorf("Fallbacks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, result.Blocks)
	assert.Empty(t, result.Dangling)
}

func TestAggregateUnhandledBlocksDoNotLeak(t *testing.T) {
	input := "" +
		"    UNHANDLED_COUNTRY(C, A)\n" +
		"    END_UNHANDLED_COUNTRIES(U, S)\n" +
		"\n" +
		"    UNHANDLED_COUNTRY(A, T)\n" +
		"    UNHANDLED_COUNTRY(L, I)\n" +
		"    END_UNHANDLED_COUNTRIES(D, E)\n"

	result, err := AggregateUnhandled(input)
	require.NoError(t, err)

	expected := []Fallback{
		{Code: "CA", Target: "US"},
		{Code: "AT", Target: "DE"},
		{Code: "LI", Target: "DE"},
	}
	if diff := cmp.Diff(expected, result.Fallbacks); diff != "" {
		t.Errorf("Fallbacks mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, result.Blocks)
}

func TestAggregateUnhandledIgnoredLines(t *testing.T) {
	input := "" +
		// Wrong indentation is not a directive.
		"     UNHANDLED_COUNTRY(X, X)\n" +
		"UNHANDLED_COUNTRY(Y, Y)\n" +
		"\tUNHANDLED_COUNTRY(Z, Z)\n" +
		"    // UNHANDLED_COUNTRY(Q, Q)\n" +
		"    UNHANDLED_COUNTRY(C, A)\n" +
		"    END_UNHANDLED_COUNTRIES(U, S)\n"

	result, err := AggregateUnhandled(input)
	require.NoError(t, err)
	assert.Equal(t, []Fallback{{Code: "CA", Target: "US"}}, result.Fallbacks)
}

func TestAggregateUnhandledEdgeCases(t *testing.T) {
	t.Run("terminator without codes", func(t *testing.T) {
		result, err := AggregateUnhandled("    END_UNHANDLED_COUNTRIES(U, S)\n")
		require.NoError(t, err)
		assert.Empty(t, result.Fallbacks)
		assert.Equal(t, 1, result.Blocks)
	})

	t.Run("dangling codes", func(t *testing.T) {
		input := "" +
			"    UNHANDLED_COUNTRY(C, A)\n" +
			"    END_UNHANDLED_COUNTRIES(U, S)\n" +
			"    UNHANDLED_COUNTRY(M, X)\n"
		result, err := AggregateUnhandled(input)
		require.NoError(t, err)
		assert.Equal(t, []Fallback{{Code: "CA", Target: "US"}}, result.Fallbacks)
		assert.Equal(t, []string{"MX"}, result.Dangling)
	})

	t.Run("empty input", func(t *testing.T) {
		result, err := AggregateUnhandled("")
		require.NoError(t, err)
		assert.NotNil(t, result.Fallbacks)
		assert.Empty(t, result.Fallbacks)
		assert.Zero(t, result.Blocks)
	})

	t.Run("carriage returns tolerated", func(t *testing.T) {
		input := "    UNHANDLED_COUNTRY(C, A)\r\n    END_UNHANDLED_COUNTRIES(U, S)\r\n"
		result, err := AggregateUnhandled(input)
		require.NoError(t, err)
		assert.Equal(t, []Fallback{{Code: "CA", Target: "US"}}, result.Fallbacks)
	})
}

func TestAggregateUnhandledGrammarMismatch(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		line      int
		directive string
	}{
		{
			name:      "unhandled without arguments",
			input:     "    UNHANDLED_COUNTRY\n",
			line:      1,
			directive: "UNHANDLED_COUNTRY",
		},
		{
			name:      "unhandled missing space",
			input:     "\n    UNHANDLED_COUNTRY(C,A)\n",
			line:      2,
			directive: "UNHANDLED_COUNTRY",
		},
		{
			name:      "terminator malformed",
			input:     "    UNHANDLED_COUNTRY(C, A)\n    END_UNHANDLED_COUNTRIES(US)\n",
			line:      2,
			directive: "END_UNHANDLED_COUNTRIES",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := AggregateUnhandled(tc.input)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, ErrGrammarMismatch))

			var gm *GrammarMismatchError
			require.True(t, errors.As(err, &gm))
			assert.Equal(t, tc.line, gm.Line)
			assert.Equal(t, tc.directive, gm.Directive)
		})
	}
}
