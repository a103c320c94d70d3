package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		stdin      string
		expOutput  string
		isErrExp   bool
		isInputErr bool
	}{
		{
			name:      "interactive",
			args:      []string{},
			stdin:     "17\n20\n2\n",
			expOutput: "INCOME = 100.00 ",
		},
		{
			name:       "interactive with invalid hours",
			args:       []string{},
			stdin:      "16\n20\n2\n",
			isErrExp:   true,
			isInputErr: true,
		},
		{
			name:      "calc",
			args:      []string{"calc", "17", "20", "2"},
			expOutput: "INCOME = 100.00 ",
		},
		{
			name:      "calc with json",
			args:      []string{"calc", "--json", "18", "24", "4"},
			expOutput: `"offsets": {`,
		},
		{
			name:       "calc with non numeric hour",
			args:       []string{"calc", "17", "late", "2"},
			isErrExp:   true,
			isInputErr: true,
		},
		{
			name:       "calc with negative end hour",
			args:       []string{"calc", "17", "20", "-1"},
			isErrExp:   true,
			isInputErr: true,
		},
		{
			name:       "calc with negative start hour after separator",
			args:       []string{"calc", "--", "-1", "20", "2"},
			isErrExp:   true,
			isInputErr: true,
		},
		{
			name:      "calc with flag before hours",
			args:      []string{"calc", "--breakdown", "17", "20", "2"},
			expOutput: "Total:",
		},
		{
			name:     "calc with missing hours",
			args:     []string{"calc", "17"},
			isErrExp: true,
		},
		{
			name:      "rates",
			args:      []string{"rates"},
			expOutput: "after cutoff",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, out := newTestApp(t, tc.stdin)
			rootCmd := SetupCommands(app)
			rootCmd.SetArgs(tc.args)

			err := rootCmd.Execute()
			if !tc.isErrExp {
				require.NoError(t, err)
				assert.Contains(t, out.String(), tc.expOutput)
				return
			}

			require.Error(t, err)
			var inputErr *InvalidInputError
			assert.Equal(t, tc.isInputErr, errors.As(err, &inputErr))
		})
	}
}
