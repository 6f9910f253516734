package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sabot.dev/pkg/sabot/internal/domain"
	domainmocks "sabot.dev/pkg/sabot/internal/domain/mocks"
	m "sabot.dev/pkg/sabot/internal/model"
)

// execMerge runs the merge command against a mocked workflow. A nil
// expect means no Merge call is expected at all.
func execMerge(t *testing.T, expect func(args domain.MergeArgs) bool, args ...string) error {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	if expect != nil {
		mockWorkflow.On("Merge", mock.Anything, mock.MatchedBy(expect)).Return(nil)
	}

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(newMergeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"merge"}, args...))

	return cmd.Execute()
}

func TestMergeCmd_Defaults(t *testing.T) {
	err := execMerge(t, func(args domain.MergeArgs) bool {
		return args.Reports == m.Path(".sabot-reports") && args.FailUnder == 0
	})
	require.NoError(t, err)
}

func TestMergeCmd_HonorsRootOutputFlag(t *testing.T) {
	err := execMerge(t, func(args domain.MergeArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	}, "--output", "./reports-dir")
	require.NoError(t, err)
}

func TestMergeCmd_FailUnderIsPassedThrough(t *testing.T) {
	err := execMerge(t, func(args domain.MergeArgs) bool {
		return args.FailUnder == 85.0
	}, "--fail-under", "85")
	require.NoError(t, err)
}

func TestMergeCmd_RejectsPositionalArgs(t *testing.T) {
	err := execMerge(t, nil, "stray")
	require.Error(t, err)
}
