package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"preach.dev/pkg/preach/internal/adapter"
	adaptermocks "preach.dev/pkg/preach/internal/adapter/mocks"
	"preach.dev/pkg/preach/internal/controller"
	controllermocks "preach.dev/pkg/preach/internal/controller/mocks"
	domain "preach.dev/pkg/preach/internal/domain"
	m "preach.dev/pkg/preach/internal/model"
)

// The target takes branch 1 when its single input is positive and branch 2
// otherwise.
var signListing = m.BranchListing{Functions: []m.FunctionBranches{
	{Function: 1, Pairs: []m.BranchPair{{True: 1, False: 2}}},
}}

func signExecution(input []int64) *m.Execution {
	x := int64(0)
	if len(input) > 0 {
		x = input[0]
	}

	p := m.Predicate{Expr: m.NewLinearExpr(0, map[m.VarID]int64{0: 1}), Op: m.OpGT}
	b := m.BranchID(1)

	if !p.Holds([]int64{x}) {
		p = p.Negated()
		b = 2
	}

	return &m.Execution{
		Inputs: []int64{x},
		Path:   m.MustSymbolicPath([]m.BranchID{b}, []m.Predicate{p}, []int{0}),
		Vars:   map[m.VarID]m.ScalarType{0: m.Int},
	}
}

type workflowMocks struct {
	fs     *adaptermocks.MockArtifactFSAdapter
	runner *adaptermocks.MockTargetRunnerAdapter
	solver *adaptermocks.MockSolverAdapter
	stats  *adaptermocks.MockStatsStore
	ui     *controllermocks.MockUI
}

func newWorkflowMocks(t *testing.T) *workflowMocks {
	return &workflowMocks{
		fs:     adaptermocks.NewMockArtifactFSAdapter(t),
		runner: adaptermocks.NewMockTargetRunnerAdapter(t),
		solver: adaptermocks.NewMockSolverAdapter(t),
		stats:  adaptermocks.NewMockStatsStore(t),
		ui:     controllermocks.NewMockUI(t),
	}
}

func (w *workflowMocks) workflow() domain.Workflow {
	return domain.NewWorkflow(w.fs, w.runner, w.solver, w.stats, w.ui)
}

// expectTarget wires the artifact adapter and the runner to the sign target.
func (w *workflowMocks) expectTarget() {
	var last []int64

	w.fs.EXPECT().LoadBranchListing(mock.Anything, m.Path("work/branches")).Return(signListing, nil)
	w.fs.EXPECT().LoadCFG(mock.Anything, m.Path("work/cfg_branches")).Return(nil, nil)
	w.fs.EXPECT().WriteInput(mock.Anything, m.Path("work/input"), mock.Anything).
		Run(func(_ context.Context, _ m.Path, input []int64) { last = input }).
		Return(nil)
	w.runner.EXPECT().RunTarget(mock.Anything, "work").Return("", nil)
	w.fs.EXPECT().ReadExecution(mock.Anything, m.Path("work/szd_execution")).
		RunAndReturn(func(context.Context, m.Path) (*m.Execution, error) {
			return signExecution(last), nil
		})
}

// expectSolver answers every query with x = 1.
func (w *workflowMocks) expectSolver(t *testing.T) {
	session := adaptermocks.NewMockSolverSession(t)
	session.EXPECT().Solve(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(map[m.VarID]int64{0: 1}, true, nil)
	session.EXPECT().Close().Return(nil)

	w.solver.EXPECT().OpenSession(mock.Anything).Return(session, nil)
}

func searchArgs(t *testing.T, strategy string) domain.SearchArgs {
	dir := t.TempDir()

	opts := domain.DefaultOptions()
	opts.MaxIterations = 10
	opts.RunID = "run-42"

	return domain.SearchArgs{
		Strategy: strategy,
		Branches: "work/branches",
		CFG:      "work/cfg_branches",
		Driver: domain.DriverConfig{
			WorkDir:       "work",
			InputPath:     "work/input",
			ExecutionPath: "work/szd_execution",
		},
		Coverage: m.Path(filepath.Join(dir, "coverage")),
		Stats:    "work/stats.yaml",
		Findings: m.Path(filepath.Join(dir, "findings")),
		Seed:     1,
		Options:  opts,
	}
}

func TestWorkflow_Search_Success(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.expectTarget()
	mocks.expectSolver(t)

	args := searchArgs(t, domain.StrategyDFS)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.MatchedBy(func(info controller.RunInfo) bool {
		return info.RunID == "run-42" && info.Strategy == domain.StrategyDFS && info.Branches == 2 && info.Functions == 1
	})).Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	mocks.ui.EXPECT().DisplayFinding(mock.Anything, mock.Anything).Times(2)
	mocks.ui.EXPECT().DisplayStats(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Once()

	mocks.stats.EXPECT().SaveStats(mock.Anything, m.Path("work/stats.yaml"), mock.MatchedBy(func(s m.SearchStats) bool {
		return s.Iterations == 2 && s.TotalCovered == 2 && s.Strategy == domain.StrategyDFS
	})).Return(nil).Once()

	// Act
	stats, err := mocks.workflow().Search(context.Background(), args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Iterations)
	assert.Equal(t, 2, stats.TotalCovered)
	assert.Equal(t, "run-42", stats.RunID)

	covered, err := adapter.NewFileCoverageStore(args.Coverage).LoadCoverage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []m.BranchID{1, 2}, covered)

	entries, err := os.ReadDir(string(args.Findings))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWorkflow_Search_Resume(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.expectTarget()

	args := searchArgs(t, domain.StrategyRandomInput)
	args.Resume = true
	args.Findings = ""
	args.Stats = ""
	args.Options.MaxIterations = 1

	require.NoError(t, adapter.NewFileCoverageStore(args.Coverage).SaveCoverage(context.Background(), []m.BranchID{2}))

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	mocks.ui.EXPECT().DisplayStats(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Once()

	// Act
	stats, err := mocks.workflow().Search(context.Background(), args)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Iterations)
	assert.Equal(t, 1, stats.TotalCovered, "the resumed branch is not found again")
}

func TestWorkflow_Search_UnknownStrategy(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.fs.EXPECT().LoadBranchListing(mock.Anything, mock.Anything).Return(signListing, nil)
	mocks.fs.EXPECT().LoadCFG(mock.Anything, mock.Anything).Return(nil, nil)

	// Act
	_, err := mocks.workflow().Search(context.Background(), searchArgs(t, "bfs"))

	// Assert
	require.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestWorkflow_Search_LoadError(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.fs.EXPECT().LoadBranchListing(mock.Anything, mock.Anything).Return(m.BranchListing{}, errors.New("no such file"))
	mocks.fs.EXPECT().LoadCFG(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	// Act
	_, err := mocks.workflow().Search(context.Background(), searchArgs(t, domain.StrategyDFS))

	// Assert
	require.ErrorIs(t, err, domain.ErrEnvironment)
}

func TestWorkflow_Search_StartError(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.fs.EXPECT().LoadBranchListing(mock.Anything, mock.Anything).Return(signListing, nil)
	mocks.fs.EXPECT().LoadCFG(mock.Anything, mock.Anything).Return(nil, nil)

	startErr := errors.New("no terminal")
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(startErr).Once()

	// Act
	_, err := mocks.workflow().Search(context.Background(), searchArgs(t, domain.StrategyDFS))

	// Assert
	require.ErrorIs(t, err, startErr)
}

func TestWorkflow_Search_EnvironmentFailure(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.fs.EXPECT().LoadBranchListing(mock.Anything, mock.Anything).Return(signListing, nil)
	mocks.fs.EXPECT().LoadCFG(mock.Anything, mock.Anything).Return(nil, nil)
	mocks.fs.EXPECT().WriteInput(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("read-only file system"))

	args := searchArgs(t, domain.StrategyRandom)

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	mocks.ui.EXPECT().DisplayStats(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Once()
	mocks.stats.EXPECT().SaveStats(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	// Act
	_, err := mocks.workflow().Search(context.Background(), args)

	// Assert
	require.ErrorIs(t, err, domain.ErrEnvironment)
}

func TestWorkflow_Search_SaveStatsError(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.expectTarget()

	args := searchArgs(t, domain.StrategyRandomInput)
	args.Options.MaxIterations = 1

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	mocks.ui.EXPECT().DisplayFinding(mock.Anything, mock.Anything).Maybe()
	mocks.ui.EXPECT().DisplayStats(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Once()
	mocks.stats.EXPECT().SaveStats(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	// Act
	_, err := mocks.workflow().Search(context.Background(), args)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save stats")
}

func TestWorkflow_Guide_Success(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.expectTarget()
	mocks.expectSolver(t)

	args := searchArgs(t, "")
	args.Findings = ""
	args.Stats = ""
	args.Options.TargetPath = []int64{-2}
	args.Options.Strict = true

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayRunInfo(mock.Anything, mock.MatchedBy(func(info controller.RunInfo) bool {
		return info.Strategy == domain.StrategyGuided
	})).Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Maybe()
	mocks.ui.EXPECT().DisplayFinding(mock.Anything, mock.Anything).Maybe()
	mocks.ui.EXPECT().DisplayStats(mock.Anything, mock.Anything).Once()
	mocks.ui.EXPECT().DisplayInput(mock.Anything, []int64{1}).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Once()

	// Act
	result, err := mocks.workflow().Guide(context.Background(), args)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, []int64{1}, result.Execution.Inputs)
}

func TestWorkflow_Guide_EmptyTarget(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	mocks.fs.EXPECT().LoadBranchListing(mock.Anything, mock.Anything).Return(signListing, nil)
	mocks.fs.EXPECT().LoadCFG(mock.Anything, mock.Anything).Return(nil, nil)

	// Act
	_, err := mocks.workflow().Guide(context.Background(), searchArgs(t, ""))

	// Assert
	require.ErrorIs(t, err, domain.ErrEmptyTarget)
}

func TestWorkflow_Coverage(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)
	path := m.Path(filepath.Join(t.TempDir(), "coverage"))
	require.NoError(t, adapter.NewFileCoverageStore(path).SaveCoverage(context.Background(), []m.BranchID{2, 9}))

	want := []m.FunctionCoverage{{Function: 1, Branches: 2, Covered: 1}}

	mocks.fs.EXPECT().LoadBranchListing(mock.Anything, m.Path("work/branches")).Return(signListing, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayCoverage(mock.Anything, want).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Once()

	// Act
	report, err := mocks.workflow().Coverage(context.Background(), domain.CoverageArgs{
		Branches: "work/branches",
		Coverage: path,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, report)
}

func TestWorkflow_Coverage_MissingFile(t *testing.T) {
	// Arrange
	mocks := newWorkflowMocks(t)

	want := []m.FunctionCoverage{{Function: 1, Branches: 2}}

	mocks.fs.EXPECT().LoadBranchListing(mock.Anything, mock.Anything).Return(signListing, nil)
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayCoverage(mock.Anything, want).Once()
	mocks.ui.EXPECT().Wait(mock.Anything).Once()
	mocks.ui.EXPECT().Close(mock.Anything).Once()

	// Act
	report, err := mocks.workflow().Coverage(context.Background(), domain.CoverageArgs{
		Branches: "work/branches",
		Coverage: m.Path(filepath.Join(t.TempDir(), "absent")),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, report)
}
