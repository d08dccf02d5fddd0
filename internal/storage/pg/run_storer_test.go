package pg

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/report"
	"github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/internal/eval/scorer"
	pkgtesting "github.com/duythanh0106/Invoice-Extraction-UsingDeepSeek/pkg/testing"
)

var (
	testCtx    context.Context
	testPool   *ConnectionPool
	testStorer *RunStorer
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "eval_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}
	defer testcontainers.TerminateContainer(pg.Container)

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	defer testPool.Close()

	testStorer = NewRunStorer(testPool)
	if err := testStorer.EnsureSchema(testCtx); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func buildTestReport() *report.Report {
	results := []scorer.DocumentResult{
		scorer.EvaluatePair(`{"retailer_name": "Co.opmart"}`, `{"retailer_name": "Co.opmart"}`, "img_001", scorer.DefaultConfig()),
	}
	return report.Build(report.NewMeta("gt", "pred"), results)
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	require.NoError(t, testStorer.EnsureSchema(testCtx))
}

func TestSaveRun(t *testing.T) {
	rpt := buildTestReport()

	id, err := testStorer.Save(testCtx, rpt)
	require.NoError(t, err)
	assert.Equal(t, rpt.Meta.RunID, id)

	var totalImages int
	var overallF1 float64
	var stored []byte
	err = testPool.GetConn().QueryRow(testCtx, `
		SELECT total_images, overall_f1, report FROM eval_runs WHERE id = $1
	`, id).Scan(&totalImages, &overallF1, &stored)
	require.NoError(t, err)

	assert.Equal(t, 1, totalImages)
	assert.InDelta(t, rpt.Summary.OverallSummary.F1Score, overallF1, 1e-9)

	var back report.Report
	require.NoError(t, json.Unmarshal(stored, &back))
	assert.Equal(t, rpt.Meta.RunID, back.Meta.RunID)
	assert.Equal(t, rpt.Summary.TotalImages, back.Summary.TotalImages)
}

func TestSaveRunDuplicateID(t *testing.T) {
	rpt := buildTestReport()

	_, err := testStorer.Save(testCtx, rpt)
	require.NoError(t, err)

	_, err = testStorer.Save(testCtx, rpt)
	assert.Error(t, err, "run ids are primary keys")
}
