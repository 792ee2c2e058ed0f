package findings

import (
	"testing"
	"time"

	"github.com/de-tools/cloud-hooks/pkg/adapters"
	"github.com/de-tools/cloud-hooks/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductArn_DefaultTarget(t *testing.T) {
	target := domain.AccountTarget{AccountID: "165220828225", Region: "us-east-1"}

	assert.Equal(t,
		"arn:aws:securityhub:us-east-1:165220828225:product/165220828225/default",
		ProductArn(target))
	assert.Equal(t, target, DefaultTarget())
}

func TestNewTestFinding_PopulatesFixedFields(t *testing.T) {
	target := domain.AccountTarget{AccountID: "111122223333", Region: "eu-west-1"}
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	f := NewTestFinding(target, "abc", now)

	assert.Equal(t, "test-kube-bench-finding-abc", f.ID)
	assert.Equal(t, "2018-10-08", f.SchemaVersion)
	assert.Equal(t, "arn:aws:securityhub:eu-west-1:111122223333:product/111122223333/default", f.ProductArn)
	assert.Equal(t, "kube-bench", f.ProductName)
	assert.Equal(t, "kube-bench-manual-test", f.GeneratorID)
	assert.Equal(t, "111122223333", f.AccountID)
	assert.Equal(t, []string{CISBenchmarks}, f.Types)
	assert.Equal(t, domain.SeverityHigh, f.Severity)
	assert.Equal(t, domain.RecordStateActive, f.RecordState)
	assert.Equal(t, domain.WorkflowStatusNew, f.WorkflowStatus)
	require.Len(t, f.Resources, 1)
	assert.Equal(t, domain.FindingResource{
		Type:   "AwsEksCluster",
		ID:     "arn:aws:eks:eu-west-1:111122223333:cluster/test-eks-cluster",
		Region: "eu-west-1",
	}, f.Resources[0])
}

func TestNewTestFinding_TimestampsEqualAndUTC(t *testing.T) {
	local := time.Date(2025, 9, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	f := NewTestFinding(DefaultTarget(), "abc", local)
	wire := adapters.MapFindingDomainToSecurityHub(f)

	assert.True(t, f.CreatedAt.Equal(f.UpdatedAt))
	assert.Equal(t, time.UTC, f.CreatedAt.Location())
	assert.Equal(t, *wire.CreatedAt, *wire.UpdatedAt)

	parsed, err := time.Parse(time.RFC3339, *wire.CreatedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(local))
	assert.Equal(t, "2025-09-01T08:00:00Z", *wire.CreatedAt)
}
