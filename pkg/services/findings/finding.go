package findings

import (
	"fmt"
	"time"

	"github.com/de-tools/cloud-hooks/pkg/models/domain"
)

const (
	DefaultAccountID = "165220828225"
	DefaultRegion    = "us-east-1"

	SchemaVersion = "2018-10-08"
	ProductName   = "kube-bench"
	GeneratorID   = "kube-bench-manual-test"
	CISBenchmarks = "Software and Configuration Checks/Industry and Regulatory Standards/CIS Benchmarks"

	testFindingPrefix = "test-kube-bench-finding-"
	testClusterName   = "test-eks-cluster"
)

// DefaultTarget is the account the test finding is reported into when nothing overrides it.
func DefaultTarget() domain.AccountTarget {
	return domain.AccountTarget{
		AccountID: DefaultAccountID,
		Region:    DefaultRegion,
	}
}

// ProductArn returns the ARN of the account's "default" product.
func ProductArn(target domain.AccountTarget) string {
	return fmt.Sprintf("arn:aws:securityhub:%s:%s:product/%s/default",
		target.Region, target.AccountID, target.AccountID)
}

func ClusterArn(target domain.AccountTarget, name string) string {
	return fmt.Sprintf("arn:aws:eks:%s:%s:cluster/%s", target.Region, target.AccountID, name)
}

// NewTestFinding builds a synthetic kube-bench CIS failure for target.
// id is embedded in the finding ID and must be unique per call.
func NewTestFinding(target domain.AccountTarget, id string, now time.Time) domain.Finding {
	now = now.UTC()

	return domain.Finding{
		ID:            testFindingPrefix + id,
		SchemaVersion: SchemaVersion,
		ProductArn:    ProductArn(target),
		ProductName:   ProductName,
		GeneratorID:   GeneratorID,
		AccountID:     target.AccountID,
		Types:         []string{CISBenchmarks},
		CreatedAt:     now,
		UpdatedAt:     now,
		Severity:      domain.SeverityHigh,
		Title:         "kube-bench CIS control failed (manual test)",
		Description:   "Manually created kube-bench-style finding for testing CSV export.",
		Resources: []domain.FindingResource{
			{
				Type:   "AwsEksCluster",
				ID:     ClusterArn(target, testClusterName),
				Region: target.Region,
			},
		},
		RecordState:    domain.RecordStateActive,
		WorkflowStatus: domain.WorkflowStatusNew,
	}
}
