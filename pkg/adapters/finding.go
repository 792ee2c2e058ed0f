package adapters

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/de-tools/cloud-hooks/pkg/models/domain"
)

// FindingTimeLayout is the ISO-8601 layout Security Hub expects for finding timestamps.
const FindingTimeLayout = time.RFC3339Nano

func MapSeverityDomainToSecurityHub(s domain.Severity) types.SeverityLabel {
	switch s {
	case domain.SeverityLow:
		return types.SeverityLabelLow
	case domain.SeverityMedium:
		return types.SeverityLabelMedium
	case domain.SeverityHigh:
		return types.SeverityLabelHigh
	case domain.SeverityCritical:
		return types.SeverityLabelCritical
	default:
		return types.SeverityLabelInformational
	}
}

func MapFindingResourceDomainToSecurityHub(r domain.FindingResource) types.Resource {
	return types.Resource{
		Type:   aws.String(r.Type),
		Id:     aws.String(r.ID),
		Region: aws.String(r.Region),
	}
}

func MapFindingDomainToSecurityHub(f domain.Finding) types.AwsSecurityFinding {
	resources := make([]types.Resource, 0, len(f.Resources))
	for _, r := range f.Resources {
		resources = append(resources, MapFindingResourceDomainToSecurityHub(r))
	}

	return types.AwsSecurityFinding{
		SchemaVersion: aws.String(f.SchemaVersion),
		Id:            aws.String(f.ID),
		ProductArn:    aws.String(f.ProductArn),
		ProductName:   aws.String(f.ProductName),
		GeneratorId:   aws.String(f.GeneratorID),
		AwsAccountId:  aws.String(f.AccountID),
		Types:         f.Types,
		CreatedAt:     aws.String(f.CreatedAt.UTC().Format(FindingTimeLayout)),
		UpdatedAt:     aws.String(f.UpdatedAt.UTC().Format(FindingTimeLayout)),
		Severity: &types.Severity{
			Label: MapSeverityDomainToSecurityHub(f.Severity),
		},
		Title:       aws.String(f.Title),
		Description: aws.String(f.Description),
		Resources:   resources,
		RecordState: types.RecordState(f.RecordState),
		Workflow: &types.Workflow{
			Status: types.WorkflowStatus(f.WorkflowStatus),
		},
	}
}
