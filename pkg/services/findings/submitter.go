package findings

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/aws/aws-sdk-go-v2/service/securityhub/types"
	"github.com/de-tools/cloud-hooks/pkg/adapters"
	"github.com/de-tools/cloud-hooks/pkg/models/domain"
	"github.com/de-tools/cloud-hooks/pkg/services/awsconfig"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Importer is the subset of the Security Hub client the submitter needs
type Importer interface {
	BatchImportFindings(
		ctx context.Context,
		params *securityhub.BatchImportFindingsInput,
		optFns ...func(*securityhub.Options),
	) (*securityhub.BatchImportFindingsOutput, error)
}

// ImporterFactory builds an Importer bound to a region
type ImporterFactory func(ctx context.Context, region, profile string) (Importer, error)

// NewImporter is the ImporterFactory backed by the Security Hub SDK client
func NewImporter(ctx context.Context, region, profile string) (Importer, error) {
	cfg, err := awsconfig.LoadConfig(ctx, region, profile)
	if err != nil {
		return nil, err
	}
	return securityhub.NewFromConfig(cfg), nil
}

type Submitter struct {
	client Importer
	target domain.AccountTarget
	newID  func() string
	now    func() time.Time
}

func NewSubmitter(client Importer, target domain.AccountTarget) *Submitter {
	return &Submitter{
		client: client,
		target: target,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Submit imports exactly one freshly built test finding. The call is not
// idempotent: every invocation produces a new finding ID.
func (s *Submitter) Submit(ctx context.Context) (*securityhub.BatchImportFindingsOutput, error) {
	finding := NewTestFinding(s.target, s.newID(), s.now())

	logger := zerolog.Ctx(ctx).With().
		Str("finding_id", finding.ID).
		Str("account_id", s.target.AccountID).
		Str("region", s.target.Region).
		Logger()
	logger.Info().Msg("importing test finding")

	out, err := s.client.BatchImportFindings(ctx, &securityhub.BatchImportFindingsInput{
		Findings: []types.AwsSecurityFinding{
			adapters.MapFindingDomainToSecurityHub(finding),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import finding %s: %w", finding.ID, err)
	}

	logger.Info().
		Int32("success_count", aws.ToInt32(out.SuccessCount)).
		Int32("failed_count", aws.ToInt32(out.FailedCount)).
		Msg("batch import completed")

	return out, nil
}
