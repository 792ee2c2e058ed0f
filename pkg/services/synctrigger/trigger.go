package synctrigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/datasync"
	"github.com/de-tools/cloud-hooks/pkg/services/awsconfig"
	"github.com/rs/zerolog"
)

var (
	ErrMalformedARN    = errors.New("malformed ARN")
	ErrNoLambdaContext = errors.New("lambda context not found")
)

// arn:partition:service:region:account-id:resource
const (
	regionSegmentIndex = 3
	minimumARNSegments = regionSegmentIndex + 1
)

// TaskStarter is the subset of the DataSync client the trigger needs
type TaskStarter interface {
	StartTaskExecution(
		ctx context.Context,
		params *datasync.StartTaskExecutionInput,
		optFns ...func(*datasync.Options),
	) (*datasync.StartTaskExecutionOutput, error)
}

// ClientFactory builds a TaskStarter bound to region
type ClientFactory func(ctx context.Context, region string) (TaskStarter, error)

// NewClientFactory returns a ClientFactory backed by the DataSync SDK client.
// An empty profile uses the default credential chain, which is what Lambda provides.
func NewClientFactory(profile string) ClientFactory {
	return func(ctx context.Context, region string) (TaskStarter, error) {
		cfg, err := awsconfig.LoadConfig(ctx, region, profile)
		if err != nil {
			return nil, err
		}
		return datasync.NewFromConfig(cfg), nil
	}
}

// RegionFromARN returns the region segment of arn.
func RegionFromARN(arn string) (string, error) {
	segments := strings.Split(arn, ":")
	if len(segments) < minimumARNSegments {
		return "", fmt.Errorf("%w: %q has %d segments, need at least %d",
			ErrMalformedARN, arn, len(segments), minimumARNSegments)
	}
	return segments[regionSegmentIndex], nil
}

type Trigger struct {
	newClient ClientFactory
}

func NewTrigger(factory ClientFactory) *Trigger {
	return &Trigger{newClient: factory}
}

// Handle is the Lambda entrypoint. The event payload is ignored; the task comes
// from the environment and the region from the invoked function ARN.
func (t *Trigger) Handle(ctx context.Context, _ json.RawMessage) (*datasync.StartTaskExecutionOutput, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return nil, ErrNoLambdaContext
	}

	region, err := RegionFromARN(lc.InvokedFunctionArn)
	if err != nil {
		return nil, fmt.Errorf("failed to derive region from invoked function ARN: %w", err)
	}

	return t.Start(ctx, cfg, region)
}

// Start issues a single StartTaskExecution call for cfg.TaskArn in region.
// Whether a concurrent execution is allowed is decided by DataSync.
func (t *Trigger) Start(ctx context.Context, cfg Config, region string) (*datasync.StartTaskExecutionOutput, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("task_arn", cfg.TaskArn).
		Str("region", region).
		Logger()

	client, err := t.newClient(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create datasync client for region %s: %w", region, err)
	}

	logger.Info().Msg("starting task execution")
	out, err := client.StartTaskExecution(ctx, &datasync.StartTaskExecutionInput{
		TaskArn: aws.String(cfg.TaskArn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start task execution for %s: %w", cfg.TaskArn, err)
	}

	logger.Info().Str("task_execution_arn", aws.ToString(out.TaskExecutionArn)).Msg("task execution started")
	return out, nil
}
