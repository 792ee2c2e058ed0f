package terminal

import (
	"bytes"
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/datasync"
	"github.com/aws/aws-sdk-go-v2/service/securityhub"
	"github.com/de-tools/cloud-hooks/pkg/services/findings"
	"github.com/de-tools/cloud-hooks/pkg/services/synctrigger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockImporter struct{ mock.Mock }

func (m *mockImporter) BatchImportFindings(
	ctx context.Context,
	params *securityhub.BatchImportFindingsInput,
	optFns ...func(*securityhub.Options),
) (*securityhub.BatchImportFindingsOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*securityhub.BatchImportFindingsOutput), args.Error(1)
}

type mockTaskStarter struct{ mock.Mock }

func (m *mockTaskStarter) StartTaskExecution(
	ctx context.Context,
	params *datasync.StartTaskExecutionInput,
	optFns ...func(*datasync.Options),
) (*datasync.StartTaskExecutionOutput, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(*datasync.StartTaskExecutionOutput), args.Error(1)
}

func newTestCLI(out *bytes.Buffer, importer findings.Importer, starter synctrigger.TaskStarter, regions *[]string) *CLI {
	logger := zerolog.Nop()
	return NewCLI(Options{
		Output: out,
		Logger: &logger,
		Importers: func(_ context.Context, region, _ string) (findings.Importer, error) {
			*regions = append(*regions, region)
			return importer, nil
		},
		Starters: func(string) synctrigger.ClientFactory {
			return func(_ context.Context, region string) (synctrigger.TaskStarter, error) {
				*regions = append(*regions, region)
				return starter, nil
			}
		},
	})
}

func TestFindingSubmit_DefaultTarget(t *testing.T) {
	importer := new(mockImporter)
	importer.On("BatchImportFindings", mock.Anything, mock.MatchedBy(func(in *securityhub.BatchImportFindingsInput) bool {
		return len(in.Findings) == 1 &&
			aws.ToString(in.Findings[0].AwsAccountId) == findings.DefaultAccountID
	})).Return(&securityhub.BatchImportFindingsOutput{
		SuccessCount: aws.Int32(1),
		FailedCount:  aws.Int32(0),
	}, nil).Once()

	var out bytes.Buffer
	var regions []string
	cli := newTestCLI(&out, importer, nil, &regions)

	err := cli.Run(context.Background(), []string{"finding", "submit"})

	require.NoError(t, err)
	assert.Equal(t, []string{findings.DefaultRegion}, regions)
	assert.Equal(t, "Batch import response: SuccessCount=1 FailedCount=0\n", out.String())
	importer.AssertExpectations(t)
}

func TestFindingSubmit_TargetFromEnvironment(t *testing.T) {
	t.Setenv("CLOUD_HOOKS_ACCOUNT_ID", "111122223333")
	t.Setenv("CLOUD_HOOKS_REGION", "eu-central-1")

	importer := new(mockImporter)
	importer.On("BatchImportFindings", mock.Anything, mock.MatchedBy(func(in *securityhub.BatchImportFindingsInput) bool {
		return aws.ToString(in.Findings[0].ProductArn) ==
			"arn:aws:securityhub:eu-central-1:111122223333:product/111122223333/default"
	})).Return(&securityhub.BatchImportFindingsOutput{}, nil).Once()

	var out bytes.Buffer
	var regions []string
	cli := newTestCLI(&out, importer, nil, &regions)

	require.NoError(t, cli.Run(context.Background(), []string{"finding", "submit"}))
	assert.Equal(t, []string{"eu-central-1"}, regions)
	importer.AssertExpectations(t)
}

func TestDataSyncStart_RegionFromTaskArn(t *testing.T) {
	taskArn := "arn:aws:datasync:eu-west-1:111122223333:task/task-0abc"
	starter := new(mockTaskStarter)
	starter.On("StartTaskExecution", mock.Anything, &datasync.StartTaskExecutionInput{
		TaskArn: aws.String(taskArn),
	}).Return(&datasync.StartTaskExecutionOutput{
		TaskExecutionArn: aws.String(taskArn + "/execution/exec-1"),
	}, nil).Once()

	var out bytes.Buffer
	var regions []string
	cli := newTestCLI(&out, nil, starter, &regions)

	err := cli.Run(context.Background(), []string{"datasync", "start", "--task-arn", taskArn})

	require.NoError(t, err)
	assert.Equal(t, []string{"eu-west-1"}, regions)
	assert.Contains(t, out.String(), "TaskExecutionArn="+taskArn+"/execution/exec-1")
	starter.AssertExpectations(t)
}

func TestDataSyncStart_MissingTaskArn(t *testing.T) {
	var out bytes.Buffer
	var regions []string
	cli := newTestCLI(&out, nil, new(mockTaskStarter), &regions)

	err := cli.Run(context.Background(), []string{"datasync", "start"})

	assert.Error(t, err)
	assert.Empty(t, regions)
}
