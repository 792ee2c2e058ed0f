// Command datasync-trigger is a Lambda function that starts one execution of
// the DataSync task named by DATASYNC_TASK_ARN in the function's own region.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/datasync"
	"github.com/de-tools/cloud-hooks/pkg/services/synctrigger"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	trigger := synctrigger.NewTrigger(synctrigger.NewClientFactory(""))

	lambda.Start(func(ctx context.Context, event json.RawMessage) (*datasync.StartTaskExecutionOutput, error) {
		out, err := trigger.Handle(logger.WithContext(ctx), event)
		if err != nil {
			logger.Error().Err(err).Msg("datasync trigger failed")
		}
		return out, err
	})
}
