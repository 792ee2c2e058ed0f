package commands

import (
	"errors"

	"github.com/de-tools/cloud-hooks/pkg/runtime/terminal/export"
	"github.com/de-tools/cloud-hooks/pkg/services/synctrigger"
	"github.com/spf13/cobra"
)

type DataSyncCmd struct {
	starters func(profile string) synctrigger.ClientFactory
	reporter *export.Reporter
}

func NewDataSyncCmd(starters func(profile string) synctrigger.ClientFactory, reporter *export.Reporter) *cobra.Command {
	dc := &DataSyncCmd{starters: starters, reporter: reporter}

	cmd := &cobra.Command{
		Use:   "datasync",
		Short: "DataSync task executions",
	}

	start := &cobra.Command{
		Use:   "start",
		Short: "Start one execution of a DataSync task",
		Args:  cobra.NoArgs,
		RunE:  dc.runStart,
	}
	start.Flags().String("task-arn", "", "ARN of the DataSync task to execute")
	start.Flags().String("region", "", "Region the task lives in (derived from --task-arn when empty)")
	start.Flags().String("profile", "", "Shared config profile (default credential chain when empty)")

	cmd.AddCommand(start)
	return cmd
}

func (dc *DataSyncCmd) runStart(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	v, err := bindFlags(cmd)
	if err != nil {
		return err
	}

	cfg := synctrigger.Config{TaskArn: v.GetString("task-arn")}
	if cfg.TaskArn == "" {
		return errors.New("--task-arn is required")
	}

	region := v.GetString("region")
	if region == "" {
		region, err = synctrigger.RegionFromARN(cfg.TaskArn)
		if err != nil {
			return err
		}
	}
	if region == "" {
		return errors.New("--region is required when the task ARN carries no region")
	}

	trigger := synctrigger.NewTrigger(dc.starters(v.GetString("profile")))
	out, err := trigger.Start(ctx, cfg, region)
	if err != nil {
		return err
	}

	return dc.reporter.HandleExecution(out)
}
