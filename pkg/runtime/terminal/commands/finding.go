package commands

import (
	"fmt"

	"github.com/de-tools/cloud-hooks/pkg/models/domain"
	"github.com/de-tools/cloud-hooks/pkg/runtime/terminal/export"
	"github.com/de-tools/cloud-hooks/pkg/services/findings"
	"github.com/spf13/cobra"
)

type FindingCmd struct {
	importers findings.ImporterFactory
	reporter  *export.Reporter
}

func NewFindingCmd(importers findings.ImporterFactory, reporter *export.Reporter) *cobra.Command {
	fc := &FindingCmd{importers: importers, reporter: reporter}

	cmd := &cobra.Command{
		Use:   "finding",
		Short: "Security Hub findings",
	}

	submit := &cobra.Command{
		Use:   "submit",
		Short: "Import a synthetic kube-bench CIS finding into Security Hub",
		Args:  cobra.NoArgs,
		RunE:  fc.runSubmit,
	}
	submit.Flags().String("account-id", findings.DefaultAccountID, "AWS account the finding is reported into")
	submit.Flags().String("region", findings.DefaultRegion, "Region of the Security Hub instance")
	submit.Flags().String("profile", "", "Shared config profile (default credential chain when empty)")

	cmd.AddCommand(submit)
	return cmd
}

func (fc *FindingCmd) runSubmit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	v, err := bindFlags(cmd)
	if err != nil {
		return err
	}
	target := domain.AccountTarget{
		AccountID: v.GetString("account-id"),
		Region:    v.GetString("region"),
	}

	client, err := fc.importers(ctx, target.Region, v.GetString("profile"))
	if err != nil {
		return fmt.Errorf("failed to create security hub client: %w", err)
	}

	out, err := findings.NewSubmitter(client, target).Submit(ctx)
	if err != nil {
		return err
	}

	return fc.reporter.HandleImport(out)
}
