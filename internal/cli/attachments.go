package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/keyvault/internal/errmsg"
	"github.com/llehouerou/keyvault/internal/prefdialog"
	"github.com/llehouerou/keyvault/internal/resources"
	"github.com/llehouerou/keyvault/internal/vault"
)

var (
	listOutput  string
	listOrphans bool
	pruneYes    bool
)

func newAttachmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachments",
		Short: "Inspect and prune attachment data",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored attachments with their size and link count",
		Args:  cobra.NoArgs,
		RunE:  runAttachmentsList,
	}
	list.Flags().StringVarP(&listOutput, "output", "o", "text", "output format: text, json, yaml")
	list.Flags().BoolVar(&listOrphans, "unlinked", false, "only show attachments no entry links to")

	prune := &cobra.Command{
		Use:   "prune",
		Short: "Remove attachments that are not linked to any entry",
		Long: `Remove attachments that are not linked to any entry.

Unlinked data may still be used by KeePass plugins. The command asks for
confirmation unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: runAttachmentsPrune,
	}
	prune.Flags().BoolVarP(&pruneYes, "yes", "y", false, "remove without asking")

	cmd.AddCommand(list, prune)
	return cmd
}

// attachmentRow is the serialized form of an attachment in list output.
type attachmentRow struct {
	ID      int64     `json:"id" yaml:"id"`
	Hash    string    `json:"sha256" yaml:"sha256"`
	Size    int64     `json:"size" yaml:"size"`
	Links   int       `json:"links" yaml:"links"`
	Created time.Time `json:"created_at" yaml:"created_at"`
}

func runAttachmentsList(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.requireVault(); err != nil {
		return err
	}

	var atts []vault.Attachment
	if listOrphans {
		atts, err = e.vault.UnlinkedAttachments()
	} else {
		atts, err = e.vault.Attachments()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpListAttachments, err)
	}

	rows := make([]attachmentRow, len(atts))
	for i, a := range atts {
		rows[i] = attachmentRow{ID: a.ID, Hash: a.Hash, Size: a.Size, Links: a.Links, Created: a.CreatedAt}
	}
	return writeAttachments(cmd.OutOrStdout(), listOutput, rows)
}

func writeAttachments(w io.Writer, format string, rows []attachmentRow) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		out, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSHA256\tSIZE\tLINKS\tADDED")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				r.ID, shortHash(r.Hash), humanize.IBytes(uint64(r.Size)), //nolint:gosec // sizes are never negative
				strconv.Itoa(r.Links), humanize.Time(r.Created))
		}
		return tw.Flush()
	}
	return fmt.Errorf("unsupported output format: %s", format)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

func runAttachmentsPrune(cmd *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.Close()
	if err := e.requireVault(); err != nil {
		return err
	}

	return prune(e, cmd.InOrStdin(), cmd.OutOrStdout(), pruneYes)
}

// prune hosts the remove-unlinked-data dialog on the terminal.
func prune(e *env, in io.Reader, out io.Writer, assumeYes bool) error {
	st, err := e.vault.Stats()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpDatabaseStats, err)
	}
	fmt.Fprintf(out, "%s: %d (%s)\n",
		e.strings.String(resources.StatsUnlinked), st.Unlinked,
		humanize.IBytes(uint64(st.UnlinkedBytes))) //nolint:gosec // sizes are never negative

	d, err := prefdialog.DefaultRegistry().Create(prefdialog.KeyRemoveUnlinkedData, e.dialogOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpDialogOpen, err)
	}
	var v prefdialog.View
	if err := d.BindView(&v); err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpDialogOpen, err)
	}

	positive := assumeYes
	if !positive {
		if positive, err = Confirm(in, out, v); err != nil {
			return err
		}
	}

	if err := d.Close(e.vault, positive); err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpRemoveUnlinked, err)
	}

	switch {
	case !positive:
		fmt.Fprintln(out, e.strings.String(resources.StatusCancelled))
	case d.SavePending():
		if err := e.vault.Save(); err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpDatabaseSave, err)
		}
		fmt.Fprintln(out, e.strings.String(resources.StatusSaved))
	default:
		fmt.Fprintln(out, e.strings.String(resources.StatusUnlinkedRemoved))
	}
	e.logger.Info("prune finished", "positive", positive, "unlinked_before", st.Unlinked)
	return nil
}
