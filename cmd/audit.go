package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"linkaudit/internal/auditor"
	"linkaudit/internal/config"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/probe"
	"linkaudit/pkg/probe/httpprobe"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// errAuditFailed is returned once the outcome of a failed audit has been printed.
var errAuditFailed = errors.New("audit failed")

func isAuditFailure(err error) bool { return errors.Is(err, errAuditFailed) }

func newProber(cfg *config.Config, opts httpprobe.Options) probe.Prober {
	opts.Timeout = cfg.Auditor.ProbeTimeout
	opts.UserAgent = cfg.Auditor.UserAgent
	opts.FollowRedirects = cfg.Auditor.FollowRedirects

	return httpprobe.New(&http.Client{}, opts)
}

func newAuditor(cfg *config.Config, prober probe.Prober) auditor.Auditor {
	return auditor.New(prober, auditor.Options{
		Pattern:   cfg.Auditor.Pattern,
		Recursive: cfg.Auditor.Recursive,
	})
}

// auditCommand constructs the 'audit' subcommand that audits every notebook
// under the root once and exits non-zero when any of them failed.
func auditCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audits the links of every notebook under the root directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			format, _ := cmd.Flags().GetString("format")
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown output format %q", format)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a := newAuditor(cfg, newProber(cfg, httpprobe.Options{}))

			return runAudit(ctx, cmd.OutOrStdout(), a, root, format)
		},
	}

	cmd.Flags().String("root", cfg.Auditor.Root, "Directory holding the notebooks")
	cmd.Flags().String("format", formatText, "Output format (text or json)")

	return cmd
}

// runAudit audits every notebook under root and writes the outcome to out.
// It returns errAuditFailed when discovery failed or any notebook did not pass.
func runAudit(ctx context.Context, out io.Writer, a auditor.Auditor, root, format string) error {
	results, err := a.AuditAll(ctx, root)

	var writeErr error
	if format == formatJSON {
		writeErr = writeJSONReport(out, root, results, err)
	} else {
		writeErr = writeTextReport(out, results, err)
	}
	if writeErr != nil {
		return fmt.Errorf("could not write report: %w", writeErr)
	}

	if err != nil {
		return errAuditFailed
	}

	return nil
}

func writeTextReport(out io.Writer, results []domain.AuditResult, err error) error {
	if err != nil {
		_, werr := fmt.Fprintln(out, err.Error())

		return werr
	}

	_, werr := fmt.Fprintf(out, "%d notebooks audited, no dead links\n", len(results))

	return werr
}

func writeJSONReport(out io.Writer, root string, results []domain.AuditResult, err error) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("root")
	e.Str(root)
	e.FieldStart("passed")
	e.Bool(err == nil)
	e.FieldStart("notebooks")
	e.ArrStart()
	for _, r := range results {
		r.Encode(e)
	}
	e.ArrEnd()
	if err != nil {
		e.FieldStart("error")
		e.Str(err.Error())
	}
	e.ObjEnd()

	if _, werr := out.Write(e.Bytes()); werr != nil {
		return werr
	}
	_, werr := io.WriteString(out, "\n")

	return werr
}
