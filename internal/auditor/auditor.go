package auditor

import (
	"context"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/probe"
	"linkaudit/pkg/serrors"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultPattern selects Jupyter notebooks.
const DefaultPattern = "*.ipynb"

// Options configure notebook discovery.
type Options struct {
	// Pattern is matched against file base names. Empty means DefaultPattern.
	Pattern string
	// Recursive makes Discover walk the whole tree below the root.
	Recursive bool
}

type auditor struct {
	prober  probe.Prober
	options Options
	tracer  trace.Tracer
}

// Ensure auditor conforms to the Auditor interface at compile time.
var _ Auditor = (*auditor)(nil)

// New creates an Auditor that judges URLs with prober.
func New(prober probe.Prober, opts Options) Auditor {
	if opts.Pattern == "" {
		opts.Pattern = DefaultPattern
	}

	return &auditor{
		prober:  prober,
		options: opts,
		tracer:  otel.Tracer("linkaudit/auditor"),
	}
}

func (a *auditor) Audit(ctx context.Context, path string) (domain.AuditResult, error) {
	ctx, span := a.tracer.Start(ctx, "auditor.Audit", trace.WithAttributes(attribute.String("notebook", path)))
	defer span.End()

	ctx = logger.WithFields(ctx, zap.String("notebook", path))

	content, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")

		return domain.AuditResult{Notebook: path}, errors.Wrap(err, "read notebook")
	}

	result, err := Check(ctx, a.prober, path, string(content))
	span.SetAttributes(attribute.Int("checked", result.Checked), attribute.Int("dead", len(result.Dead)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "audit interrupted")

		return result, err
	}

	if result.Passed() {
		logger.Info(ctx, "notebook passed", zap.Int("checked", result.Checked))

		return result, nil
	}

	span.SetStatus(codes.Error, "dead links")
	logger.Warn(ctx, "notebook has dead links",
		zap.Int("checked", result.Checked),
		zap.Int("dead", len(result.Dead)))

	return result, ResultError(result)
}

func (a *auditor) AuditAll(ctx context.Context, root string) ([]domain.AuditResult, error) {
	notebooks, err := a.Discover(ctx, root)
	if err != nil {
		return nil, err
	}

	var (
		results  = make([]domain.AuditResult, 0, len(notebooks))
		failures []string
		kind     = serrors.ErrDeadLinks
	)
	for _, nb := range notebooks {
		res, err := a.Audit(ctx, nb)
		results = append(results, res)
		if err == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return results, errors.Wrap(ctxErr, "audit interrupted")
		}
		if !errors.Is(err, serrors.ErrDeadLinks) {
			kind = serrors.ErrInternal
		}
		failures = append(failures, failureText(nb, err))
	}

	if len(failures) > 0 {
		return results, serrors.With(kind, "%s", strings.Join(failures, "\n"))
	}

	return results, nil
}

// Check audits text as the content of notebook. Every distinct URL candidate
// is probed once; repeated occurrences reuse the first verdict. Dead URLs are
// listed in the order of their first occurrence. The only error returned is
// the cancellation of ctx.
func Check(ctx context.Context, prober probe.Prober, notebook, text string) (domain.AuditResult, error) {
	urls := ExtractURLs(text)
	result := domain.AuditResult{Notebook: notebook, Checked: len(urls)}

	verdicts := make(map[string]bool, len(urls))
	for _, u := range urls {
		if _, seen := verdicts[u]; seen {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, "audit interrupted")
		}

		ok := prober.Reachable(ctx, u)
		verdicts[u] = ok
		if !ok {
			result.Dead = append(result.Dead, domain.DeadLink{URL: u, Reason: domain.ReasonDead})
		}
	}

	return result, nil
}

// ResultError converts a failing result into the error reported for the
// notebook: kind serrors.ErrDeadLinks with the report as message. It returns
// nil for a passing result.
func ResultError(result domain.AuditResult) error {
	if result.Passed() {
		return nil
	}

	return serrors.With(serrors.ErrDeadLinks, "%s", strings.TrimSuffix(result.Report(), "\n"))
}

func failureText(notebook string, err error) string {
	var se *serrors.Error
	if errors.As(err, &se) && se.Kind() == serrors.ErrDeadLinks {
		return se.Message()
	}

	return notebook + ": " + err.Error()
}
