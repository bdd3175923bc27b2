package plotlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ukaji3/plotlog-go/pkg/plotlog/models"
	"github.com/ukaji3/plotlog-go/pkg/plotlog/parser"
	"github.com/ukaji3/plotlog-go/pkg/plotlog/scale"
)

// ProcessFile converts the SVG plot at path to a log scale when its samples
// span at least two decades. The result is written to dest, or to the path
// derived by OutputPath when dest is empty.
//
// Documents without usable samples, or whose range is too narrow, are not an
// error: the returned Result has Converted set to false.
func ProcessFile(path, dest string, opts Options) (models.Result, error) {
	res := models.Result{Source: path}
	logger := opts.Logger.With().Str("file", path).Logger()

	content, err := os.ReadFile(path)
	if err != nil {
		return res, NewProcessError(path, StageRead, err)
	}

	samples, ok := parser.ExtractSamples(content)
	if !ok {
		logger.Debug().Msg("no usable samples")
		return res, nil
	}
	res.Samples = len(samples)

	if !scale.ShouldUseLog(samples) {
		logger.Debug().Int("samples", len(samples)).Msg("range too narrow for log scale")
		return res, nil
	}
	r, _ := samples.Range()
	res.Range = r

	doc, err := parser.ParseDocument(content)
	if err != nil {
		return res, NewProcessError(path, StageParse, err)
	}

	res.Ticks = scale.LogTicks(r.Min, r.Max, opts.Ticks())
	if !doc.AnnotateTitle(TitleSuffix) {
		logger.Debug().Msg("no title to annotate")
	}

	if dest == "" {
		dest = OutputPath(path, opts)
	}

	logger.Info().
		Str("range", fmt.Sprintf("%.2e to %.2e", r.Min, r.Max)).
		Str("range_si", humanize.SIWithDigits(r.Min, 2, "")+" to "+humanize.SIWithDigits(r.Max, 2, "")).
		Float64("ratio", r.Ratio()).
		Strs("ticks", tickLabels(res.Ticks)).
		Str("output", dest).
		Bool("dry_run", opts.DryRun).
		Msgf("converting %s to log scale", filepath.Base(path))

	if !opts.DryRun {
		if err := os.WriteFile(dest, doc.Bytes(), 0644); err != nil {
			return res, NewProcessError(path, StageWrite, err)
		}
	}

	res.Output = dest
	res.Converted = true
	return res, nil
}

// OutputPath returns where the converted form of path is written: path itself
// when opts.InPlace is set, otherwise a sibling with the output suffix
// inserted before the extension, e.g. "violin.svg" -> "violin_log.svg".
func OutputPath(path string, opts Options) string {
	if opts.InPlace {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), stem+opts.OutputSuffix()+ext)
}

func tickLabels(ticks []models.Tick) []string {
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = t.Label
	}
	return labels
}
