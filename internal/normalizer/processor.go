// Package normalizer turns raw listing rows into normalized programs and
// data-quality diagnostics.
package normalizer

import (
	"erap/internal/logger"
	"erap/internal/models"
)

// Stats counts what happened to each input row.
type Stats struct {
	Total      int
	Geographic int
	Tribal     int
	Closed     int
	Suppressed int
}

// Result is the output of one batch run.
type Result struct {
	Programs    models.ResultSet
	Diagnostics models.Diagnostics
	Stats       Stats
}

// Processor runs the transformer over a batch of rows.
type Processor struct {
	transformer *Transformer
	log         *logger.Logger
}

// NewProcessor creates a new processor instance. A nil logger discards output.
func NewProcessor(transformer *Transformer, log *logger.Logger) *Processor {
	if log == nil {
		log = logger.Discard()
	}

	return &Processor{
		transformer: transformer,
		log:         log,
	}
}

// Process transforms records in input order. Partition order and diagnostic
// order both follow the input.
func (p *Processor) Process(records []models.RawRecord) *Result {
	res := &Result{Programs: models.NewResultSet()}

	for i, rec := range records {
		res.Stats.Total++

		prog, outcome := p.transformer.Transform(rec, &res.Diagnostics)

		switch outcome {
		case OutcomeGeographic:
			res.Programs.Geographic = append(res.Programs.Geographic, prog)
			res.Stats.Geographic++
		case OutcomeTribal:
			res.Programs.Tribal = append(res.Programs.Tribal, prog)
			res.Stats.Tribal++
		case OutcomeClosed:
			res.Stats.Closed++
			p.log.Debug("skipping closed program", "row", i, "program", rec.Value(models.ColProgramName))
		case OutcomeSuppressed:
			res.Stats.Suppressed++
			p.log.Debug("skipping suppressed state program", "row", i,
				"state", rec.Value(models.ColState), "program", rec.Value(models.ColProgramName))
		}
	}

	p.log.Info("processed listings",
		"total", res.Stats.Total,
		"geographic", res.Stats.Geographic,
		"tribal", res.Stats.Tribal,
		"closed", res.Stats.Closed,
		"suppressed", res.Stats.Suppressed,
		"diagnostics", res.Diagnostics.Len(),
	)

	return res
}
