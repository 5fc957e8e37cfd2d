// Package batch parses many receipt files with a worker pool
package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"fjacquet/finny-analyzer/internal/dateutils"
	"fjacquet/finny-analyzer/internal/logging"
	"fjacquet/finny-analyzer/internal/models"
	"fjacquet/finny-analyzer/internal/receiptparser"
)

// sequentialThreshold is the file count below which workers are not worth starting
const sequentialThreshold = 4

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"))
}

// ReceiptRange returns the span of the receipt dates.
func ReceiptRange(receipts []models.ParsedReceipt) DateRange {
	dates := make([]string, 0, len(receipts))
	for _, r := range receipts {
		dates = append(dates, r.Date)
	}
	first, last, ok := dateutils.Span(dates)
	if !ok {
		return DateRange{}
	}
	return DateRange{Start: first, End: last}
}

// Processor parses receipt files concurrently. Results keep the input order.
type Processor struct {
	parser      *receiptparser.Parser
	logger      logging.Logger
	workerCount int
}

// NewProcessor creates a processor with one worker per CPU.
func NewProcessor(parser *receiptparser.Parser, logger logging.Logger) *Processor {
	return NewProcessorWithWorkers(parser, logger, runtime.NumCPU())
}

// NewProcessorWithWorkers creates a processor with a fixed worker count.
func NewProcessorWithWorkers(parser *receiptparser.Parser, logger logging.Logger, workers int) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if parser == nil {
		parser = receiptparser.NewParser(logger)
	}
	if workers < 1 {
		workers = 1
	}
	return &Processor{parser: parser, logger: logger, workerCount: workers}
}

type job struct {
	index int
	path  string
}

type result struct {
	index   int
	receipt models.ParsedReceipt
	err     error
}

// ParseFiles parses every file. The first read error cancels the remaining
// work and is returned.
func (p *Processor) ParseFiles(ctx context.Context, files []string) ([]models.ParsedReceipt, error) {
	receipts := make([]models.ParsedReceipt, len(files))
	if len(files) < sequentialThreshold || p.workerCount == 1 {
		for i, f := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := p.parseFile(f)
			if err != nil {
				return nil, err
			}
			receipts[i] = r
		}
		return receipts, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job, p.workerCount)
	results := make(chan result, len(files))

	var wg sync.WaitGroup
	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go p.worker(ctx, &wg, jobs, results)
	}

	go func() {
		defer close(jobs)
		for i, f := range files {
			select {
			case jobs <- job{index: i, path: f}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	done := 0
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		receipts[res.index] = res.receipt
		done++
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if done != len(files) {
		return nil, ctx.Err()
	}

	p.logger.Debug("Concurrent receipt parsing completed",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: "workers", Value: p.workerCount})
	return receipts, nil
}

func (p *Processor) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan job, results chan<- result) {
	defer wg.Done()
	for {
		select {
		case j, ok := <-jobs:
			if !ok {
				return
			}
			r, err := p.parseFile(j.path)
			results <- result{index: j.index, receipt: r, err: err}
		case <-ctx.Done():
			return
		}
	}
}

func (p *Processor) parseFile(path string) (models.ParsedReceipt, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the command line
	if err != nil {
		return models.ParsedReceipt{}, fmt.Errorf("failed to open receipt %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldInputFile, Value: path})
		}
	}()

	receipt, err := p.parser.ParseReader(file)
	if err != nil {
		return models.ParsedReceipt{}, fmt.Errorf("failed to read receipt %s: %w", path, err)
	}
	return receipt, nil
}
